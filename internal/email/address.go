package email

import "gopkg.in/yaml.v3"

// Address is an immutable email address. The stored text is kept exactly as
// given; no format checks are made.
type Address struct {
	value string
}

// NewAddress wraps s as an Address. Any string is accepted, including "".
func NewAddress(s string) Address {
	return Address{value: s}
}

// String returns the address text as it was constructed.
func (a Address) String() string {
	return a.value
}

// Addresses builds an ordered address list from raw strings.
func Addresses(ss ...string) []Address {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Address, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewAddress(s))
	}
	return out
}

// Strings renders an address list back to raw strings in the same order.
func Strings(as []Address) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.value)
	}
	return out
}

// UnmarshalYAML decodes an address from a YAML scalar.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	a.value = s
	return nil
}

// MarshalYAML encodes the address as a plain YAML string.
func (a Address) MarshalYAML() (interface{}, error) {
	return a.value, nil
}
