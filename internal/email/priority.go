package email

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPriority is returned when a priority name is not recognised.
var ErrUnknownPriority = errors.New("unknown priority")

// Priority is the delivery priority of a message.
type Priority int

// The zero value is PriorityNormal so an unset field means normal.
const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
)

// String returns the lower-case name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePriority maps a priority name to its value. Matching is
// case-insensitive and an empty string means normal.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return PriorityNormal, nil
	case "low":
		return PriorityLow, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityNormal, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
	}
}

// UnmarshalYAML decodes a priority from its name.
func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML encodes the priority as its name.
func (p Priority) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
