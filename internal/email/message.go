// Package email defines the core email data model: addresses and the
// message envelope handed to downstream senders.
package email

// Message is an email envelope. All fields are freely settable and may be
// left empty; nothing here validates them.
type Message struct {
	Subject string

	// Sender is the agent that actually submitted the message, when it
	// differs from From. Nil means unset.
	Sender *Address

	Body       string
	IsBodyHTML bool

	// From is the author address. Nil means unset.
	From *Address

	Bcc         []Address
	Priority    Priority
	ReplyToList []Address
	To          []Address
}

// NewMessage returns an empty message.
func NewMessage() *Message {
	return &Message{}
}

// Clone returns a deep copy of the message. Slices and pointer fields of the
// copy never alias the original.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}

	c := *m
	c.Sender = cloneAddress(m.Sender)
	c.From = cloneAddress(m.From)
	c.Bcc = cloneAddresses(m.Bcc)
	c.ReplyToList = cloneAddresses(m.ReplyToList)
	c.To = cloneAddresses(m.To)
	return &c
}

// Recipients returns the To addresses followed by the Bcc addresses as a
// new slice.
func (m *Message) Recipients() []Address {
	out := make([]Address, 0, len(m.To)+len(m.Bcc))
	out = append(out, m.To...)
	return append(out, m.Bcc...)
}

func cloneAddress(a *Address) *Address {
	if a == nil {
		return nil
	}
	v := *a
	return &v
}

// cloneAddresses keeps nil as nil so a cloned empty message compares equal
// to the original with reflect.DeepEqual.
func cloneAddresses(as []Address) []Address {
	if as == nil {
		return nil
	}
	out := make([]Address, len(as))
	copy(out, as)
	return out
}
