// Package document reads and writes hand-written YAML message documents and
// converts them to email.Message values.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shineum/mail-envelope/internal/email"
)

// messageDoc is the on-disk shape of a message.
type messageDoc struct {
	Subject  string          `yaml:"subject,omitempty"`
	From     *email.Address  `yaml:"from,omitempty"`
	Sender   *email.Address  `yaml:"sender,omitempty"`
	To       []email.Address `yaml:"to,omitempty"`
	Bcc      []email.Address `yaml:"bcc,omitempty"`
	ReplyTo  []email.Address `yaml:"reply_to,omitempty"`
	Body     string          `yaml:"body,omitempty"`
	HTML     bool            `yaml:"html,omitempty"`
	Priority email.Priority  `yaml:"priority,omitempty"`
}

// Defaults are values filled into a message where the document left the
// field unset.
type Defaults struct {
	From     string
	Sender   string
	ReplyTo  []string
	Priority email.Priority
}

// Parse decodes a single message document.
func Parse(data []byte) (*email.Message, error) {
	var doc messageDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse message document: %w", err)
	}
	return doc.message(), nil
}

// ParseAll decodes every document in a multi-document YAML stream, in order.
// Empty documents are skipped.
func ParseAll(data []byte) ([]*email.Message, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var msgs []*email.Message
	for i := 0; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse message document %d: %w", i, err)
		}
		if isEmpty(&node) {
			continue
		}

		var doc messageDoc
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse message document %d: %w", i, err)
		}
		msgs = append(msgs, doc.message())
	}

	return msgs, nil
}

// LoadFile reads a YAML file of one or more message documents. A path of
// "-" reads standard input.
func LoadFile(path string) ([]*email.Message, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read message document: %w", err)
	}

	return ParseAll(data)
}

// Encode writes msg as a YAML document. Unset fields are omitted.
func Encode(msg *email.Message) ([]byte, error) {
	doc := messageDoc{
		Subject:  msg.Subject,
		From:     msg.From,
		Sender:   msg.Sender,
		To:       msg.To,
		Bcc:      msg.Bcc,
		ReplyTo:  msg.ReplyToList,
		Body:     msg.Body,
		HTML:     msg.IsBodyHTML,
		Priority: msg.Priority,
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode message document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode message document: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyDefaults fills From, Sender, ReplyToList and Priority from d where
// msg leaves them unset. Values already present on msg are never replaced.
func ApplyDefaults(msg *email.Message, d Defaults) {
	if msg.From == nil && d.From != "" {
		a := email.NewAddress(d.From)
		msg.From = &a
	}
	if msg.Sender == nil && d.Sender != "" {
		a := email.NewAddress(d.Sender)
		msg.Sender = &a
	}
	if len(msg.ReplyToList) == 0 && len(d.ReplyTo) > 0 {
		msg.ReplyToList = email.Addresses(d.ReplyTo...)
	}
	if msg.Priority == email.PriorityNormal {
		msg.Priority = d.Priority
	}
}

func (d *messageDoc) message() *email.Message {
	return &email.Message{
		Subject:     d.Subject,
		Sender:      d.Sender,
		Body:        d.Body,
		IsBodyHTML:  d.HTML,
		From:        d.From,
		Bcc:         d.Bcc,
		Priority:    d.Priority,
		ReplyToList: d.ReplyTo,
		To:          d.To,
	}
}

// isEmpty reports whether a decoded document carries no content, such as a
// stray "---" separator at the end of a stream.
func isEmpty(node *yaml.Node) bool {
	if node.Kind == 0 {
		return true
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return true
		}
		inner := node.Content[0]
		return inner.Kind == yaml.ScalarNode && inner.ShortTag() == "!!null"
	}
	return false
}
