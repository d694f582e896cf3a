// Package text implements a Renderer that prints messages in a
// human-readable block.
package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shineum/mail-envelope/internal/email"
)

const separator = "========================================\n"

// Renderer prints messages in a human-readable format.
type Renderer struct {
	// writer is the output destination, defaulting to os.Stdout.
	writer io.Writer
}

// New creates a new text Renderer that writes to os.Stdout.
func New() *Renderer {
	return &Renderer{writer: os.Stdout}
}

// NewWithWriter creates a new text Renderer that writes to the given writer.
// This is useful for testing.
func NewWithWriter(w io.Writer) *Renderer {
	return &Renderer{writer: w}
}

// Render prints the message. Bcc recipients are shown as a count only.
func (r *Renderer) Render(_ context.Context, msg *email.Message) error {
	var b strings.Builder

	b.WriteString(separator)
	b.WriteString(fmt.Sprintf("From: %s\n", optional(msg.From)))
	if msg.Sender != nil {
		b.WriteString(fmt.Sprintf("Sender: %s\n", msg.Sender))
	}
	b.WriteString(fmt.Sprintf("To: %s\n", strings.Join(email.Strings(msg.To), ", ")))

	if len(msg.Bcc) > 0 {
		b.WriteString(fmt.Sprintf("Bcc: %d hidden recipient(s)\n", len(msg.Bcc)))
	}
	if len(msg.ReplyToList) > 0 {
		b.WriteString(fmt.Sprintf("Reply-To: %s\n", strings.Join(email.Strings(msg.ReplyToList), ", ")))
	}
	if msg.Priority != email.PriorityNormal {
		b.WriteString(fmt.Sprintf("Priority: %s\n", msg.Priority))
	}

	b.WriteString(fmt.Sprintf("Subject: %s\n", msg.Subject))
	if msg.IsBodyHTML {
		b.WriteString("Body (html):\n")
	} else {
		b.WriteString("Body:\n")
	}
	b.WriteString(msg.Body + "\n")
	b.WriteString(separator)

	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "text"
}

func optional(a *email.Address) string {
	if a == nil {
		return "(unset)"
	}
	return a.String()
}
