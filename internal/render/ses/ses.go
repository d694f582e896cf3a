// Package ses implements a Renderer that maps messages onto AWS SES v2
// SendEmail requests.
package ses

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/shineum/mail-envelope/internal/email"
)

// charset is the character set declared on every SES content block.
const charset = "UTF-8"

// Renderer writes the SES v2 SendEmail input for a message as JSON.
type Renderer struct {
	writer io.Writer
}

// New creates a Renderer that writes to os.Stdout.
func New() *Renderer {
	return &Renderer{writer: os.Stdout}
}

// NewWithWriter creates a Renderer that writes to w, used for testing.
func NewWithWriter(w io.Writer) *Renderer {
	return &Renderer{writer: w}
}

// Render builds the SendEmail input for msg and writes it as indented JSON.
func (r *Renderer) Render(_ context.Context, msg *email.Message) error {
	input := BuildInput(msg)

	if msg.Priority != email.PriorityNormal {
		slog.Debug("SES simple content has no priority field, dropping it",
			"priority", msg.Priority.String(),
		)
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal SES input: %w", err)
	}
	data = append(data, '\n')

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write SES input: %w", err)
	}
	return nil
}

// Name returns the renderer name.
func (r *Renderer) Name() string {
	return "ses"
}

// BuildInput maps msg onto a SES v2 SendEmailInput using simple content.
// From falls back to Sender because SES carries a single originator.
func BuildInput(msg *email.Message) *sesv2.SendEmailInput {
	body := &types.Body{}
	if msg.IsBodyHTML {
		body.Html = &types.Content{
			Data:    aws.String(msg.Body),
			Charset: aws.String(charset),
		}
	} else {
		body.Text = &types.Content{
			Data:    aws.String(msg.Body),
			Charset: aws.String(charset),
		}
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses:  nilIfEmpty(email.Strings(msg.To)),
			BccAddresses: nilIfEmpty(email.Strings(msg.Bcc)),
		},
		ReplyToAddresses: nilIfEmpty(email.Strings(msg.ReplyToList)),
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Subject),
					Charset: aws.String(charset),
				},
				Body: body,
			},
		},
	}

	switch {
	case msg.From != nil:
		input.FromEmailAddress = aws.String(msg.From.String())
	case msg.Sender != nil:
		input.FromEmailAddress = aws.String(msg.Sender.String())
	}

	return input
}

func nilIfEmpty(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	return ss
}
