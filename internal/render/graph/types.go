// Package graph implements a Renderer that maps messages onto the Microsoft
// Graph sendMail request body.
package graph

import (
	"github.com/shineum/mail-envelope/internal/email"
)

// sendMailRequest is the top-level request body for the Graph API sendMail endpoint.
type sendMailRequest struct {
	Message         sendMailMessage `json:"message"`
	SaveToSentItems bool            `json:"saveToSentItems"`
}

// sendMailMessage represents the message portion of a sendMail request.
type sendMailMessage struct {
	Subject       string      `json:"subject"`
	Body          messageBody `json:"body"`
	From          *recipient  `json:"from,omitempty"`
	Sender        *recipient  `json:"sender,omitempty"`
	ToRecipients  []recipient `json:"toRecipients"`
	BccRecipients []recipient `json:"bccRecipients,omitempty"`
	ReplyTo       []recipient `json:"replyTo,omitempty"`
	Importance    string      `json:"importance"`
}

// messageBody represents the body of an email message.
type messageBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// recipient represents an email recipient.
type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

// emailAddress represents an email address in a Graph API request.
type emailAddress struct {
	Address string `json:"address"`
}

// buildSendMailRequest converts an email.Message into a Graph API sendMail request body.
func buildSendMailRequest(msg *email.Message, saveToSentItems bool) *sendMailRequest {
	body := messageBody{
		ContentType: "text",
		Content:     msg.Body,
	}
	if msg.IsBodyHTML {
		body.ContentType = "html"
	}

	return &sendMailRequest{
		Message: sendMailMessage{
			Subject:       msg.Subject,
			Body:          body,
			From:          toOptionalRecipient(msg.From),
			Sender:        toOptionalRecipient(msg.Sender),
			ToRecipients:  toRecipients(msg.To),
			BccRecipients: toRecipients(msg.Bcc),
			ReplyTo:       toRecipients(msg.ReplyToList),
			Importance:    importance(msg.Priority),
		},
		SaveToSentItems: saveToSentItems,
	}
}

// toRecipients never returns nil, so an empty To list encodes as [] rather
// than null.
func toRecipients(addrs []email.Address) []recipient {
	out := make([]recipient, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, recipient{EmailAddress: emailAddress{Address: a.String()}})
	}
	return out
}

func toOptionalRecipient(a *email.Address) *recipient {
	if a == nil {
		return nil
	}
	return &recipient{EmailAddress: emailAddress{Address: a.String()}}
}

// importance maps a priority onto the Graph importance enumeration.
func importance(p email.Priority) string {
	switch p {
	case email.PriorityLow:
		return "low"
	case email.PriorityHigh:
		return "high"
	default:
		return "normal"
	}
}
