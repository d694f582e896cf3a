// Package render defines the interface for message renderers. A renderer maps
// an email.Message onto the payload a downstream sender consumes and writes
// it out; it never delivers anything itself.
package render

import (
	"context"

	"github.com/shineum/mail-envelope/internal/email"
)

// Renderer is the interface that message renderers must implement.
type Renderer interface {
	// Render writes the payload for msg to the renderer's output.
	// It returns an error if the payload cannot be built or written.
	Render(ctx context.Context, msg *email.Message) error

	// Name returns the human-readable name of this renderer.
	Name() string
}

// Renderer names accepted by the CLI and configuration.
const (
	NameText  = "text"
	NameSES   = "ses"
	NameGraph = "graph"
)

// Names returns the known renderer names.
func Names() []string {
	return []string{NameText, NameSES, NameGraph}
}
