package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shineum/mail-envelope/internal/email"
)

// Config holds the options for a Graph Renderer.
type Config struct {
	// SaveToSentItems is copied into every request body.
	SaveToSentItems bool
}

// Renderer writes the Graph sendMail request body for a message as JSON.
type Renderer struct {
	writer io.Writer
	cfg    Config
}

// New creates a Renderer that writes to os.Stdout.
func New(cfg Config) *Renderer {
	return &Renderer{writer: os.Stdout, cfg: cfg}
}

// NewWithWriter creates a Renderer that writes to w, used for testing.
func NewWithWriter(cfg Config, w io.Writer) *Renderer {
	return &Renderer{writer: w, cfg: cfg}
}

// Render builds the sendMail body for msg and writes it as indented JSON.
func (g *Renderer) Render(_ context.Context, msg *email.Message) error {
	reqBody := buildSendMailRequest(msg, g.cfg.SaveToSentItems)

	bodyJSON, err := json.MarshalIndent(reqBody, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	bodyJSON = append(bodyJSON, '\n')

	if _, err := g.writer.Write(bodyJSON); err != nil {
		return fmt.Errorf("failed to write request body: %w", err)
	}
	return nil
}

// Name returns the renderer name.
func (g *Renderer) Name() string {
	return "graph"
}
