package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shineum/mail-envelope/internal/config"
	"github.com/shineum/mail-envelope/internal/document"
	"github.com/shineum/mail-envelope/internal/email"
	"github.com/shineum/mail-envelope/internal/render"
	"github.com/shineum/mail-envelope/internal/render/text"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "msg.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestSelectRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "", want: render.NameText},
		{format: "text", want: render.NameText},
		{format: "ses", want: render.NameSES},
		{format: "graph", want: render.NameGraph},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{Render: config.RenderConfig{Format: tt.format}}
			r, err := selectRenderer(cfg, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Name() != tt.want {
				t.Errorf("Name(): got %q, want %q", r.Name(), tt.want)
			}
		})
	}
}

func TestSelectRenderer_Unknown(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Render: config.RenderConfig{Format: "smtp"}}
	_, err := selectRenderer(cfg, &bytes.Buffer{})
	if !errors.Is(err, errUnknownFormat) {
		t.Errorf("error: got %v, want errUnknownFormat", err)
	}
}

func TestRun_AppliesDefaultsAndRenders(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "subject: first\nto: [a@example.com]\n---\nsubject: second\nfrom: me@example.com\n")

	var buf bytes.Buffer
	defaults := document.Defaults{From: "ops@example.com", Priority: email.PriorityHigh}

	if err := run(context.Background(), text.NewWithWriter(&buf), defaults, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	first := strings.Index(output, "Subject: first")
	second := strings.Index(output, "Subject: second")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("messages missing or out of order:\n%s", output)
	}
	if !strings.Contains(output, "From: ops@example.com") {
		t.Error("default From should fill the first message")
	}
	if !strings.Contains(output, "From: me@example.com") {
		t.Error("document From should be kept on the second message")
	}
	if strings.Count(output, "Priority: high") != 2 {
		t.Error("default priority should apply to both messages")
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := run(context.Background(), text.NewWithWriter(&bytes.Buffer{}), document.Defaults{}, []string{missing})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should name the file, got: %v", err)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, "subject: one\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := run(ctx, text.NewWithWriter(&buf), document.Defaults{}, []string{path})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error: got %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be rendered after cancellation")
	}
}

func TestDocumentDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Defaults: config.DefaultsConfig{
		From:     "ops@example.com",
		Sender:   "relay@example.com",
		ReplyTo:  []string{"support@example.com"},
		Priority: email.PriorityLow,
	}}

	d := documentDefaults(cfg)
	if d.From != "ops@example.com" || d.Sender != "relay@example.com" {
		t.Errorf("addresses: got %+v", d)
	}
	if len(d.ReplyTo) != 1 || d.ReplyTo[0] != "support@example.com" {
		t.Errorf("ReplyTo: got %v", d.ReplyTo)
	}
	if d.Priority != email.PriorityLow {
		t.Errorf("Priority: got %v, want %v", d.Priority, email.PriorityLow)
	}
}
