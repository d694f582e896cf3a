// Package main is the entry point for the mailenvelope tool, which loads YAML
// message documents and prints them through a renderer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shineum/mail-envelope/internal/config"
	"github.com/shineum/mail-envelope/internal/document"
	"github.com/shineum/mail-envelope/internal/render"
	"github.com/shineum/mail-envelope/internal/render/graph"
	"github.com/shineum/mail-envelope/internal/render/ses"
	"github.com/shineum/mail-envelope/internal/render/text"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	format := flag.String("format", "", "output format: "+strings.Join(render.Names(), ", ")+" (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mailenvelope [-config path] [-format name] file...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Render.Format = strings.ToLower(*format)
	}

	// Setup structured logging
	setupLogger(cfg.Logging.Level)

	r, err := selectRenderer(cfg, os.Stdout)
	if err != nil {
		slog.Error("failed to select renderer", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping", "signal", sig)
		cancel()
	}()

	if err := run(ctx, r, documentDefaults(cfg), flag.Args()); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// run loads each document file in order and renders every message it holds.
func run(ctx context.Context, r render.Renderer, defaults document.Defaults, paths []string) error {
	count := 0
	for _, path := range paths {
		msgs, err := document.LoadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for i, msg := range msgs {
			if err := ctx.Err(); err != nil {
				return err
			}

			document.ApplyDefaults(msg, defaults)
			if err := r.Render(ctx, msg); err != nil {
				return fmt.Errorf("%s: message %d: %w", path, i, err)
			}
			count++

			slog.Debug("rendered message",
				"file", path,
				"index", i,
				"renderer", r.Name(),
				"recipients", len(msg.Recipients()),
			)
		}
	}

	slog.Info("rendering complete", "renderer", r.Name(), "messages", count)
	return nil
}

// loadConfig loads configuration from the specified path (YAML + env override)
// or from environment variables only if no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupLogger configures the global slog logger with JSON output on stderr and
// the specified log level. Stdout is reserved for rendered payloads.
func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// errUnknownFormat is returned for a render format with no renderer.
var errUnknownFormat = errors.New("unknown render format")

// selectRenderer chooses the output renderer based on configuration.
func selectRenderer(cfg *config.Config, w io.Writer) (render.Renderer, error) {
	switch cfg.Render.Format {
	case render.NameText, "":
		return text.NewWithWriter(w), nil
	case render.NameSES:
		return ses.NewWithWriter(w), nil
	case render.NameGraph:
		return graph.NewWithWriter(graph.Config{
			SaveToSentItems: cfg.Render.GraphSaveToSent,
		}, w), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)",
			errUnknownFormat, cfg.Render.Format, strings.Join(render.Names(), ", "))
	}
}

func documentDefaults(cfg *config.Config) document.Defaults {
	return document.Defaults{
		From:     cfg.Defaults.From,
		Sender:   cfg.Defaults.Sender,
		ReplyTo:  cfg.Defaults.ReplyTo,
		Priority: cfg.Defaults.Priority,
	}
}
