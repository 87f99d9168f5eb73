// Package console implements an appender.Appender that writes rendered
// records to an io.Writer, defaulting to os.Stdout. It is grounded on
// handler/consolehandler/console.go's consoleBase, stripped of the
// queue/overflow/concurrent-writer machinery that dispatcher.
// AppenderAdapter and dispatcher.AppenderWorker now own: this appender
// is driven by exactly one goroutine for its whole life, so it needs no
// locking of its own.
package console

import (
	"io"
	"os"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/renderer"
)

// Config configures a console Appender.
type Config struct {
	// Name identifies this appender to diagnostics and the events
	// Handler. Defaults to "console".
	Name string
	// Writer receives rendered output. Defaults to os.Stdout.
	Writer io.Writer
	// Renderer turns a record into text. Defaults to renderer.NewText("").
	Renderer appender.Renderer
	// Level is the minimum level this appender accepts. Defaults to
	// core.Debug (accept everything).
	Level core.Level
}

func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "console"
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Renderer == nil {
		cfg.Renderer = renderer.NewText("")
	}
}

// Console writes every record it receives to cfg.Writer via cfg.Renderer.
// It never fails Setup or Write against a healthy writer, and TryRestart
// always succeeds, since there is no connection to re-establish.
type Console struct {
	appender.Base

	name     string
	writer   io.Writer
	render   appender.Renderer
	asWriter appender.WriterRenderer
}

// New creates a Console appender from cfg.
func New(cfg Config) *Console {
	applyDefaults(&cfg)
	c := &Console{
		name:   cfg.Name,
		writer: cfg.Writer,
		render: cfg.Renderer,
	}
	c.asWriter, _ = cfg.Renderer.(appender.WriterRenderer)
	c.SetLevel(cfg.Level)
	return c
}

// Name implements appender.Appender.
func (c *Console) Name() string { return c.name }

// Setup implements appender.Appender.
func (c *Console) Setup() error { return c.render.Setup() }

// Write implements appender.Appender.
func (c *Console) Write(record core.LogRecord) error {
	if c.asWriter != nil {
		return c.asWriter.RenderTo(record, c.writer)
	}
	out, err := c.render.Render(record)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.writer, out)
	return err
}

// TryRestart implements appender.Appender. A console writer has nothing
// to reconnect, so it always reports ready.
func (c *Console) TryRestart() bool { return true }

// Teardown implements appender.Appender.
func (c *Console) Teardown() error { return c.render.Teardown() }
