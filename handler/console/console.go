package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var _ slog.Handler = (*consoleHandler)(nil)

type consoleHandler struct {
	handler slog.Handler
	stdout  io.Writer
	attrs   []slog.Attr
}

type Option func(*consoleHandler)

// WithWriter sets the writer for console lines. Default is colorable stdout.
func WithWriter(w io.Writer) Option {
	return func(h *consoleHandler) {
		h.stdout = w
	}
}

// New returns a handler that prints progress lines for known records and drops the rest.
// h decides which levels are enabled.
func New(h slog.Handler, opts ...Option) slog.Handler {
	ch := &consoleHandler{
		handler: h,
		stdout:  colorable.NewColorableStdout(),
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

func (h *consoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *consoleHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := h.collect(r)
	switch r.Message {
	case "created image":
		return h.printf("Created %s\n", attrs["path"])
	case "generated placeholders":
		dir := strings.TrimSuffix(attrs["dir"].String(), "/")
		return h.printf("\nCreated %s placeholder dress images in %s/\n", attrs["count"], dir)
	case "verified image":
		path := attrs["path"].String()
		switch attrs["status"].String() {
		case "ok":
			return h.printf("%s %s\n", green("✓"), path)
		case "stale":
			return h.printf("%s %s: stale\n", yellow("~"), path)
		default:
			return h.printf("%s %s: %s\n", red("✗"), path, attrs["reason"])
		}
	case "verify completed":
		return h.printf("\n%s/%s images ok\n", attrs["ok"], attrs["count"])
	}
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		handler: h.handler.WithAttrs(attrs),
		stdout:  h.stdout,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	return &consoleHandler{handler: h.handler.WithGroup(name), stdout: h.stdout, attrs: h.attrs}
}

func (h *consoleHandler) collect(r slog.Record) map[string]slog.Value {
	m := map[string]slog.Value{}
	for _, a := range h.attrs {
		m[a.Key] = a.Value.Resolve()
	}
	r.Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.Resolve()
		return true
	})
	return m
}

func (h *consoleHandler) printf(format string, a ...any) error {
	_, err := fmt.Fprintf(h.stdout, format, a...)
	return err
}
