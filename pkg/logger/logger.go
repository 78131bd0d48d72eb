package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Options struct {
	Level slog.Level
}

var DefaultOptions = Options{Level: slog.LevelInfo}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// Handler is a slog.Handler producing compact, colored, single-line output
// meant for humans reading a terminal or container log.
type Handler struct {
	opts  Options
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

func NewHandler(out io.Writer, opts Options) *Handler {
	return &Handler{
		opts: opts,
		mu:   &sync.Mutex{},
		out:  out,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(r.Time.Format(time.TimeOnly))
	sb.WriteByte(' ')

	lc, ok := levelColors[r.Level]
	if !ok {
		lc = color.New(color.FgWhite)
	}
	sb.WriteString(lc.Sprintf("%-5s", r.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	appendAttr := func(a slog.Attr) {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		sb.WriteByte(' ')
		sb.WriteString(color.New(color.Faint).Sprintf("%s=%v", key, a.Value))
	}

	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	if h2.group == "" {
		h2.group = name
	} else {
		h2.group = h2.group + "." + name
	}
	return &h2
}

// Err is the conventional attribute for attaching an error to a log record.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", fmt.Sprintf("%v", err))
}
