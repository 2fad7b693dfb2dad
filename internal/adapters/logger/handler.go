package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/fanout/internal/ui/output"
	"go.trai.ch/fanout/internal/ui/style"
)

// Unit records carry these attributes and are rendered as a single aligned
// line: "✓ react          button.lite.tsx".
const (
	UnitMessage = "unit"
	AttrTarget  = "target"
	AttrPath    = "path"
	AttrCached  = "cached"
)

// targetColumn fits the longest target identifier, "custom-element".
const targetColumn = 14

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Handlers derived through WithAttrs and WithGroup share the writer lock.
type PrettyHandler struct {
	mu    *sync.Mutex
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:    &sync.Mutex{},
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var line string
	if r.Message == UnitMessage && h.group == "" {
		line = h.unitLine(r)
	} else {
		line = h.messageLine(r)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line + "\n")
	return err
}

//nolint:gocritic // slog.Record by value, as in Handle
func (h *PrettyHandler) messageLine(r slog.Record) string {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	return h.out.String(msg).Foreground(color).String()
}

//nolint:gocritic // slog.Record by value, as in Handle
func (h *PrettyHandler) unitLine(r slog.Record) string {
	var target, path string
	var cached bool
	r.Attrs(func(attr slog.Attr) bool {
		switch attr.Key {
		case AttrTarget:
			target = attr.Value.String()
		case AttrPath:
			path = attr.Value.String()
		case AttrCached:
			cached = attr.Value.Kind() == slog.KindBool && attr.Value.Bool()
		}
		return true
	})

	icon := h.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
	name := h.out.String(fmt.Sprintf("%-*s", targetColumn, target)).Foreground(termenv.RGBColor(string(style.Iris)))
	line := icon.String() + " " + name.String() + " " + path
	if cached {
		line += " " + h.out.String("(unchanged)").Foreground(termenv.RGBColor(string(style.Slate))).String()
	}
	return line
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		mu:    h.mu,
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		mu:    h.mu,
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
