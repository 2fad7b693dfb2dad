// Package output picks the color profile for everything fanout prints and
// hands out writers and renderers that honor it.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile is Ascii under NO_COLOR and the detected profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w, stderr when nil, in a termenv.Output using ColorProfile.
// w is always treated as a terminal.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)...)
}

// Renderer returns a lipgloss renderer for w using ColorProfile. Styles
// bound to it render tables such as the target listing.
func Renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile())
	return r
}
