// SPDX-License-Identifier: MIT

// Package style holds the colors and text styles shared by CLI output.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// ColorEnabled reports whether w is a terminal that should receive color.
// NO_COLOR disables color everywhere; anything but an *os.File is plain.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Profile returns the color profile for w.
func Profile(w io.Writer) termenv.Profile {
	if !ColorEnabled(w) {
		return termenv.Ascii
	}

	return termenv.EnvColorProfile()
}

// Styles renders messages for one output stream.
type Styles struct {
	// Title marks headlines such as the route summary.
	Title lipgloss.Style
	// Good marks a successful result.
	Good lipgloss.Style
	// Warn marks a non-fatal outcome such as a cancelled search.
	Warn lipgloss.Style
	// Bad marks a negative answer such as a missing route.
	Bad lipgloss.Style
	// Muted marks secondary detail.
	Muted lipgloss.Style
}

// New builds Styles bound to w. Output to a non-terminal is never colored.
func New(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(Profile(w))

	return Styles{
		Title: r.NewStyle().Bold(true).Foreground(Iris),
		Good:  r.NewStyle().Foreground(Green),
		Warn:  r.NewStyle().Foreground(Yellow),
		Bad:   r.NewStyle().Foreground(Red),
		Muted: r.NewStyle().Foreground(Slate),
	}
}
