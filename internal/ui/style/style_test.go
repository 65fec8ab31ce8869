// SPDX-License-Identifier: MIT

package style_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/ui/style"
)

func TestColorEnabled_NonTerminals(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, style.ColorEnabled(&buf))
	assert.Equal(t, termenv.Ascii, style.Profile(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, style.ColorEnabled(f), "a regular file is not a terminal")
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, style.ColorEnabled(os.Stdout))
}

func TestStyles_PlainOutputIsUnchanged(t *testing.T) {
	var buf bytes.Buffer
	s := style.New(&buf)

	for _, st := range []struct {
		name string
		out  string
	}{
		{"title", s.Title.Render("Cost: 3")},
		{"good", s.Good.Render("done")},
		{"warn", s.Warn.Render("Search cancelled")},
		{"bad", s.Bad.Render("There is no route between A and B")},
		{"muted", s.Muted.Render("[1] A")},
	} {
		assert.NotContains(t, st.out, "\x1b[", st.name)
	}
	assert.Equal(t, "Search cancelled", s.Warn.Render("Search cancelled"))
}
