// SPDX-License-Identifier: MIT

package app_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/app"
)

func TestTerminalPrompter(t *testing.T) {
	var out bytes.Buffer
	p := app.NewTerminalPrompter(strings.NewReader("  Elm \nYES\nn\nlast"), &out)
	ctx := context.Background()

	answer, err := p.Ask(ctx, "Start: ")
	require.NoError(t, err)
	assert.Equal(t, "Elm", answer)

	ok, err := p.Confirm(ctx, "Continue?")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm(ctx, "Continue?")
	require.NoError(t, err)
	assert.False(t, ok)

	answer, err = p.Ask(ctx, "End: ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = p.Ask(ctx, "Start: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Start: Continue? (y/n): Continue? (y/n): End: Start: ", out.String())
}

func TestTerminalPrompter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := app.NewTerminalPrompter(strings.NewReader("A\n"), io.Discard).Ask(ctx, "Start: ")
	assert.ErrorIs(t, err, context.Canceled)
}
