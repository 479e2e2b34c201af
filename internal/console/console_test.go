package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  rock  \npaper\n"), &out)
	ctx := context.Background()

	text, err := c.ReadLine(ctx, "choice: ")
	require.NoError(t, err)
	assert.Equal(t, "rock", text)

	text, err = c.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "paper", text)

	assert.Equal(t, "choice: ", out.String())
}

func TestConsole_EOF(t *testing.T) {
	c := New(strings.NewReader("only\n"), io.Discard)
	ctx := context.Background()

	_, err := c.ReadLine(ctx, "")
	require.NoError(t, err)

	_, err = c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)

	// stays at EOF
	_, err = c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_CancelledContext(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	c := New(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_CancelWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	c := New(r, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.ReadLine(ctx, "")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(w, "paper\n")
	}()

	text, err := c.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "paper", text)
}

func TestConsole_ReadError(t *testing.T) {
	r, w := io.Pipe()
	boom := errors.New("boom")
	go func() {
		_, _ = io.WriteString(w, "rock\n")
		_ = w.CloseWithError(boom)
	}()

	c := New(r, io.Discard)
	ctx := context.Background()

	text, err := c.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "rock", text)

	_, err = c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, boom)

	// the scanner has stopped and later reads report the same error
	_, err = c.ReadLine(ctx, "")
	assert.ErrorIs(t, err, boom)
}

func TestConsole_Writer(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	assert.Same(t, &out, c.Writer())
}
