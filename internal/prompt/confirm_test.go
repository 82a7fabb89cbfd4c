package prompt

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clai-tools/clai/internal/console"
)

// syncWriter is a goroutine-safe capture buffer.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestConfirmLineYes(t *testing.T) {
	w := &syncWriter{}
	c := console.New(w, false)

	ok, err := Confirm(c, strings.NewReader("y\n"), "Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, w.String(), "Proceed? [y/N]")
}

func TestConfirmLineVariants(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // EOF defaults to no
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := console.New(&syncWriter{}, false)
			ok, err := Confirm(c, strings.NewReader(tt.input), "Sure?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestConfirmSuspendsAndRestoresWaiting(t *testing.T) {
	w := &syncWriter{}
	c := console.New(w, false)
	c.SetInterval(10 * time.Millisecond)

	c.StartWaiting("Migrating...")
	defer c.StopWaiting()
	time.Sleep(25 * time.Millisecond)

	ok, err := Confirm(c, strings.NewReader("y\n"), "Apply migration?")
	require.NoError(t, err)
	assert.True(t, ok)

	// The waiting period survives the prompt with its original message.
	assert.True(t, c.Waiting())
	assert.Equal(t, "Migrating...", c.WaitingMessage())
	assert.Contains(t, w.String(), "Apply migration? [y/N]")
}
