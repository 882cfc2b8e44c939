package debuglog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(out *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestPrinter_DisabledByDefault(t *testing.T) {
	var out bytes.Buffer
	p := New(WithLogger(newTestLogger(&out)))

	p.Printf("ephe file %s opened", "seas_18.se1")

	assert.False(t, p.Enabled())
	assert.Empty(t, out.String())
}

func TestPrinter_ForwardsWhenEnabled(t *testing.T) {
	var out bytes.Buffer
	p := New(WithEnabled(true), WithLogger(newTestLogger(&out)))

	p.Printf("read %d bytes\n", 42)

	require.True(t, p.Enabled())
	assert.Contains(t, out.String(), "read 42 bytes")
	assert.Contains(t, out.String(), "source=guest")
}

func TestPrinter_Capture(t *testing.T) {
	var out bytes.Buffer
	p := New(WithEnabled(true), WithLogger(newTestLogger(&out)), WithCapture(16))

	p.Print("first ")
	p.Print("second")

	assert.Equal(t, "first second", p.Captured())
	assert.False(t, p.Truncated())

	p.Print("overflowing message")
	assert.True(t, p.Truncated())
	assert.Len(t, p.Captured(), 16)
}

func TestPrinter_NilIsSilent(t *testing.T) {
	var p *Printer

	assert.NotPanics(t, func() {
		p.Print("dropped")
		p.Printf("dropped %d", 1)
	})
	assert.False(t, p.Enabled())
	assert.Empty(t, p.Captured())
}
