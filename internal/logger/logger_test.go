package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture routes output to a buffer with verbose set to v and restores
// the defaults when the test ends.
func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("acquired lock %s", "public/data/_backups/.market.lock")

	assert.Equal(t, "[DEBUG] acquired lock public/data/_backups/.market.lock\n", buf.String())
}

func TestDebug_WithoutArgs(t *testing.T) {
	buf := capture(t, true)

	Debug("no backup needed")

	assert.Equal(t, "[DEBUG] no backup needed\n", buf.String())
}

func TestQuietWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("debug")
	Info("info")
	Warn("warn")
	Section("section")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Publish")

	assert.Equal(t, "\n=== Publish ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	buf := capture(t, true)

	Info("wrote %d bytes", 42)

	assert.Equal(t, "[INFO] wrote 42 bytes\n", buf.String())
}

func TestWarn(t *testing.T) {
	buf := capture(t, true)

	Warn("release lock: %v", "busy")

	assert.Equal(t, "[WARN] release lock: busy\n", buf.String())
}

func TestSetOutput_Switches(t *testing.T) {
	first := capture(t, true)
	Info("one")

	var second bytes.Buffer
	SetOutput(&second)
	Info("two")

	assert.Equal(t, "[INFO] one\n", first.String())
	assert.Equal(t, "[INFO] two\n", second.String())
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			Section("concurrent")
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
