package status

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func newTestLogger(t *testing.T) (*UserLogger, *capturedLog) {
	t.Helper()
	captured := &capturedLog{}
	zlog := zerolog.New(captured)
	ctx := zlog.WithContext(context.Background())
	return NewUserLogger(ctx), captured
}

// capturedLog collects zerolog output for assertions
type capturedLog struct {
	lines []byte
}

func (c *capturedLog) Write(p []byte) (int, error) {
	c.lines = append(c.lines, p...)
	return len(p), nil
}

func TestUserLogger_LogFileChange(t *testing.T) {
	logger, captured := newTestLogger(t)

	logger.LogFileChange(FileChange{
		Type:         FileChanged,
		Path:         "src/components/button.css",
		Replacements: 2,
	})
	assert.Contains(t, string(captured.lines), "button.css")
	assert.Contains(t, string(captured.lines), `"replacements":2`)

	logger.LogFileChange(FileChange{
		Type:  FileError,
		Path:  "src/styles/dark-mode.css",
		Error: errors.New("read failed"),
	})
	assert.Contains(t, string(captured.lines), "read failed")
}

func TestUserLogger_Banners(t *testing.T) {
	logger, captured := newTestLogger(t)

	logger.Header("Starting color replacement...")
	logger.LogPhase("component stylesheets", 3)
	logger.Done("Color replacement complete!")
	logger.Info("Stylesheets are up to date")
	logger.Warning("something odd")

	out := string(captured.lines)
	assert.Contains(t, out, "Starting color replacement...")
	assert.Contains(t, out, "component stylesheets")
	assert.Contains(t, out, "Color replacement complete!")
	assert.Contains(t, out, "something odd")
}

func TestNewUserLogger(t *testing.T) {
	logger := NewUserLogger(context.Background())
	require.NotNil(t, logger)
	require.NotNil(t, logger.formatter)
}
