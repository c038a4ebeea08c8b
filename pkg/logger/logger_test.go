package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salon.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("skipped %d", 1)
	log.Warn("slot %s taken", "09:00")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"msg":"slot 09:00 taken"`)
	assert.NotContains(t, string(data), "skipped")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Error("y %v", 1)
	})
	assert.NoError(t, log.Close())
}
