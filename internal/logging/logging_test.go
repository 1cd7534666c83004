package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gasfocus/internal/logging"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gasfocus.log")

	result := logging.New(logging.Config{Level: "debug", File: path})
	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Str("component", "test").Msg("hello")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), "hello")
}

func TestNew_FallbackWhenFileUnopenable(t *testing.T) {
	result := logging.New(logging.Config{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.False(t, result.UsingFile)
	assert.NotEmpty(t, result.FallbackReason)
	require.NoError(t, result.Close())
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	result := logging.New(logging.Config{Level: "shouting"})
	assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
}

func TestComponentLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	result := logging.New(logging.Config{Level: "debug", File: path})

	log := logging.ComponentLogger(result.Logger, "engine")
	log.Debug().Msg("tagged")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"engine"`)
}

func TestTraceIDRoundTrip(t *testing.T) {
	id := logging.NewTraceID()
	assert.Len(t, id, 26) // ULID canonical encoding

	ctx := logging.ContextWithTraceID(context.Background(), id)
	assert.Equal(t, id, logging.TraceIDFromContext(ctx))

	// Absent trace IDs are generated rather than returned empty.
	generated := logging.TraceIDFromContext(context.Background())
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, id, generated)
}
