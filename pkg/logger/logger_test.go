package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_build(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		opts        LoggerOptions
		expectError bool
		expectWrite bool
	}{
		{
			name:        "positive: info level writes info messages",
			opts:        LoggerOptions{LogLevel: "info"},
			expectWrite: true,
		},
		{
			name:        "positive: default level writes info messages",
			opts:        LoggerOptions{},
			expectWrite: true,
		},
		{
			name:        "positive: pretty output writes info messages",
			opts:        LoggerOptions{LogLevel: "debug", PrettyLogOutput: true},
			expectWrite: true,
		},
		{
			name:        "positive: error level suppresses info messages",
			opts:        LoggerOptions{LogLevel: "error"},
			expectWrite: false,
		},
		{
			name:        "negative: unknown level",
			opts:        LoggerOptions{LogLevel: "loud"},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tc.opts.Out = &buf

			zeroLogger, err := build(tc.opts)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			zeroLogger.Info().Str("table", "sales_reps").Msg("applying migration")

			if tc.expectWrite {
				assert.Contains(t, buf.String(), "applying migration")
				assert.Contains(t, buf.String(), "sales_reps")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func Test_buildWithFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zeroLogger, err := build(LoggerOptions{
		LogLevel: "debug",
		LogFile:  filepath.Join(t.TempDir(), "migrate.log"),
		Out:      &buf,
	})
	require.NoError(t, err)

	zeroLogger.Debug().Msg("connected")
	assert.Contains(t, buf.String(), "connected")
}
