package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirboldilox/hrsdb/internal/pkg/config"
	"github.com/sirboldilox/hrsdb/internal/pkg/logger"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// MakeSamples generates a deterministic test sample array of length n.
func MakeSamples(n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i)*0.25 - float64(n)/8
	}
	return samples
}
