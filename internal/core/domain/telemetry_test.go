package domain_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/den/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level domain.LogLevel
		want  string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(42), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLogLevel_MatchesSlog(t *testing.T) {
	assert.EqualValues(t, slog.LevelDebug, domain.LogLevelDebug)
	assert.EqualValues(t, slog.LevelInfo, domain.LogLevelInfo)
	assert.EqualValues(t, slog.LevelWarn, domain.LogLevelWarn)
	assert.EqualValues(t, slog.LevelError, domain.LogLevelError)
}
