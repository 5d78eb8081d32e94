package logging

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			l, err := New(model.LoggingConfig{Level: level, Format: "json"})
			require.NoError(t, err)

			want, err := zapcore.ParseLevel(level)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(model.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestIsStdoutSyncError(t *testing.T) {
	assert.True(t, isStdoutSyncError(syscall.EINVAL))
	assert.True(t, isStdoutSyncError(fmt.Errorf("sync /dev/stderr: %w", syscall.ENOTTY)))
	assert.False(t, isStdoutSyncError(errors.New("disk full")))
}
