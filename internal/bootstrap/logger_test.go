package bootstrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/Vectus-Drive/backend/internal/bootstrap"
)

func TestNewLogger(t *testing.T) {
	t.Run("development by default", func(t *testing.T) {
		t.Setenv("APP_ENV", "")

		logger, err := bootstrap.NewLogger()
		assert.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production config under APP_ENV=production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		logger, err := bootstrap.NewLogger()
		assert.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})
}
