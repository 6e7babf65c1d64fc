package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/datefilter/logger"
)

func TestInitAndBasicMethods(t *testing.T) {
	log := logger.Init("datefilter-test", "development")
	assert.NotNil(t, log)

	log.Info("info")
	log.Warn("warn")
	log.Error("error")
	log.Debug("debug")

	log.Infof("infof: %s", "ok")
	log.Debugf("debugf: %s", "ok")

	log.Infow("infow", "key", "value")
	log.Errorw("errorw", "key", "value")

	l2 := log.With("run_id", "test")
	assert.NotNil(t, l2)
	l2.Info("with works")

	log.SafeSync()
}

func TestNewUnknownEnvFallsBack(t *testing.T) {
	log, err := logger.New("datefilter-test", "whatever")
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("fallback config works")
	log.SafeSync()
}
