package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/numlab/internal/logging"
)

func TestLogLevel_Zap(t *testing.T) {
	cases := map[logging.LogLevel]zapcore.Level{
		"debug":   zap.DebugLevel,
		"trace":   zap.DebugLevel,
		"info":    zap.InfoLevel,
		"notice":  zap.InfoLevel,
		"warn":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"bogus":   zap.ErrorLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, in.Zap().Level(), "level %q", in)
	}
}

func TestLogLevel_Set(t *testing.T) {
	var l logging.LogLevel
	require.NoError(t, l.Set("warning"))
	assert.Equal(t, logging.LogLevel("warning"), l)
	assert.Error(t, l.Set("loud"))
	assert.Equal(t, logging.LogLevel("warning"), l, "failed Set keeps the old value")
	assert.Equal(t, "level", l.Type())
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.LogLevelWarn, &buf)

	log.Info("hidden")
	log.Warn("shown", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN\tshown")
	assert.Contains(t, buf.String(), `{"n": 3}`)
}

func TestContext(t *testing.T) {
	assert.NotNil(t, logging.FromContext(context.Background()))

	log := zap.NewExample()
	ctx := logging.WithLogger(context.Background(), log)
	assert.Same(t, log, logging.FromContext(ctx))
}
