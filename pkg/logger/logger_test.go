package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(Logger, string)
		expectedLevel zapcore.Level
	}{
		{
			name:          "Info",
			log:           func(l Logger, msg string) { l.Info(msg) },
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Debug",
			log:           func(l Logger, msg string) { l.Debug(msg) },
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "Warn",
			log:           func(l Logger, msg string) { l.Warn(msg) },
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Error",
			log:           func(l Logger, msg string) { l.Error(msg) },
			expectedLevel: zapcore.ErrorLevel,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			observerLogger, logs := observer.New(zap.DebugLevel)
			dut := &ZapLogger{zap.New(observerLogger)}

			const testMessage = "ABC"
			tc.log(dut, testMessage)

			require.Equal(t, 1, logs.Len())

			actualMessage := logs.All()[0]
			require.Equal(t, testMessage, actualMessage.Message)
			require.Equal(t, map[string]interface{}{}, actualMessage.ContextMap())
			require.Equal(t, tc.expectedLevel, actualMessage.Level)
		})
	}
}

func TestWith(t *testing.T) {
	log, logs := NewObserverLogger("debug")

	child := log.With(zap.String("handle", "aa"))
	child.Info("rendered", zap.Int("depth", 2))
	log.Info("plain")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, map[string]interface{}{"handle": "aa", "depth": int64(2)}, logs.All()[0].ContextMap())
	require.Empty(t, logs.All()[1].ContextMap())
}

func TestObserverLevel(t *testing.T) {
	log, logs := NewObserverLogger("warn")

	log.Info("dropped")
	log.Warn("kept")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestNewLogger(t *testing.T) {
	for _, tc := range []struct {
		name      string
		format    string
		level     string
		expectErr bool
	}{
		{name: "text_info", format: "text", level: "info"},
		{name: "json_debug", format: "json", level: "debug"},
		{name: "none_ignores_format", format: "bogus", level: "none"},
		{name: "unknown_level", format: "text", level: "verbose", expectErr: true},
		{name: "unknown_format", format: "xml", level: "info", expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.format, tc.level)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}

	require.Panics(t, func() {
		MustNewLogger("text", "verbose")
	})
}
