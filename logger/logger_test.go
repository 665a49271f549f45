package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{"console quiet", false, VerbosityUser},
		{"console debug", false, VerbosityDebug},
		{"json info", true, VerbosityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.jsonOutput, tt.verbosity)
			require.NoError(t, err)
			defer func() { Logger = zap.NewNop().Sugar() }()

			require.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.True(t, Logger.Desugar().Core().Enabled(VerbosityToLevel(tt.verbosity)))
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(-1))
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityTrace+2))

	assert.True(t, ShouldLogTrace(VerbosityTrace))
	assert.False(t, ShouldLogTrace(VerbosityDebug))
	assert.Equal(t, "Trace (-vvv+)", LevelName(5))
}

func TestShouldOutput(t *testing.T) {
	assert.True(t, ShouldOutput(VerbosityUser, OutputDiagnostics))
	assert.False(t, ShouldOutput(VerbosityUser, OutputProgress))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputProgress))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputSchema))
	assert.True(t, ShouldOutput(VerbosityDebug, OutputSchema))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputTagTrees))
	assert.True(t, ShouldOutput(VerbosityTrace, OutputTagTrees))
	assert.Equal(t, "tag-trees", CategoryName(OutputTagTrees))
	assert.Equal(t, "unknown", CategoryName(OutputCategory(99)))
}

func TestLoggerFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	ctx := WithComponent(WithRunID(context.Background(), "run-1"), "uigen")
	LoggerFromContext(ctx).Infow("loaded", FieldCount, 2)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "run-1", fields[FieldRunID])
	assert.Equal(t, "uigen", fields[FieldComponent])
	assert.EqualValues(t, 2, fields[FieldCount])

	assert.Same(t, Logger, LoggerFromContext(context.Background()))
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	Infow("info", FieldFile, "a.go")
	Infof("info %d", 1)
	Warnw("warn")
	Errorw("error", FieldError, "boom")
	Debugw("debug")
	Debugf("debug %s", "x")

	assert.Equal(t, 6, logs.Len())
	assert.Equal(t, "info 1", logs.All()[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[3].Level)
}

func TestComponentLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	ChildLogger(ComponentLogger("emit"), FieldAggregate, "Settings").Debug("schema")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "emit", entry.LoggerName)
	assert.Equal(t, "Settings", entry.ContextMap()[FieldAggregate])
}

func BenchmarkMinimalEncoder(b *testing.B) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{Level: zapcore.InfoLevel, Message: "bench"}
	fields := []zapcore.Field{zap.String(FieldFile, "x.go"), zap.Int(FieldCount, 4)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ := enc.EncodeEntry(entry, fields)
		buf.Free()
	}
}
