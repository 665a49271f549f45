package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

// TestMinimalEncoderNeverDiscardsFields ensures the console encoder never
// silently drops log fields. Losing a field here loses debugging information.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "uigen",
		Message:    "compiled aggregate",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String(FieldPackage, "example.com/widgets"), "package=example.com/widgets"},
		{zap.String(FieldAggregate, "Settings"), "aggregate=Settings"},
		{zap.String(FieldField, "Volume"), "field=Volume"},
		{zap.String(FieldTag, "slider"), "tag=slider"},
		{zap.Bool("bounded", true), "bounded=true"},
		{zap.Float64("speed", 0.5), "speed=0.5"},
		{zap.Strings("events", []string{"changed", "reset"}), "events"},
		{zap.Int(FieldCount, 12), "count=12"},
		{zap.Int32("offset", 42), "offset=42"},
		{zap.Int64("size_bytes", 9999999), "size_bytes=9999999"},
		{zap.Float32("power", 3.14), "power=3.14"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
		{zap.Error(nil), ""}, // nil error must not crash
		{zap.String(FieldError, "missing parameter"), "error=missing parameter"},
	}

	var all []zapcore.Field
	for _, tf := range testFields {
		all = append(all, tf.field)
	}

	buf, err := encoder.EncodeEntry(entry, all)
	require.NoError(t, err)

	clean := stripANSI(buf.String())
	for _, tf := range testFields {
		if tf.mustFind == "" {
			continue
		}
		assert.Contains(t, clean, tf.mustFind, "field silently discarded")
	}
}

func TestMinimalEncoderLayout(t *testing.T) {
	encoder := newMinimalEncoder()
	ts := time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC)

	buf, err := encoder.EncodeEntry(zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       ts,
		LoggerName: "uigen",
		Message:    "wrote file",
	}, []zapcore.Field{zap.String(FieldFile, "settings_ui.go")})
	require.NoError(t, err)

	assert.Equal(t, "13:04:35  uigen  wrote file  file=settings_ui.go\n", stripANSI(buf.String()))
}

func TestMinimalEncoderLevels(t *testing.T) {
	encoder := newMinimalEncoder()

	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.InfoLevel, ""},
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.WarnLevel, "WARN"},
		{zapcore.ErrorLevel, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf, err := encoder.EncodeEntry(zapcore.Entry{Level: tt.level, Time: time.Now(), Message: "m"}, nil)
			require.NoError(t, err)
			clean := stripANSI(buf.String())
			if tt.want == "" {
				assert.NotContains(t, clean, "INFO")
				return
			}
			assert.Contains(t, clean, tt.want)
		})
	}
}

func TestMinimalEncoderKeepsContextFields(t *testing.T) {
	var sb strings.Builder
	core := zapcore.NewCore(newMinimalEncoder(), zapcore.AddSync(&sb), zapcore.DebugLevel)
	log := zap.New(core).Sugar().With(FieldRunID, "abc-123", FieldCount, 3)

	log.Infow("generated", FieldFile, "out.go")

	clean := stripANSI(sb.String())
	assert.Contains(t, clean, "run_id=abc-123")
	assert.Contains(t, clean, "count=3")
	assert.Contains(t, clean, "file=out.go")
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, "gruvbox", currentTheme)

	SetTheme("does-not-exist")
	assert.Equal(t, "gruvbox", currentTheme, "unknown theme must be ignored")
}
