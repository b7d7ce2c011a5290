package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in   string
		want slog.Level
	}
	cases := []testCase{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), tc.in)
	}
}

func TestLevelFilterAndMultiHandler(t *testing.T) {
	var low, high bytes.Buffer
	h := MultiHandler{hs: []slog.Handler{
		LevelFilter{
			pass: func(l slog.Level) bool { return l < slog.LevelError },
			h:    slog.NewTextHandler(&low, &slog.HandlerOptions{Level: LevelTrace}),
		},
		LevelFilter{
			pass: func(l slog.Level) bool { return l >= slog.LevelError },
			h:    slog.NewTextHandler(&high, &slog.HandlerOptions{Level: slog.LevelError}),
		},
	}}
	logger := slog.New(h).With("component", "test")

	logger.Info("hello")
	logger.Log(context.Background(), LevelTrace, "tick")
	logger.Error("broken")

	assert.Contains(t, low.String(), "msg=hello")
	assert.Contains(t, low.String(), "msg=tick")
	assert.Contains(t, low.String(), "component=test")
	assert.NotContains(t, low.String(), "broken")
	assert.Contains(t, high.String(), "msg=broken")
	assert.NotContains(t, high.String(), "hello")
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace, ReplaceAttr: traceLevelName}))
	logger.Log(context.Background(), LevelTrace, "tick")
	assert.Contains(t, buf.String(), "level=TRACE")
}

func TestSetupLoggerFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "padservo.log")
	logger, closers, err := SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("file entry", "index", 1)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "file entry"))
}

func TestColorHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&colorHandler{w: &buf, level: slog.LevelDebug})
	logger.Debug("debug line", "index", 2)
	logger.Log(context.Background(), LevelTrace, "hidden")

	assert.Contains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "index=2")
	assert.NotContains(t, buf.String(), "hidden")
}
