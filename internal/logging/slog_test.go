package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := context.Background()
	l.Info(ctx, "hello", "k", "v")
	l.Warn(ctx, "watch out")
	l.Error(ctx, "broken")

	out := buf.String()
	require.Contains(t, out, `"msg":"hello"`)
	require.Contains(t, out, `"k":"v"`)
	require.Contains(t, out, `"level":"WARN"`)
	require.Contains(t, out, `"level":"ERROR"`)
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	child := l.With("module", "test")
	child.Info(context.Background(), "tagged")

	require.Contains(t, buf.String(), `"module":"test"`)
}
