package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphty/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), l)

	assert.Same(t, l, ctxlog.FromContext(ctx))
	ctxlog.FromContext(ctx).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello k=1")
}

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	fb := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fb, ctxlog.FromContextOr(context.Background(), fb))
	assert.Same(t, fb, ctxlog.FromContextOr(ctxlog.WithLogger(context.Background(), nil), fb))
}
