package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLogger(t *testing.T) {
	t.Run("returns the context logger when set", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		scoped := zap.New(core).With(zap.String("request_id", "req-1"))

		ctx := WithLogger(context.Background(), scoped)
		l := GetLogger(ctx, zap.NewNop())
		l.Info("hello")

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		fallback := zap.NewNop()
		assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, GetLogger(context.Background(), nil))
		assert.NotNil(t, GetLogger(nil, nil))
	})
}

func TestExtractMetadata(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-7")
	ctx = WithUserID(ctx, "user-9")

	meta := ExtractMetadata(ctx)
	assert.Equal(t, "req-7", meta.RequestID)
	assert.Equal(t, "user-9", meta.UserID)

	empty := ExtractMetadata(context.Background())
	assert.Empty(t, empty.RequestID)
	assert.Empty(t, empty.UserID)
}
