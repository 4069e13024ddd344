package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utility-api/internal/config"
	"utility-api/internal/testutil"
)

func TestServerRunStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second

	s := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, s.ready.Load, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.False(t, s.ready.Load())
}

func TestServerHandlerServesHealth(t *testing.T) {
	s := New(config.Default())

	body := testutil.GetJSON(t, s.Handler(), "/health", 200)
	assert.Equal(t, "healthy", body["status"])
}
