package translate_test

import (
	"context"
	"testing"
	"time"

	"github.com/dkubicek/preklad/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := translate.NewDomainLimiter(1)
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.sk"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("domains are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := translate.NewDomainLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "a.example.sk"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.example.sk"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := translate.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.sk"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := limiter.Wait(ctx, "example.sk")
		require.Error(t, err)
	})
}
