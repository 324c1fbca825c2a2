package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shelfmate/shelfmate/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	t.Run("stays closed on successes", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 2*time.Second, 0.3, 3)
		for i := 0; i < 20; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("opens after failure percentile", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.3, 3)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		err := cb.Call(successfulService)
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	})

	t.Run("probes the service again after the timeout", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

		cb.Reset()
		require.NoError(t, cb.Call(successfulService))
	})
}
