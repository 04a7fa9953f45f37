package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Do(t *testing.T) {
	errFalha := errors.New("falha")

	tests := []struct {
		name           string
		failures       int
		expectedErr    error
		expectedCalls  int
		expectedDelays []time.Duration
	}{
		{
			name:           "Sucesso na primeira tentativa",
			failures:       0,
			expectedCalls:  1,
			expectedDelays: nil,
		},
		{
			name:           "Sucesso na terceira tentativa",
			failures:       2,
			expectedCalls:  3,
			expectedDelays: []time.Duration{2 * time.Second, 4 * time.Second},
		},
		{
			name:           "Esgota as tentativas",
			failures:       5,
			expectedErr:    errFalha,
			expectedCalls:  3,
			expectedDelays: []time.Duration{2 * time.Second, 4 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var delays []time.Duration
			backoff := NewBackoff(time.Second, 3).WithSleep(func(_ context.Context, d time.Duration) error {
				delays = append(delays, d)
				return nil
			})

			calls := 0
			err := backoff.Do(context.Background(), func(attempt int) error {
				calls++
				assert.Equal(t, calls, attempt)
				if calls <= tt.failures {
					return errFalha
				}
				return nil
			})

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedCalls, calls)
			assert.Equal(t, tt.expectedDelays, delays)
		})
	}
}

func TestBackoff_ErroSemNovaTentativa(t *testing.T) {
	errPermanente := errors.New("permanente")
	var delays []time.Duration
	backoff := NewBackoff(time.Second, 3).
		WithSleep(func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		}).
		WithRetryIf(func(err error) bool { return !errors.Is(err, errPermanente) })

	calls := 0
	err := backoff.Do(context.Background(), func(int) error {
		calls++
		return errPermanente
	})

	assert.ErrorIs(t, err, errPermanente)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestBackoff_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := NewBackoff(time.Hour, 3).Do(ctx, func(int) error {
		calls++
		return errors.New("falha")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
