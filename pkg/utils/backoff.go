package utils

import (
	"context"
	"time"
)

// SleepFunc aguarda a duração ou o cancelamento do contexto
type SleepFunc func(ctx context.Context, d time.Duration) error

// Backoff repete uma operação com espera exponencial: 2^tentativa * base entre as tentativas
type Backoff struct {
	base        time.Duration
	maxAttempts int
	sleep       SleepFunc
	retryIf     func(error) bool
}

func NewBackoff(base time.Duration, maxAttempts int) Backoff {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return Backoff{base: base, maxAttempts: maxAttempts, sleep: ContextSleep}
}

// WithSleep troca a função de espera
func (b Backoff) WithSleep(sleep SleepFunc) Backoff {
	b.sleep = sleep
	return b
}

// WithRetryIf limita as novas tentativas aos erros aceitos por retryIf
func (b Backoff) WithRetryIf(retryIf func(error) bool) Backoff {
	b.retryIf = retryIf
	return b
}

// Delay retorna a espera depois da tentativa informada (começando em 1)
func (b Backoff) Delay(attempt int) time.Duration {
	return time.Duration(1<<attempt) * b.base
}

// Do executa fn até ter sucesso ou esgotar as tentativas, retornando o último erro
func (b Backoff) Do(ctx context.Context, fn func(attempt int) error) error {
	var err error
	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if attempt == b.maxAttempts || (b.retryIf != nil && !b.retryIf(err)) {
			break
		}
		if sleepErr := b.sleep(ctx, b.Delay(attempt)); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

// ContextSleep dorme pela duração, retornando antes se o contexto for cancelado
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
