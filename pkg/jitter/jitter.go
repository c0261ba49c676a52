// Package jitter добавляет случайность в интервалы отступления (backoff),
// чтобы фоновые повторы не синхронизировались между собой.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(j)
}

// DurationWithSeed — то же, что Duration, но с заданным генератором.
// Используется в тестах, когда нужно детерминированное поведение.
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *rand.Rand) time.Duration {
	return d + time.Duration(rng.Float64()*jitterFactor*float64(d))
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// base — начальная длительность, max — верхняя граница,
// attempt — номер попытки (с нуля), jitterFactor — коэффициент джиттера.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}
