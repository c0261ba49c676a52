package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationBounds(t *testing.T) {
	base := 100 * time.Millisecond

	for i := 0; i < 1000; i++ {
		got := Duration(base, DefaultJitter)
		require.GreaterOrEqual(t, got, base)
		require.LessOrEqual(t, got, base+base/2)
	}
}

func TestDurationZeroFactor(t *testing.T) {
	base := 250 * time.Millisecond
	assert.Equal(t, base, Duration(base, 0))
}

func TestDurationWithSeedDeterministic(t *testing.T) {
	base := 100 * time.Millisecond

	first := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewSource(42)))
	second := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewSource(42)))

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, base)
	assert.LessOrEqual(t, first, base+base/2)
}

func TestExponentialBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "первая попытка", attempt: 0, want: 100 * time.Millisecond},
		{name: "вторая попытка", attempt: 1, want: 200 * time.Millisecond},
		{name: "третья попытка", attempt: 2, want: 400 * time.Millisecond},
		{name: "упирается в максимум", attempt: 10, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExponentialBackoff(base, max, tt.attempt, DefaultJitter)
			assert.GreaterOrEqual(t, got, tt.want)
			assert.LessOrEqual(t, got, tt.want+tt.want/2)
		})
	}
}
