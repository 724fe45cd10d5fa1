package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerRunsEveryIndexOnce(t *testing.T) {
	w := NewWorker(3, nil)
	seen := make([]int32, 10)

	w.Process(context.Background(), len(seen), func(_ context.Context, index int) {
		atomic.AddInt32(&seen[index], 1)
	})

	for i, n := range seen {
		assert.Equal(t, int32(1), n, "index %d", i)
	}
}

func TestWorkerRespectsConcurrencyLimit(t *testing.T) {
	w := NewWorker(2, nil)
	var running, peak int32

	w.Process(context.Background(), 8, func(context.Context, int) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
	})

	assert.LessOrEqual(t, peak, int32(2))
	assert.Equal(t, 2, w.Concurrency())
}

func TestWorkerDefaultsToSequential(t *testing.T) {
	w := NewWorker(0, nil)
	var order []int

	w.Process(context.Background(), 4, func(_ context.Context, index int) {
		order = append(order, index)
	})

	assert.Equal(t, []int{0, 1, 2, 3}, order)
	assert.Equal(t, 1, w.Concurrency())
}

func TestWorkerDispatchesAfterCancel(t *testing.T) {
	w := NewWorker(2, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int32

	w.Process(ctx, 5, func(ctx context.Context, _ int) {
		assert.Error(t, ctx.Err())
		atomic.AddInt32(&calls, 1)
	})

	assert.Equal(t, int32(5), calls)
}
