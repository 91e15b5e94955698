package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTask(t *testing.T) {
	p := NewPool(4)
	p.Start(context.Background())

	done := make(chan struct{})
	ok := p.Submit("probe", func(ctx context.Context) { close(done) })
	require.True(t, ok)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
	p.Stop()
}

func TestTasksRunInOrder(t *testing.T) {
	p := NewPool(8)
	p.Start(context.Background())

	var order []int
	done := make(chan struct{})
	for i := 1; i <= 3; i++ {
		i := i
		p.Submit("ordered", func(ctx context.Context) {
			order = append(order, i)
			if i == 3 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not finish")
	}
	assert.Equal(t, []int{1, 2, 3}, order)
	p.Stop()
}

func TestStopDrainsQueuedTasks(t *testing.T) {
	p := NewPool(8)
	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit("queued", func(ctx context.Context) { ran.Add(1) }))
	}

	p.Start(context.Background())
	p.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.True(t, p.Wait(ctx))
	assert.Equal(t, int32(5), ran.Load())
}

func TestSubmitAfterStopRejected(t *testing.T) {
	p := NewPool(4)
	p.Start(context.Background())
	p.Stop()

	assert.False(t, p.Submit("late", func(ctx context.Context) {}))
}

func TestSubmitFullQueueRejected(t *testing.T) {
	p := NewPool(1) // never started, so the buffer fills
	require.True(t, p.Submit("first", func(ctx context.Context) {}))
	assert.False(t, p.Submit("second", func(ctx context.Context) {}))
}
