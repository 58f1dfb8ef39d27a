package reward

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failEvery  int
	}{
		{name: "Simple tasks", numTasks: 5, numWorkers: 2},
		{name: "Failing tasks do not stop workers", numTasks: 6, numWorkers: 2, failEvery: 2},
		{name: "More workers than tasks", numTasks: 1, numWorkers: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers, tt.numTasks)

			var executed atomic.Int32
			for i := 0; i < tt.numTasks; i++ {
				i := i
				err := wp.AddTask(context.Background(), func() error {
					time.Sleep(10 * time.Millisecond)
					executed.Add(1)
					if tt.failEvery > 0 && i%tt.failEvery == 0 {
						return assert.AnError
					}
					return nil
				})
				require.NoError(t, err)
			}

			wp.Close()
			assert.Equal(t, int32(tt.numTasks), executed.Load())
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_FullQueueDoesNotBlock(t *testing.T) {
	wp := NewWorkerPool(1, 1)

	started := make(chan struct{})
	block := make(chan struct{})
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-block
		return nil
	}))
	<-started
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	done := make(chan error, 1)
	go func() {
		done <- wp.AddTask(context.Background(), func() error {
			t.Error("dropped task should not run")
			return nil
		})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("AddTask blocked on a full queue")
	}

	close(block)
	wp.Close()
}

func TestWorkerPool_AddAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	wp.Close()
	wp.Close()

	err := wp.AddTask(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}
