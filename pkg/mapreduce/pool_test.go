package mapreduce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool_RunsEverySubmittedTask(t *testing.T) {
	p := NewPool(3)
	p.Start()

	slots := make([]int, 10)
	for i := range slots {
		p.Submit(func() { slots[i] = i * i })
	}
	p.Close()

	for i, v := range slots {
		require.Equal(t, i*i, v)
	}
}

func TestPool_CloseWaitsForRunningTask(t *testing.T) {
	p := NewPool(1)
	p.Start()

	var done atomic.Bool
	p.Submit(func() {
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	})

	p.Close()
	require.True(t, done.Load())
}

func TestPool_StartIsIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Start()
	p.Start()

	var calls atomic.Int32
	p.Submit(func() { calls.Add(1) })
	p.Submit(nil)
	p.Close()
	require.Equal(t, int32(1), calls.Load())
}

func TestPool_NonPositiveWorkersDefaultsToOne(t *testing.T) {
	p := NewPool(0)
	require.Equal(t, 1, p.numWorkers)
}

func TestPool_SubmitAfterClosePanics(t *testing.T) {
	p := NewPool(1)
	p.Start()
	p.Close()

	require.Panics(t, func() { p.Submit(func() {}) })
}
