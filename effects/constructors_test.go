package effects_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniflow-go/uniflow/effects"
)

func TestAfter_EmitsOnceDelayElapses(t *testing.T) {
	ctx := context.Background()

	valueCh := make(chan int, 1)
	sub := effects.After(20*time.Millisecond, 42).Subscribe(ctx, effects.Observer[int]{
		OnNext: func(v int) { valueCh <- v },
	})

	select {
	case v := <-valueCh:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delayed value")
	}
	<-sub.Done()
}

func TestAfter_TeardownBeforeTimerEmitsNothing(t *testing.T) {
	ctx := context.Background()

	sub := effects.After(time.Hour, 42).Subscribe(ctx, effects.Observer[int]{
		OnNext:     func(int) { t.Error("unexpected value") },
		OnComplete: func() { t.Error("unexpected completion") },
	})

	sub.Dispose()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("producer did not exit after dispose")
	}
}

func TestRun_EmitsTaskResult(t *testing.T) {
	ctx := context.Background()

	valueCh := make(chan string, 1)
	sub := effects.Run(func(context.Context) (string, error) {
		return "ok", nil
	}).Subscribe(ctx, effects.Observer[string]{
		OnNext: func(v string) { valueCh <- v },
	})

	select {
	case v := <-valueCh:
		assert.Equal(t, "ok", v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task result")
	}
	<-sub.Done()
}

func TestRun_TaskErrorTerminatesEffect(t *testing.T) {
	ctx := context.Background()
	failed := errors.New("task failed")

	errCh := make(chan error, 1)
	sub := effects.Run(func(context.Context) (int, error) {
		return 0, failed
	}).Subscribe(ctx, effects.Observer[int]{
		OnNext:  func(int) { t.Error("unexpected value") },
		OnError: func(err error) { errCh <- err },
	})

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, failed)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task error")
	}
	<-sub.Done()
}

func TestEmpty_CompletesWithoutValues(t *testing.T) {
	ctx := context.Background()

	completed := make(chan struct{})
	sub := effects.Empty[int]().Subscribe(ctx, effects.Observer[int]{
		OnNext:     func(int) { t.Error("unexpected value") },
		OnComplete: func() { close(completed) },
	})

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for completion")
	}
	<-sub.Done()
}
