package future

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

func TestSupply(t *testing.T) {
	p := NewPool(2)
	f := Supply(p, func() (int, error) { return 42, nil })

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSupplyError(t *testing.T) {
	p := NewPool(1)
	boom := errors.New("boom")
	f := Supply(p, func() (bool, error) { return false, boom })

	_, err := f.Get()
	assert.ErrorIs(t, err, boom)
}

func TestSupplyPanic(t *testing.T) {
	logtest.NewCollector(t)

	p := NewPool(1)
	f := Supply(p, func() (bool, error) { panic("kaboom") })

	_, err := f.Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestSupplyDoesNotBlockCaller(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	var ran atomic.Bool

	f := Supply(p, func() (bool, error) {
		<-release
		ran.Store(true)
		return true, nil
	})

	select {
	case <-f.Done():
		t.Fatal("future completed before the task was released")
	default:
	}

	close(release)
	v, err := f.Get()
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, ran.Load())
}

func TestSupplyReturnsWhilePoolBusy(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})

	first := Supply(p, func() (int, error) {
		<-release
		return 1, nil
	})

	submitted := make(chan *Future[int], 1)
	go func() {
		submitted <- Supply(p, func() (int, error) { return 2, nil })
	}()

	var second *Future[int]
	select {
	case second = <-submitted:
	case <-time.After(time.Second):
		close(release)
		t.Fatal("Supply blocked while the only worker was busy")
	}

	select {
	case <-second.Done():
		t.Fatal("second task ran before the worker was free")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	v, err := first.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = second.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	p.Wait()
}

func TestAwaitContext(t *testing.T) {
	p := NewPool(1)
	release := make(chan struct{})
	defer close(release)

	f := Supply(p, func() (bool, error) {
		<-release
		return true, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompletedAndFailed(t *testing.T) {
	v, err := Completed("ok").Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = Failed[string](errors.New("nope")).Get()
	assert.EqualError(t, err, "nope")
}
