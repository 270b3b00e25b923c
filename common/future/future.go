package future

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// Future 异步任务结果，只能完成一次
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed 返回一个已成功完成的 Future
func Completed[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// Failed 返回一个已失败的 Future
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

func (f *Future[T]) complete(v T, err error) {
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
	})
}

// Done 任务结束时关闭
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await 等待结果；ctx 结束只会停止等待，不会取消任务
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Get 阻塞直到任务结束
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.value, f.err
}

// Pool 有界异步任务池，提交不阻塞调用方
type Pool struct {
	runner  *threading.TaskRunner
	handoff *threading.RoutineGroup
}

// NewPool 创建并发上限为 workers 的任务池
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		runner:  threading.NewTaskRunner(workers),
		handoff: threading.NewRoutineGroup(),
	}
}

// Wait 等待所有已提交任务结束
func (p *Pool) Wait() {
	p.handoff.Wait()
	p.runner.Wait()
}

// Supply 在任务池中执行 fn 并返回对应的 Future
// 池满时由转交协程等待空闲槽位，调用方立即返回
// fn 发生 panic 时 Future 以错误结束
func Supply[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				logx.Errorf("[Future] 任务 panic: %v\n%s", r, debug.Stack())
				var zero T
				f.complete(zero, fmt.Errorf("task panicked: %v", r))
			}
		}()

		v, err := fn()
		f.complete(v, err)
	}
	p.handoff.RunSafe(func() {
		p.runner.Schedule(task)
	})
	return f
}
