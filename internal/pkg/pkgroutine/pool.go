package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
	"github.com/shandysiswandi/logbench/internal/pkg/pkguid"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// ErrPoolClosed is returned by Submit after Close has been called.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a unit of work executed by a pool worker.
type Task func(ctx context.Context) error

// Handle tracks one submitted task until it completes.
type Handle struct {
	id   int64
	done chan struct{}
	err  error
}

// ID returns the identifier assigned at submission.
func (h *Handle) ID() int64 {
	return h.id
}

// Done is closed once the task has finished, successfully or not.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task finishes and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

type job struct {
	ctx    context.Context
	task   Task
	handle *Handle
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64
}

// Option configures a Pool.
type Option func(*Pool)

// WithIDs sets the generator used to label submitted tasks.
func WithIDs(ids pkguid.NumberID) Option {
	return func(p *Pool) {
		p.ids = ids
	}
}

// WithQueueSize sets the capacity of the pending task queue.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.queueSize = n
		}
	}
}

// Pool runs tasks on exactly size workers pulling from a bounded queue.
//
// A failing task does not cancel its siblings; the first error observed is
// reported by Wait once every submitted task has completed.
type Pool struct {
	size      int
	queueSize int
	ids       pkguid.NumberID
	seq       atomic.Int64

	mu      sync.RWMutex
	closed  bool
	queue   chan job
	workers errgroup.Group

	stateMu  sync.Mutex
	handles  []*Handle
	firstErr error

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// NewPool starts size workers. A non-positive size is rejected, there is no
// default.
func NewPool(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, pkgerror.NewInvalidPoolSize(size)
	}

	p := &Pool{size: size, queueSize: size}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan job, p.queueSize)

	for i := 0; i < size; i++ {
		p.workers.Go(p.worker)
	}

	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Submit enqueues task and returns its handle. It blocks while the queue is
// full, and gives up if ctx is done first.
func (p *Pool) Submit(ctx context.Context, task Task) (*Handle, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrPoolClosed
	}

	h := &Handle{id: p.nextID(), done: make(chan struct{})}
	select {
	case p.queue <- job{ctx: ctx, task: task, handle: h}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	p.submitted.Inc()
	p.stateMu.Lock()
	p.handles = append(p.handles, h)
	p.stateMu.Unlock()

	return h, nil
}

// Wait blocks until every task submitted so far has finished and returns the
// first task error observed, if any.
func (p *Pool) Wait() error {
	p.stateMu.Lock()
	handles := append([]*Handle(nil), p.handles...)
	p.stateMu.Unlock()

	for _, h := range handles {
		<-h.done
	}

	p.stateMu.Lock()
	defer p.stateMu.Unlock()

	return p.firstErr
}

// Close stops accepting tasks, lets the workers drain the queue and waits for
// them to exit. It is safe to call more than once.
func (p *Pool) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	return p.workers.Wait()
}

// Stats returns the current counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
	}
}

func (p *Pool) nextID() int64 {
	if p.ids != nil {
		return p.ids.Generate()
	}
	return p.seq.Inc()
}

func (p *Pool) worker() error {
	for j := range p.queue {
		p.run(j)
	}
	return nil
}

func (p *Pool) run(j job) {
	var err error
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(j.ctx, "panic occurred in pool task", "task_id", j.handle.id, "stack", string(debug.Stack()))
			err = pkgerror.NewInternal(fmt.Errorf("task %d panicked: %v", j.handle.id, rvr))
		}

		if err != nil {
			p.failed.Inc()
			p.stateMu.Lock()
			if p.firstErr == nil {
				p.firstErr = err
			}
			p.stateMu.Unlock()
		}
		p.completed.Inc()

		j.handle.err = err
		close(j.handle.done)
	}()

	err = j.task(j.ctx)
}
