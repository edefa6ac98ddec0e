package ui

import (
	"context"
	"sync"
)

const queueSize = 8

type job struct {
	run   func(context.Context)
	quiet bool // barrier jobs from Wait do not toggle busy
}

// Runner executes jobs one at a time, in submission order, off the UI thread.
// onBusy(true) fires before each job and onBusy(false) after it.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc
	jobs   chan job
	onBusy func(bool)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewRunner starts the worker goroutine; it stops when ctx is cancelled or Stop is called
func NewRunner(ctx context.Context, onBusy func(bool)) *Runner {
	if onBusy == nil {
		onBusy = func(bool) {}
	}
	ctx, cancel := context.WithCancel(ctx)
	r := &Runner{
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(chan job, queueSize),
		onBusy: onBusy,
		done:   make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			return
		case j := <-r.jobs:
			if j.quiet {
				j.run(r.ctx)
				continue
			}
			r.onBusy(true)
			j.run(r.ctx)
			r.onBusy(false)
		}
	}
}

// Submit queues a job. It returns false when the runner is stopped or the queue is full.
func (r *Runner) Submit(run func(context.Context)) bool {
	return r.enqueue(job{run: run})
}

func (r *Runner) enqueue(j job) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	select {
	case r.jobs <- j:
		return true
	default:
		return false
	}
}

// Wait blocks until every job submitted before it has finished
func (r *Runner) Wait() {
	finished := make(chan struct{})
	if !r.enqueue(job{run: func(context.Context) { close(finished) }, quiet: true}) {
		return
	}
	select {
	case <-finished:
	case <-r.done:
	}
}

// Stop cancels the in-flight job's context and waits for the worker to exit
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		r.cancel()
	}
	r.mu.Unlock()
	<-r.done
}
