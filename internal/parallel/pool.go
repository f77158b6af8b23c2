// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel provides the worker pool backing decode and upload work.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of goroutines consuming a shared queue.
//
// The loader worker submits each decoded request's GPU step as one unit of
// work, so a single slow upload never blocks subsequent requests from being
// dequeued. Work items for distinct assets are independent; the pool gives
// no ordering guarantee between them.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue is the shared work queue.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued items per worker hides submit latency without letting
	// a burst of requests pile up unboundedly ahead of the workers.
	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting so submitted items
			// always run.
			for {
				select {
				case work := <-p.queue:
					if work != nil {
						work()
					}
				default:
					return
				}
			}
		case work := <-p.queue:
			if work != nil {
				work()
			}
		}
	}
}

// Submit enqueues a single unit of work. It blocks while the queue is full.
// After Close, Submit runs the work on the calling goroutine instead of
// silently dropping it.
func (p *Pool) Submit(fn func()) {
	if fn == nil {
		return
	}
	if !p.running.Load() {
		fn()
		return
	}
	select {
	case p.queue <- fn:
	case <-p.done:
		fn()
	}
}

// ExecuteAll enqueues every item and waits for all of them to complete.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(work))
	for _, fn := range work {
		fn := fn
		p.Submit(func() {
			defer wg.Done()
			fn()
		})
	}
	wg.Wait()
}

// Close stops accepting work, finishes everything already queued, and joins
// the workers. Safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// IsRunning reports whether the pool is accepting work.
func (p *Pool) IsRunning() bool { return p.running.Load() }
