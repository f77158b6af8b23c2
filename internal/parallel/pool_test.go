// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_Submit(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	const n = 100

	wg.Add(n)
	for range n {
		p.Submit(func() {
			defer wg.Done()
			counter.Add(1)
		})
	}
	wg.Wait()

	if got := counter.Load(); got != n {
		t.Errorf("counter = %d, want %d", got, n)
	}
}

func TestPool_ExecuteAll(t *testing.T) {
	p := New(2)
	defer p.Close()

	var counter atomic.Int64
	work := make([]func(), 50)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(work)
	if got := counter.Load(); got != 50 {
		t.Errorf("counter = %d, want 50", got)
	}
}

func TestPool_ExecuteAllEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.ExecuteAll(nil)
}

func TestPool_DefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", p.Workers())
	}
}

func TestPool_SubmitNil(t *testing.T) {
	p := New(1)
	defer p.Close()
	p.Submit(nil)
}

func TestPool_CloseDrainsQueue(t *testing.T) {
	p := New(1)

	var counter atomic.Int64
	for range 20 {
		p.Submit(func() { counter.Add(1) })
	}
	p.Close()

	if got := counter.Load(); got != 20 {
		t.Errorf("counter = %d after Close, want 20", got)
	}
	if p.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
}

func TestPool_SubmitAfterCloseRunsInline(t *testing.T) {
	p := New(1)
	p.Close()

	ran := false
	p.Submit(func() { ran = true })
	if !ran {
		t.Error("work submitted after Close did not run")
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := New(1)
	p.Close()
	p.Close()
}
