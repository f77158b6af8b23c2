package assets

import (
	"sync"
	"testing"
)

func TestGuidSource_Monotonic(t *testing.T) {
	var src guidSource

	prev := NilGuid
	for range 1000 {
		g := src.generate()
		if g <= prev {
			t.Fatalf("generate() = %v, want > %v", g, prev)
		}
		prev = g
	}
}

func TestGuidSource_NeverNil(t *testing.T) {
	var src guidSource

	if g := src.generate(); g.IsNil() {
		t.Error("first generated Guid is nil")
	}
}

func TestGuidSource_ConcurrentUnique(t *testing.T) {
	var src guidSource

	const goroutines = 8
	const perGoroutine = 1000

	var wg sync.WaitGroup
	results := make([][]Guid, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out := make([]Guid, 0, perGoroutine)
			for range perGoroutine {
				out = append(out, src.generate())
			}
			results[idx] = out
		}(i)
	}
	wg.Wait()

	seen := make(map[Guid]bool, goroutines*perGoroutine)
	for _, out := range results {
		for _, g := range out {
			if seen[g] {
				t.Fatalf("Guid %v issued twice", g)
			}
			seen[g] = true
		}
	}
}

func TestGuid_String(t *testing.T) {
	if got := Guid(42).String(); got != "guid:42" {
		t.Errorf("String() = %q, want %q", got, "guid:42")
	}
}
