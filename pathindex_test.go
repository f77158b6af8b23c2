package assets

import "testing"

func TestPathIndex_Idempotent(t *testing.T) {
	var src guidSource
	ix := newPathIndex(&src)

	a := ix.idFor("sprites/hero.png")
	b := ix.idFor("sprites/hero.png")
	if a != b {
		t.Errorf("idFor returned %v then %v for the same path", a, b)
	}
	if ix.len() != 1 {
		t.Errorf("len() = %d, want 1", ix.len())
	}
}

func TestPathIndex_DistinctPaths(t *testing.T) {
	var src guidSource
	ix := newPathIndex(&src)

	a := ix.idFor("a.png")
	b := ix.idFor("b.png")
	if a == b {
		t.Error("distinct paths share a Guid")
	}
}

func TestPathIndex_ReverseLookup(t *testing.T) {
	var src guidSource
	ix := newPathIndex(&src)

	g := ix.idFor("shaders/sprite.wgsl")
	p, ok := ix.pathFor(g)
	if !ok {
		t.Fatal("pathFor missed a known Guid")
	}
	if p != "shaders/sprite.wgsl" {
		t.Errorf("pathFor = %q, want %q", p, "shaders/sprite.wgsl")
	}

	if _, ok := ix.pathFor(Guid(9999)); ok {
		t.Error("pathFor hit an unknown Guid")
	}
}

func TestPathIndex_Known(t *testing.T) {
	var src guidSource
	ix := newPathIndex(&src)

	if ix.known("x.png") {
		t.Error("known() = true before insertion")
	}
	ix.idFor("x.png")
	if !ix.known("x.png") {
		t.Error("known() = false after insertion")
	}
}
