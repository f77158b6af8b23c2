package assets

import "testing"

func TestResourceCache_InsertGetRemove(t *testing.T) {
	c := newResourceCache()
	g := Guid(1)

	if c.contains(g) {
		t.Error("contains() = true on empty cache")
	}

	raw := NewRaw([]byte("payload"))
	c.insert(g, raw)
	if !c.contains(g) {
		t.Error("contains() = false after insert")
	}

	got, ok := c.get(g)
	if !ok || got != Resource(raw) {
		t.Error("get did not return the inserted resource")
	}

	c.remove(g)
	if c.contains(g) {
		t.Error("contains() = true after remove")
	}
	if _, ok := c.get(g); ok {
		t.Error("get hit after remove")
	}
}

func TestResourceCache_InsertOverwrites(t *testing.T) {
	c := newResourceCache()
	g := Guid(7)

	c.insert(g, NewRaw([]byte("old")))
	fresh := NewRaw([]byte("new"))
	c.insert(g, fresh)

	got, _ := c.get(g)
	r, ok := got.(*Raw)
	if !ok || string(r.Data()) != "new" {
		t.Error("insert did not overwrite the prior entry")
	}
	if c.len() != 1 {
		t.Errorf("len() = %d, want 1", c.len())
	}
}

func TestNarrow(t *testing.T) {
	raw := NewRaw([]byte("x"))

	t.Run("right kind", func(t *testing.T) {
		got, ok := narrow[*Raw](raw, true)
		if !ok || got != raw {
			t.Error("narrow missed a matching entry")
		}
	})

	t.Run("wrong kind", func(t *testing.T) {
		// A *Raw entry retrieved as *Texture2D is a programmer error the
		// lookup tolerates silently.
		if _, ok := narrow[*Texture2D](raw, true); ok {
			t.Error("narrow hit with the wrong kind")
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := narrow[*Raw](nil, false); ok {
			t.Error("narrow hit an absent entry")
		}
	})
}
