package assets

import "testing"

func TestPtr_Equality(t *testing.T) {
	a := ptrOf[*Texture2D](Guid(5))
	b := ptrOf[*Texture2D](Guid(5))
	c := ptrOf[*Texture2D](Guid(6))

	if a != b {
		t.Error("handles with equal Guids are not equal")
	}
	if a == c {
		t.Error("handles with different Guids are equal")
	}
	if a.Guid() != Guid(5) {
		t.Errorf("Guid() = %v, want 5", a.Guid())
	}
}

func TestPtr_IsNil(t *testing.T) {
	var zero Ptr[*Raw]
	if !zero.IsNil() {
		t.Error("zero-value handle is not nil")
	}
	if p := ptrOf[*Raw](Guid(1)); p.IsNil() {
		t.Error("non-zero handle reports nil")
	}
}

func TestPtr_String(t *testing.T) {
	if got := ptrOf[*Raw](Guid(3)).String(); got != "ptr:guid:3" {
		t.Errorf("String() = %q", got)
	}
}
