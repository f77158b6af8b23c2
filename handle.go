package assets

// Ptr is a typed, copyable handle to a cached resource.
//
// A Ptr wraps a Guid plus a phantom type parameter. The type parameter
// exists only so that Get and TryGet return the expected resource kind; it
// does not affect identity. Two handles of the same kind are equal iff their
// Guids are equal, and comparing with == does exactly that.
//
// A Ptr does not own the resource it names; the Manager's cache does. A
// handle may outlive its resource (after Delete), in which case lookups
// miss gracefully.
type Ptr[T Resource] struct {
	guid Guid
}

// ptrOf wraps a Guid in a typed handle.
func ptrOf[T Resource](g Guid) Ptr[T] { return Ptr[T]{guid: g} }

// Guid returns the identity this handle refers to.
func (p Ptr[T]) Guid() Guid { return p.guid }

// IsNil reports whether the handle refers to no asset.
func (p Ptr[T]) IsNil() bool { return p.guid.IsNil() }

// String returns a short diagnostic form.
func (p Ptr[T]) String() string { return "ptr:" + p.guid.String() }
