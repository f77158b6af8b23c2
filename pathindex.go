package assets

// pathIndex is a bijective mapping between canonical path strings and Guids.
//
// Insertion is the only mutation: a path's Guid is never rebound, so repeated
// requests for an existing path always resolve to the existing Guid and never
// trigger a duplicate allocation. The index is populated eagerly for builtin
// assets at Manager construction and lazily for any dynamically requested
// path.
//
// Not safe for concurrent use; the Manager guards it with its own mutex.
type pathIndex struct {
	source *guidSource
	byPath map[string]Guid
	byGuid map[Guid]string
}

func newPathIndex(source *guidSource) *pathIndex {
	return &pathIndex{
		source: source,
		byPath: make(map[string]Guid),
		byGuid: make(map[Guid]string),
	}
}

// idFor returns the Guid for path, allocating one on first sight.
// Idempotent per path.
func (ix *pathIndex) idFor(path string) Guid {
	if g, ok := ix.byPath[path]; ok {
		return g
	}
	g := ix.source.generate()
	ix.byPath[path] = g
	ix.byGuid[g] = path
	return g
}

// pathFor is the reverse lookup, used for diagnostics and progress messages.
func (ix *pathIndex) pathFor(g Guid) (string, bool) {
	p, ok := ix.byGuid[g]
	return p, ok
}

// known reports whether path already has a Guid without allocating one.
func (ix *pathIndex) known(path string) bool {
	_, ok := ix.byPath[path]
	return ok
}

// len returns the number of indexed paths.
func (ix *pathIndex) len() int { return len(ix.byPath) }
