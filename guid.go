package assets

import (
	"fmt"
	"sync/atomic"
)

// Guid is a process-unique, opaque identifier for a cacheable resource.
//
// Guids are issued monotonically for the lifetime of one Manager and are
// never reused, even after the resource they identified has been deleted.
// Equality and map keying are by value.
type Guid uint64

// NilGuid is the zero Guid. It is never issued and identifies no asset.
const NilGuid Guid = 0

// IsNil reports whether g is the zero Guid.
func (g Guid) IsNil() bool { return g == NilGuid }

// String returns a short diagnostic form, e.g. "guid:42".
func (g Guid) String() string { return fmt.Sprintf("guid:%d", uint64(g)) }

// guidSource issues process-unique Guids. The counter starts at zero so the
// first generated value is 1, keeping NilGuid unissued.
type guidSource struct {
	last atomic.Uint64
}

// generate returns a Guid that has never been returned by this source.
func (s *guidSource) generate() Guid {
	return Guid(s.last.Add(1))
}
