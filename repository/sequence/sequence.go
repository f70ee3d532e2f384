// Package sequence issues process-wide monotonic identifiers shared by all
// record collections.
package sequence

import "sync/atomic"

type Sequence struct {
	n uint64
}

// New returns a sequence whose first Next() call yields start+1.
func New(start uint64) *Sequence {
	return &Sequence{n: start}
}

func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.n, 1)
}
