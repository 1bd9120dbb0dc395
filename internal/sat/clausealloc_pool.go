//go:build clausepool

package sat

import (
	"math/bits"
	"sync"
)

// numBuckets covers literal-slice capacities from 2 up to 2^numBuckets,
// which comfortably spans anything a learned or original clause will need;
// oversized requests fall into the last bucket and are allocated exactly
// (see bucketFor).
const numBuckets = 20

var literalPools [numBuckets]sync.Pool

func init() {
	for i := range literalPools {
		capacity := 1 << (i + 1)
		literalPools[i].New = func() any {
			s := make([]Literal, 0, capacity)
			return &s
		}
	}
}

// bucketFor returns the index of the pool responsible for slices of the
// given capacity: pool i holds slices with capacity in (2^i, 2^(i+1)].
func bucketFor(capacity int) int {
	if capacity < 2 {
		capacity = 2
	}
	b := bits.Len(uint(capacity-1)) - 1
	if b >= numBuckets {
		b = numBuckets - 1
	}
	return b
}

// allocLiterals returns an empty literal slice with at least the requested
// capacity, reusing a pooled backing array when one of sufficient capacity
// is available.
func allocLiterals(capacity int) []Literal {
	ref := literalPools[bucketFor(capacity)].Get().(*[]Literal)
	s := (*ref)[:0]
	if cap(s) < capacity {
		s = make([]Literal, 0, capacity)
	}
	return s
}

// releaseLiterals returns lits's backing array to the pool so a later
// allocLiterals call can reuse it. The caller must not use lits afterwards.
func releaseLiterals(lits []Literal) {
	s := lits[:0]
	literalPools[bucketFor(cap(lits))].Put(&s)
}
