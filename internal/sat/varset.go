package sat

// varSet is a set of variable ids in [0, n) that supports O(1) membership
// checks and O(1) amortized clearing, used by conflict analysis to mark
// variables already folded into the clause under construction. Clearing is
// lazy: instead of zeroing the backing array, it bumps a generation stamp so
// that stale entries silently stop counting as members.
type varSet struct {
	stampOf []uint32
	stamp   uint32
}

// grow extends the set to cover one additional variable, initially absent.
func (s *varSet) grow() {
	if s.stamp == 0 {
		s.stamp = 1 // stamp 0 marks "never added", so it is never current
	}
	s.stampOf = append(s.stampOf, 0)
}

// Contains reports whether v was added since the last Reset.
func (s *varSet) Contains(v int) bool {
	return s.stampOf[v] == s.stamp
}

// Add marks v as a member of the set.
func (s *varSet) Add(v int) {
	s.stampOf[v] = s.stamp
}

// Reset empties the set in O(1), except once every 2^32 calls where the
// stamp wraps and the backing array is actually zeroed.
func (s *varSet) Reset() {
	s.stamp++
	if s.stamp == 0 {
		s.stamp = 1
		for i := range s.stampOf {
			s.stampOf[i] = 0
		}
	}
}
