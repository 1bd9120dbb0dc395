package sat

// propagate is the C5 component: it drains the propagation queue to a
// fixpoint, visiting every clause watching a newly assigned literal's
// negation. It returns the first clause found to be conflicting, or nil
// once the queue empties with no conflict.
func (s *Solver) propagate() *Clause {
	for s.queue.Len() > 0 {
		lit := s.queue.Pop()
		s.Stats.Propagations++

		watchers := s.watches.drain(lit)
		for i := 0; i < len(watchers); i++ {
			wt := watchers[i]

			// A watcher whose guard is already true proves the clause
			// satisfied without needing to touch it at all.
			if s.assign.valueOfLiteral(wt.guard) == True {
				s.watches.keep(lit, wt)
				continue
			}

			if !wt.clause.Propagate(s, lit) {
				s.watches.keepRest(lit, watchers, i+1)
				s.queue.Reset()
				return wt.clause
			}
		}
	}
	return nil
}
