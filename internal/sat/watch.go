package sat

// watcher is a clause attached to the watch list of a literal, together
// with a guard literal cached from the clause's other watched position.
// If the guard currently evaluates to true, the clause is already
// satisfied and visiting it during propagation can be skipped without
// touching the clause itself — this is a pure performance shortcut: a
// stale guard can only ever cause an unnecessary (not an incorrect) visit,
// since a true guard literal proves satisfaction regardless of which
// positions are currently watched.
type watcher struct {
	clause *Clause
	guard  Literal
}

// watchIndex is the C4 component: for every literal, the clauses currently
// watching it. Watching literal l means: wake this clause up when l is
// assigned, because l is the negation of one of the clause's two watched
// literals (i.e. assigning l falsifies that watched literal).
type watchIndex struct {
	byLiteral [][]watcher
	// scratch is reused across drain calls to hold a watch
	// list while it is being rebuilt in place, avoiding an allocation per
	// propagation step.
	scratch []watcher
}

// grow adds watch lists for one new variable's two literals.
func (w *watchIndex) grow() {
	w.byLiteral = append(w.byLiteral, nil, nil)
}

// watch registers c to be woken up when lit is assigned true.
func (w *watchIndex) watch(c *Clause, lit Literal, guard Literal) {
	w.byLiteral[lit] = append(w.byLiteral[lit], watcher{clause: c, guard: guard})
}

// unwatch removes c from lit's watch list. No-op if c isn't present.
func (w *watchIndex) unwatch(c *Clause, lit Literal) {
	list := w.byLiteral[lit]
	j := 0
	for i := range list {
		if list[i].clause != c {
			list[j] = list[i]
			j++
		}
	}
	w.byLiteral[lit] = list[:j]
}

// drain moves lit's current watch list into the index's scratch buffer and
// resets the list to empty, so that callers can repopulate it (with some
// watchers kept, others moved to a different literal's list) while
// iterating over the drained copy.
func (w *watchIndex) drain(lit Literal) []watcher {
	w.scratch = append(w.scratch[:0], w.byLiteral[lit]...)
	w.byLiteral[lit] = w.byLiteral[lit][:0]
	return w.scratch
}

// keep re-appends a watcher to lit's list, used by the propagator when a
// drained watcher turns out not to need to move.
func (w *watchIndex) keep(lit Literal, wt watcher) {
	w.byLiteral[lit] = append(w.byLiteral[lit], wt)
}

// keepRest re-appends every remaining drained watcher starting at index i,
// used when propagation stops early because it found a conflict.
func (w *watchIndex) keepRest(lit Literal, drained []watcher, i int) {
	w.byLiteral[lit] = append(w.byLiteral[lit], drained[i:]...)
}
