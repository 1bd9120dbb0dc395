package sat

// propagation pairs an assignment literal with the clause that forced it.
type propagation struct {
	lit    Literal
	reason *Clause
}

// decisionLevel is a single level of the trail: an optional decision (none
// at level 0) followed by the propagations it led to, in the order they
// were derived.
type decisionLevel struct {
	hasDecision bool
	decision    Literal
	propagated  []propagation
}

// trail is the C3 component: a nonempty ordered sequence of decision
// levels. trail.levels[0] is level 0 and holds only top-level
// propagations; the current decision level is len(levels)-1.
type trail struct {
	levels  []decisionLevel
	pending int // total literals currently on the trail, for fast NumAssigned
}

func newTrail() *trail {
	return &trail{levels: []decisionLevel{{}}}
}

func (t *trail) currentLevel() int { return len(t.levels) - 1 }

func (t *trail) numAssigned() int { return t.pending }

// pushDecision opens a new decision level with the given decision literal.
func (t *trail) pushDecision(lit Literal) {
	t.levels = append(t.levels, decisionLevel{hasDecision: true, decision: lit})
	t.pending++
}

// pushPropagation appends a forced assignment to the current decision
// level's propagation list.
func (t *trail) pushPropagation(lit Literal, reason *Clause) {
	cur := &t.levels[len(t.levels)-1]
	cur.propagated = append(cur.propagated, propagation{lit, reason})
	t.pending++
}

// level returns a read-only view of decision level k.
func (t *trail) level(k int) decisionLevel { return t.levels[k] }

// undoAbove removes every assignment at a decision level strictly greater
// than target, returning the undone literals in reverse chronological
// order (most recent first) so the caller can unwind per-variable state to
// match. Level target itself — its decision and its propagations alike —
// is retained in full, per the backjump semantics fixed by the spec.
func (t *trail) undoAbove(target int) []Literal {
	var undone []Literal
	for lvl := len(t.levels) - 1; lvl > target; lvl-- {
		dl := t.levels[lvl]
		for i := len(dl.propagated) - 1; i >= 0; i-- {
			undone = append(undone, dl.propagated[i].lit)
		}
		if dl.hasDecision {
			undone = append(undone, dl.decision)
		}
	}
	t.levels = t.levels[:target+1]
	t.pending -= len(undone)
	return undone
}
