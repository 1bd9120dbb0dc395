package sat

import "strings"

// Clause is an ordered, deduplicated list of literals with two watched
// positions realized as index 0 and index 1: whichever two literals are
// currently "being watched" are kept in those two slots, and watching a
// different literal is done by swapping it into place rather than tracking
// a separate index. A clause never stores assignment state; activity and
// protected are only consulted by the optional clause-database reduction
// (ReduceDB) and never affect BCP or conflict analysis.
type Clause struct {
	literals []Literal

	learnt bool

	// activity estimates how often this (learned) clause has taken part in
	// a conflict; ReduceDB discards low-activity learned clauses first.
	activity float64

	// protected clauses survive one ReduceDB pass regardless of activity.
	// Set whenever the clause's activity is bumped during conflict analysis.
	protected bool

	// scanPos remembers where the last replacement-watch search left off,
	// so the next search resumes from just past it instead of restarting
	// at index 2 every time.
	scanPos int
}

// solverView is the narrow slice of Solver that clause construction and
// propagation need. Kept as an interface so clause.go doesn't need to know
// about the rest of Solver's fields.
type solverView interface {
	valueOfLiteral(l Literal) LBool
	levelOfVar(v int) int
	enqueue(l Literal, reason *Clause) bool
	watch(c *Clause, lit Literal, guard Literal)
	unwatch(c *Clause, lit Literal)
	reasonOfVar(v int) *Clause
	bumpClauseActivity(c *Clause)
}

// newOriginalClause builds a clause from input literals, deduplicating and
// detecting root-level simplifications (a satisfied clause, or a clause
// reduced to zero or one literal by removing literals already false at the
// root level). It returns (clause, ok): ok is false only if the clause is
// unsatisfiable outright (the empty clause, or an immediate contradiction
// when enqueuing a forced unit). A nil clause with ok true means the
// clause needed no further tracking (it was trivially true, or its single
// remaining literal was enqueued directly).
func newOriginalClause(s solverView, lits []Literal) (*Clause, bool) {
	size := len(lits)
	seen := map[Literal]bool{}

	for i := size - 1; i >= 0; i-- {
		l := lits[i]

		if seen[l.Opposite()] {
			return nil, true // tautology: always satisfied
		}
		if seen[l] {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[l] = true

		switch s.valueOfLiteral(l) {
		case True:
			return nil, true // already satisfied at the root level
		case False:
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}
	}
	lits = lits[:size]

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, s.enqueue(lits[0], nil)
	default:
		c := allocClause(lits, false)
		registerWatches(s, c)
		return c, true
	}
}

// newLearnedClause builds a clause from a conflict-analysis result. By
// construction of first-UIP learning, lits[0] is the asserting (UIP)
// literal and all other literals are false at or below the asserting
// level; the second watch is placed on whichever remaining literal is
// false at the highest level, since that is the one most likely to become
// unassigned next on backjump.
func newLearnedClause(s solverView, lits []Literal) *Clause {
	c := allocClause(lits, true)

	maxLevel := -1
	pos := 1
	for i := 1; i < len(c.literals); i++ {
		if lvl := s.levelOfVar(c.literals[i].VarID()); lvl > maxLevel {
			maxLevel = lvl
			pos = i
		}
	}
	c.literals[1], c.literals[pos] = c.literals[pos], c.literals[1]

	registerWatches(s, c)
	return c
}

// allocClause copies lits into freshly allocated backing storage without
// registering any watches; callers finish construction (placing watched
// literals in position, then calling registerWatches) themselves.
func allocClause(lits []Literal, learnt bool) *Clause {
	c := &Clause{
		learnt:  learnt,
		scanPos: 2,
	}
	c.literals = allocLiterals(len(lits))
	c.literals = append(c.literals, lits...)
	return c
}

func registerWatches(s solverView, c *Clause) {
	s.watch(c, c.literals[0].Opposite(), c.literals[1])
	s.watch(c, c.literals[1].Opposite(), c.literals[0])
}

// Literals returns the clause's literals. The first two are the watched
// positions; callers must not retain the slice across a call that might
// mutate the clause (Simplify, Propagate).
func (c *Clause) Literals() []Literal { return c.literals }

func (c *Clause) Len() int { return len(c.literals) }

func (c *Clause) IsLearnt() bool { return c.learnt }

// locked reports whether c is currently the trail's reason for its first
// watched literal's variable, meaning it cannot be safely discarded.
func (c *Clause) locked(s solverView) bool {
	return s.reasonOfVar(c.literals[0].VarID()) == c
}

// Delete unregisters c from the watch index and returns its backing
// storage to the allocator. c must not be used afterwards.
func (c *Clause) Delete(s solverView) {
	s.unwatch(c, c.literals[0].Opposite())
	s.unwatch(c, c.literals[1].Opposite())
	releaseLiterals(c.literals)
	c.literals = nil
}

// Simplify drops literals already false at the root level and reports
// whether the clause is already satisfied (in which case the caller
// should delete it). Only valid to call at decision level 0.
func (c *Clause) Simplify(s solverView) bool {
	j := 0
	for _, l := range c.literals {
		switch s.valueOfLiteral(l) {
		case True:
			return true
		case False:
			// drop
		default:
			c.literals[j] = l
			j++
		}
	}
	c.literals = c.literals[:j]
	return false
}

// Propagate is invoked when literal falsified (one of c's watched
// literals' negation) has just been assigned true, i.e. the watched
// literal itself became false. It implements the watched-literal wake-up
// rule: find a replacement watch among the non-watched literals, starting
// the search just past the last place a replacement was found; failing
// that, the clause is unit (propagate its other watch) or conflicting.
// Returns false exactly when c is now a conflict clause.
func (c *Clause) Propagate(s solverView, falsified Literal) bool {
	other := falsified.Opposite()
	if c.literals[0] == other {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.valueOfLiteral(c.literals[0]) == True {
		s.watch(c, falsified, c.literals[0])
		return true
	}

	if c.scanPos >= len(c.literals) {
		c.scanPos = 2
	}

	if lit, pos, ok := c.findReplacement(s, c.scanPos, len(c.literals)); ok {
		c.installReplacement(s, lit, pos, falsified)
		return true
	}
	if lit, pos, ok := c.findReplacement(s, 2, c.scanPos); ok {
		c.installReplacement(s, lit, pos, falsified)
		return true
	}

	// No replacement: c.literals[0] must become true, or c is a conflict.
	s.watch(c, falsified, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

func (c *Clause) findReplacement(s solverView, from, to int) (Literal, int, bool) {
	for i := from; i < to; i++ {
		if s.valueOfLiteral(c.literals[i]) != False {
			return c.literals[i], i, true
		}
	}
	return 0, 0, false
}

func (c *Clause) installReplacement(s solverView, lit Literal, pos int, falsified Literal) {
	c.scanPos = pos
	c.literals[1], c.literals[pos] = lit, falsified.Opposite()
	s.watch(c, lit.Opposite(), c.literals[0])
}

// ExplainConflict returns the negation of every literal in c, used when c
// itself is the conflict clause being resolved against during analysis.
func (c *Clause) ExplainConflict() []Literal {
	out := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		out[i] = l.Opposite()
	}
	return out
}

// ExplainAssign returns the negation of every literal in c except
// literals[0] (the asserted literal), used when c is the reason for a
// propagated assignment being resolved against during analysis.
func (c *Clause) ExplainAssign() []Literal {
	out := make([]Literal, len(c.literals)-1)
	for i, l := range c.literals[1:] {
		out[i] = l.Opposite()
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "()"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
