package sat

import "github.com/rhartert/yagh"

// vsids implements Variable State Independent Decaying Sum variable
// selection: a decaying per-variable activity score, with the
// highest-scoring unassigned variable chosen at each decision. Selection
// is backed by a binary heap (github.com/rhartert/yagh) keyed on the
// negated score so that Pop always yields the current maximum; ties are
// broken by the heap's own tie-break on insertion order, which variables
// are added in (var id order), satisfying the "lowest variable index
// first" tie-break the search driver requires.
//
// Variables are never proactively removed from the heap when they become
// assigned (by decision or propagation): selectDecisionLiteral instead pops and discards
// stale already-assigned entries lazily, re-adding a variable only when
// reinsert is called as it becomes unassigned again on backjump.
type vsids struct {
	order *yagh.IntMap[float64]

	scores    []float64
	increment float64
	decay     float64

	decayInterval       int
	conflictsSinceDecay int

	rescaleThreshold float64

	phases      []LBool
	phaseSaving bool
}

// newVSIDS returns a VSIDS selector with the given decay factor (applied
// every decayInterval conflicts), rescale threshold, and phase-saving
// toggle.
func newVSIDS(decay float64, decayInterval int, rescaleThreshold float64, phaseSaving bool) *vsids {
	if decayInterval <= 0 {
		decayInterval = 1
	}
	return &vsids{
		order:            yagh.New[float64](0),
		increment:        1,
		decay:            decay,
		decayInterval:    decayInterval,
		rescaleThreshold: rescaleThreshold,
		phaseSaving:      phaseSaving,
	}
}

// addVar registers a new variable with zero activity, phase initialized to
// initialPhase (true, per the documented phase-saving default).
func (o *vsids) addVar(initialPhase bool) {
	v := len(o.scores)
	o.scores = append(o.scores, 0)
	o.phases = append(o.phases, Lift(initialPhase))
	o.order.GrowBy(1)
	o.order.Put(v, 0)
}

// bump increases v's score by the current increment, rescaling all scores
// if this pushes v over the threshold.
func (o *vsids) bump(v int) {
	o.scores[v] += o.increment
	if o.order.Contains(v) {
		o.order.Put(v, -o.scores[v])
	}
	if o.scores[v] > o.rescaleThreshold {
		o.rescale()
	}
}

// conflictOccurred advances the decay schedule by one conflict, applying a
// decay step (increasing the bump increment) once decayInterval conflicts
// have elapsed since the last decay.
func (o *vsids) conflictOccurred() {
	o.conflictsSinceDecay++
	if o.conflictsSinceDecay < o.decayInterval {
		return
	}
	o.conflictsSinceDecay = 0
	o.increment /= o.decay
	if o.increment > o.rescaleThreshold {
		o.rescale()
	}
}

// rescale divides every score and the increment by a common factor,
// preserving relative ordering while keeping magnitudes bounded.
func (o *vsids) rescale() {
	const shrink = 1e-100
	o.increment *= shrink
	for v, s := range o.scores {
		o.scores[v] = s * shrink
		if o.order.Contains(v) {
			o.order.Put(v, -o.scores[v])
		}
	}
}

// reinsert makes v a candidate for selection again after it has been
// unassigned (by backjump or restart), recording lastValue as its saved
// phase when phase-saving is enabled.
func (o *vsids) reinsert(v int, lastValue LBool) {
	if o.phaseSaving && lastValue != Unknown {
		o.phases[v] = lastValue
	}
	o.order.Put(v, -o.scores[v])
}

// selectDecisionLiteral returns the literal for the highest-scoring
// unassigned variable, using valueOf to skip over stale heap entries for
// variables already assigned. It returns ok=false when no unassigned
// variable remains, signaling that the formula is satisfied.
func (o *vsids) selectDecisionLiteral(valueOf func(int) LBool) (Literal, bool) {
	for {
		item, ok := o.order.Pop()
		if !ok {
			return 0, false
		}
		v := item.Elem
		if valueOf(v) != Unknown {
			continue
		}
		if o.phases[v] == False {
			return NegativeLiteral(v), true
		}
		return PositiveLiteral(v), true
	}
}
