// Package sat implements a CDCL (conflict-driven clause learning) SAT
// solver: two-watched-literal Boolean constraint propagation, first-UIP
// conflict analysis with non-chronological backjumping, VSIDS variable
// selection, phase saving, and Luby-sequence restarts.
package sat

import (
	"fmt"
	"sort"
	"time"
)

// Options configures a Solver. Zero-value Options is not meaningful; start
// from DefaultOptions and override individual fields.
type Options struct {
	// VarDecay is the per-decay-interval VSIDS score decay factor, applied
	// as increment /= VarDecay (so increment grows over time, which is
	// equivalent to decaying every variable's stored score).
	VarDecay         float64
	VarDecayInterval int

	// VarRescaleThreshold bounds VSIDS scores and increment; crossing it
	// triggers a uniform rescale to keep magnitudes bounded.
	VarRescaleThreshold float64

	// PhaseSaving reuses a variable's last assigned value as its next
	// decision phase instead of always deciding positive.
	PhaseSaving bool

	ClauseDecay            float64
	ClauseRescaleThreshold float64

	// RestartUnit scales the Luby restart sequence: a restart is due after
	// luby(k) * RestartUnit conflicts since the previous one.
	RestartUnit int

	// MaxConflicts stops the search and returns Unknown once this many
	// conflicts have been seen. Negative disables the limit.
	MaxConflicts int64

	// Timeout stops the search and returns Unknown once exceeded. Negative
	// disables the limit.
	Timeout time.Duration

	// Debug enables verbose trace output of the search's key events.
	Debug bool
}

// DefaultOptions holds reasonable defaults for interactive and test use.
var DefaultOptions = Options{
	VarDecay:               0.95,
	VarDecayInterval:       1,
	VarRescaleThreshold:    1e100,
	PhaseSaving:            true,
	ClauseDecay:            0.999,
	ClauseRescaleThreshold: 1e100,
	RestartUnit:            32,
	MaxConflicts:           -1,
	Timeout:                -1,
}

// Stats records search-progress counters, exposed for CLI reporting.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
	Restarts     int64
}

// Solver is the C7 component: the search driver owning every other
// component (clause database, assignment, trail, watch index, variable
// order, propagation queue, and restart policy) and implementing
// solverView so that clause construction and propagation can call back
// into it without a direct dependency cycle.
type Solver struct {
	db       *clauseDB
	assign   *assignment
	trail    *trail
	watches  *watchIndex
	order    *vsids
	queue    *litQueue
	seen     *varSet
	restartP *restartPolicy

	clauseInc              float64
	clauseDecay            float64
	clauseRescaleThreshold float64

	reduceDBLimit int

	unsat bool
	model []bool

	Stats Stats

	hasStopCond  bool
	maxConflicts int64
	timeout      time.Duration
	startTime    time.Time

	debug bool
}

// NewSolver returns an empty Solver configured with opts.
func NewSolver(opts Options) *Solver {
	return &Solver{
		db:       &clauseDB{},
		assign:   &assignment{},
		trail:    newTrail(),
		watches:  &watchIndex{},
		order:    newVSIDS(opts.VarDecay, opts.VarDecayInterval, opts.VarRescaleThreshold, opts.PhaseSaving),
		queue:    newLitQueue(64),
		seen:     &varSet{},
		restartP: newRestartPolicy(opts.RestartUnit),

		clauseInc:              1,
		clauseDecay:             opts.ClauseDecay,
		clauseRescaleThreshold: opts.ClauseRescaleThreshold,

		reduceDBLimit: 2000,

		hasStopCond:  opts.MaxConflicts >= 0 || opts.Timeout >= 0,
		maxConflicts: opts.MaxConflicts,
		timeout:      opts.Timeout,

		debug: opts.Debug,
	}
}

// NewDefaultSolver returns an empty Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable registers one new variable and returns its (zero-based) id.
func (s *Solver) AddVariable() int {
	v := s.assign.numVars()
	s.assign.addVar(True)
	s.order.addVar(true)
	s.watches.grow()
	s.seen.grow()
	return v
}

func (s *Solver) NumVariables() int  { return s.assign.numVars() }
func (s *Solver) NumAssigned() int   { return s.trail.numAssigned() }
func (s *Solver) NumConstraints() int { return s.db.numOriginal() }
func (s *Solver) NumLearnts() int    { return s.db.numLearned() }

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool { return s.assign.valueOfVar(v) }

// LitValue returns the current value of literal l.
func (s *Solver) LitValue(l Literal) LBool { return s.assign.valueOfLiteral(l) }

// AddClause adds an original clause over already-registered variables. It
// can only be called at decision level 0 (i.e. not from inside a Solve
// call); every Solve call returns with the solver back at level 0, so
// clauses can always be added between calls — e.g. a blocking clause
// ruling out the most recent model, to enumerate every model of a
// satisfiable formula.
func (s *Solver) AddClause(lits []Literal) error {
	if s.trail.currentLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, want 0", s.trail.currentLevel())
	}
	if s.unsat {
		return nil
	}
	buf := append([]Literal(nil), lits...)
	c, ok := newOriginalClause(s, buf)
	if !ok {
		s.unsat = true
		return nil
	}
	if c != nil {
		s.db.addOriginal(c)
	}
	return nil
}

// Solve runs the CDCL search to completion (or until a configured stop
// condition fires) and returns True (satisfiable, Model() now valid),
// False (unsatisfiable), or Unknown (search aborted by MaxConflicts or
// Timeout before a verdict was reached). The solver is always back at
// decision level 0 by the time Solve returns, whatever the verdict, so
// that AddClause can be used to add blocking clauses and search again
// (e.g. to enumerate every model of a satisfiable formula).
func (s *Solver) Solve() LBool {
	status := s.search()
	s.backjump(0)
	return status
}

func (s *Solver) search() LBool {
	if s.unsat {
		return False
	}
	s.startTime = time.Now()

	if conflict := s.propagate(); conflict != nil {
		s.unsat = true
		return False
	}

	for {
		if s.shouldStop() {
			return Unknown
		}

		lit, ok := s.order.selectDecisionLiteral(s.assign.valueOfVar)
		if !ok {
			s.saveModel()
			return True
		}
		s.decide(lit)

		for {
			conflict := s.propagate()
			if conflict == nil {
				break
			}
			s.Stats.Conflicts++
			s.trace("conflict", conflict)

			if s.trail.currentLevel() == 0 {
				s.unsat = true
				return False
			}

			learnedLits, assertLevel := s.analyzeConflict(conflict)
			s.order.conflictOccurred()
			s.decayClauseActivity()
			s.restartP.conflictOccurred()

			s.backjump(assertLevel)
			s.record(learnedLits)
			s.trace("backjump", assertLevel, learnedLits)

			if s.shouldStop() {
				return Unknown
			}
		}

		if s.trail.currentLevel() == 0 {
			s.simplifyRootLevel()
		}
		if s.shouldReduceDB() {
			s.ReduceDB()
		}
		if s.restartP.due() {
			s.doRestart()
		}
	}
}

// Model returns the satisfying assignment found by the most recent
// successful Solve call, indexed by (zero-based) variable id. It is only
// meaningful after Solve returned True.
func (s *Solver) Model() []bool {
	out := make([]bool, len(s.model))
	copy(out, s.model)
	return out
}

func (s *Solver) saveModel() {
	s.model = make([]bool, s.assign.numVars())
	for v := range s.model {
		s.model[v] = s.assign.valueOfVar(v) == True
	}
}

// decide opens a new decision level with lit as its decision literal.
func (s *Solver) decide(lit Literal) {
	s.trail.pushDecision(lit)
	s.assignLiteral(lit, nil)
	s.Stats.Decisions++
	s.trace("decide", lit)
}

// assignLiteral records lit as assigned at the current decision level and
// queues it for propagation. It does not touch the trail; callers that
// need a trail entry (decisions, propagations) add it themselves.
func (s *Solver) assignLiteral(lit Literal, reason *Clause) {
	v := lit.VarID()
	s.assign.assign(v, Lift(lit.IsPositive()), s.trail.currentLevel(), reason)
	s.queue.Push(lit)
}

// backjump undoes every assignment above target, reinserting the
// newly-unassigned variables into the decision order with their saved
// phase, and discards any stale entries left in the propagation queue.
func (s *Solver) backjump(target int) {
	undone := s.trail.undoAbove(target)
	for _, lit := range undone {
		v := lit.VarID()
		lastValue := s.assign.valueOfVar(v)
		s.assign.unassign(v)
		s.order.reinsert(v, lastValue)
	}
	s.queue.Reset()
}

func (s *Solver) doRestart() {
	s.backjump(0)
	s.restartP.restart()
	s.Stats.Restarts++
	s.trace("restart")
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflicts >= 0 && s.Stats.Conflicts >= s.maxConflicts {
		return true
	}
	if s.timeout >= 0 && time.Since(s.startTime) >= s.timeout {
		return true
	}
	return false
}

// simplifyRootLevel drops clauses already satisfied by a level-0
// assignment from both the original and learned stores. Clauses that are
// currently locked (the trail's reason for their first watched literal)
// are skipped entirely: at level 0 that assignment is permanent, so the
// clause's role as a reason never goes away, and deleting it would
// invalidate conflict analysis should it ever be resolved against again.
func (s *Solver) simplifyRootLevel() {
	s.db.original = simplifyStore(s, s.db.original)
	s.db.learned = simplifyStore(s, s.db.learned)
}

func simplifyStore(s *Solver, clauses []*Clause) []*Clause {
	j := 0
	for _, c := range clauses {
		if c.locked(s) {
			clauses[j] = c
			j++
			continue
		}
		if c.Simplify(s) {
			c.Delete(s)
			continue
		}
		clauses[j] = c
		j++
	}
	return clauses[:j]
}

func (s *Solver) shouldReduceDB() bool {
	return s.db.numLearned() >= s.reduceDBLimit
}

// ReduceDB discards roughly the lower half of learned clauses by activity,
// skipping any clause that is locked (still a reason on the trail) or
// protected (granted one grace pass after taking part in a conflict
// analysis since the previous pass).
func (s *Solver) ReduceDB() {
	learned := s.db.learned
	sort.Slice(learned, func(i, j int) bool {
		return learned[i].activity < learned[j].activity
	})

	limit := len(learned) / 2
	kept := learned[:0]
	for i, c := range learned {
		if !c.locked(s) && !c.protected && i < limit {
			c.Delete(s)
			continue
		}
		c.protected = false
		kept = append(kept, c)
	}
	s.db.learned = kept
	s.reduceDBLimit += s.reduceDBLimit/10 + 500
}

// The following methods implement solverView, the narrow interface
// clause.go uses to call back into the solver during construction and
// propagation.

func (s *Solver) valueOfLiteral(l Literal) LBool { return s.assign.valueOfLiteral(l) }
func (s *Solver) levelOfVar(v int) int           { return s.assign.level(v) }
func (s *Solver) reasonOfVar(v int) *Clause      { return s.assign.reason(v) }
func (s *Solver) watch(c *Clause, lit Literal, guard Literal) {
	s.watches.watch(c, lit, guard)
}
func (s *Solver) unwatch(c *Clause, lit Literal) { s.watches.unwatch(c, lit) }

func (s *Solver) enqueue(l Literal, reason *Clause) bool {
	switch s.assign.valueOfLiteral(l) {
	case False:
		return false
	case True:
		return true
	default:
		s.assignLiteral(l, reason)
		s.trail.pushPropagation(l, reason)
		return true
	}
}

func (s *Solver) bumpClauseActivity(c *Clause) {
	if !c.IsLearnt() {
		return
	}
	c.activity += s.clauseInc
	c.protected = true
	if c.activity > s.clauseRescaleThreshold {
		const shrink = 1e-100
		s.clauseInc *= shrink
		for _, lc := range s.db.learned {
			lc.activity *= shrink
		}
	}
}
