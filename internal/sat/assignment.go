package sat

// varAssignment is the per-variable record described by the spec's
// assignment entry: current value, the decision level it was set at,
// the clause that forced it (nil for decisions and for unassigned
// variables), and the phase it last held (used for phase-saving).
type varAssignment struct {
	value  LBool
	level  int
	reason *Clause
	phase  LBool
}

// assignment is the C2 component: an O(1)-lookup array of varAssignment
// indexed by (zero-based) variable id. Unlike a literal-indexed layout,
// this stores exactly one record per variable, matching the spec's data
// model directly; literal-level queries negate the variable's value,
// relying on LBool.Opposite() to keep Unassigned negating to Unassigned.
type assignment struct {
	vars []varAssignment
}

// addVar appends a new, currently unassigned variable with the given
// initial phase (true by default, per phase-saving's documented default).
func (a *assignment) addVar(initialPhase LBool) {
	a.vars = append(a.vars, varAssignment{
		value: Unknown,
		level: -1,
		phase: initialPhase,
	})
}

func (a *assignment) numVars() int { return len(a.vars) }

// valueOfVar returns the current value of variable v.
func (a *assignment) valueOfVar(v int) LBool { return a.vars[v].value }

// valueOfLiteral returns the current value of literal l, negating the
// underlying variable's value when l is negative.
func (a *assignment) valueOfLiteral(l Literal) LBool {
	v := a.vars[l.VarID()].value
	if !l.IsPositive() {
		v = v.Opposite()
	}
	return v
}

func (a *assignment) level(v int) int { return a.vars[v].level }

func (a *assignment) reason(v int) *Clause { return a.vars[v].reason }

func (a *assignment) phase(v int) LBool { return a.vars[v].phase }

// assign records variable v as set to value at the given decision level,
// with the given reason clause (nil for a decision).
func (a *assignment) assign(v int, value LBool, level int, reason *Clause) {
	rec := &a.vars[v]
	rec.value = value
	rec.level = level
	rec.reason = reason
}

// unassign clears v's value, level, and reason, saving its last value as
// the phase to try next time v is decided.
func (a *assignment) unassign(v int) {
	rec := &a.vars[v]
	rec.phase = rec.value
	rec.value = Unknown
	rec.level = -1
	rec.reason = nil
}
