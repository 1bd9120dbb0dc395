package sat

// analyzeConflict is the C6 component: first-UIP conflict analysis by
// resolution over the implication graph. Starting from the conflicting
// clause, it resolves backward along the current decision level's trail
// until exactly one literal of the current level remains implicated — the
// first unique implication point — and returns the learned clause (UIP
// literal first) together with the level to backjump to.
func (s *Solver) analyzeConflict(conflict *Clause) ([]Literal, int) {
	s.seen.Reset()

	level := s.trail.currentLevel()
	dl := s.trail.level(level)

	learned := make([]Literal, 1) // learned[0] is filled in with the UIP literal at the end
	counter := 0
	backjumpLevel := 0

	resolve := func(lits []Literal) {
		for _, lit := range lits {
			v := lit.VarID()
			if s.seen.Contains(v) {
				continue
			}
			lvl := s.assign.level(v)
			if lvl == 0 {
				continue // root-level facts never need to appear in the learned clause
			}
			s.seen.Add(v)
			s.order.bump(v)
			if lvl == level {
				counter++
			} else {
				// lits is already negated (it comes from ExplainConflict or
				// ExplainAssign), so the literal that belongs in the learned
				// clause is its opposite.
				learned = append(learned, lit.Opposite())
				if lvl > backjumpLevel {
					backjumpLevel = lvl
				}
			}
		}
	}

	s.bumpClauseActivity(conflict)
	resolve(conflict.ExplainConflict())

	cursor := len(dl.propagated) - 1
	var uip Literal
	for {
		for cursor >= 0 && !s.seen.Contains(dl.propagated[cursor].lit.VarID()) {
			cursor--
		}
		if cursor < 0 {
			// Every other current-level literal has been resolved away;
			// the decision itself is what remains implicated.
			uip = dl.decision
			break
		}

		p := dl.propagated[cursor]
		cursor--
		counter--
		if counter == 0 {
			uip = p.lit
			break
		}

		s.bumpClauseActivity(p.reason)
		resolve(p.reason.ExplainAssign())
	}

	learned[0] = uip.Opposite()
	return learned, backjumpLevel
}

// record installs the result of analyzeConflict: a unit learned clause is
// asserted directly (it never gets a tracked Clause, matching the
// convention for root-level unit clauses), a longer one is added to the
// clause database and watched before its asserting literal is enqueued.
func (s *Solver) record(lits []Literal) {
	if len(lits) == 1 {
		s.enqueue(lits[0], nil)
		return
	}
	c := newLearnedClause(s, lits)
	s.db.addLearned(c)
	s.Stats.Learned++
	s.enqueue(c.Literals()[0], c)
}
