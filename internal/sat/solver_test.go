package sat

import "testing"

// lit builds a Literal from a DIMACS-style nonzero int (positive for the
// variable, negative for its negation), relative to a zero-based variable
// id of abs(x)-1.
func lit(x int) Literal {
	if x > 0 {
		return PositiveLiteral(x - 1)
	}
	return NegativeLiteral(-x - 1)
}

func clause(xs ...int) []Literal {
	out := make([]Literal, len(xs))
	for i, x := range xs {
		out[i] = lit(x)
	}
	return out
}

func newTestSolver(numVars int) *Solver {
	s := NewDefaultSolver()
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	return s
}

func satisfies(model []bool, lits []Literal) bool {
	for _, l := range lits {
		v := model[l.VarID()]
		if l.IsPositive() == v {
			return true
		}
	}
	return false
}

func TestSolve_EmptyFormula_SAT(t *testing.T) {
	s := NewDefaultSolver()
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() = %v, want True", got)
	}
	if len(s.Model()) != 0 {
		t.Errorf("Model() = %v, want empty", s.Model())
	}
}

func TestSolve_EmptyClause_UNSAT(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(nil)
	if got := s.Solve(); got != False {
		t.Fatalf("Solve() = %v, want False", got)
	}
}

func TestSolve_ContradictoryUnits_UNSAT(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(clause(1))
	s.AddClause(clause(-1))
	if got := s.Solve(); got != False {
		t.Fatalf("Solve() = %v, want False", got)
	}
}

func TestSolve_SingleUnitClause_SAT(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(clause(-1))
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() = %v, want True", got)
	}
	if model := s.Model(); model[0] != false {
		t.Errorf("model[0] = %v, want false", model[0])
	}
}

func TestSolve_SimpleSAT_ModelSatisfiesAllClauses(t *testing.T) {
	s := newTestSolver(3)
	clauses := [][]int{
		{1, 2, 3},
		{-1, 2},
		{-2, 3},
	}
	for _, c := range clauses {
		s.AddClause(clause(c...))
	}
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() = %v, want True", got)
	}
	model := s.Model()
	for _, c := range clauses {
		if !satisfies(model, clause(c...)) {
			t.Errorf("clause %v not satisfied by model %v", c, model)
		}
	}
}

// TestSolve_Pigeonhole_UNSAT encodes PHP(3,2): 3 pigeons into 2 holes,
// with variable p(i,h) = 2*i+h for pigeon i in {0,1,2}, hole h in {0,1}.
// Unsatisfiable: exercises real conflict-driven learning, not just
// preprocessing-level detection.
func TestSolve_Pigeonhole_UNSAT(t *testing.T) {
	const pigeons, holes = 3, 2
	v := func(p, h int) int { return p*holes + h + 1 }

	s := newTestSolver(pigeons * holes)

	for p := 0; p < pigeons; p++ {
		var atLeastOne []int
		for h := 0; h < holes; h++ {
			atLeastOne = append(atLeastOne, v(p, h))
		}
		s.AddClause(clause(atLeastOne...))
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				s.AddClause(clause(-v(p1, h), -v(p2, h)))
			}
		}
	}

	if got := s.Solve(); got != False {
		t.Fatalf("Solve() = %v, want False (pigeonhole is unsatisfiable)", got)
	}
	if s.Stats.Conflicts == 0 {
		t.Error("Stats.Conflicts = 0, want at least one conflict for a nontrivial UNSAT instance")
	}
}

func TestSolve_MaxConflicts_ReturnsUnknown(t *testing.T) {
	const pigeons, holes = 4, 3
	v := func(p, h int) int { return p*holes + h + 1 }

	opts := DefaultOptions
	opts.MaxConflicts = 0
	s := NewSolver(opts)
	for i := 0; i < pigeons*holes; i++ {
		s.AddVariable()
	}
	for p := 0; p < pigeons; p++ {
		var atLeastOne []int
		for h := 0; h < holes; h++ {
			atLeastOne = append(atLeastOne, v(p, h))
		}
		s.AddClause(clause(atLeastOne...))
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				s.AddClause(clause(-v(p1, h), -v(p2, h)))
			}
		}
	}

	if got := s.Solve(); got != Unknown {
		t.Fatalf("Solve() = %v, want Unknown (MaxConflicts=0 should stop before the first decision)", got)
	}
}

func TestSolve_TautologyAndDuplicateLiterals_Ignored(t *testing.T) {
	s := newTestSolver(2)
	s.AddClause(clause(1, -1, 2)) // tautology: always satisfied
	s.AddClause(clause(2, 2))     // duplicate: equivalent to unit (2)
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() = %v, want True", got)
	}
	if model := s.Model(); !model[1] {
		t.Errorf("model[1] = false, want true (forced by duplicate-literal unit clause)")
	}
}

func TestAddClause_AfterUNSAT_IsNoOp(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause(clause(1))
	s.AddClause(clause(-1))
	if !s.unsat {
		t.Fatal("expected s.unsat = true after contradictory units")
	}
	before := s.NumConstraints()
	s.AddClause(clause(1))
	if s.NumConstraints() != before {
		t.Errorf("NumConstraints() changed after AddClause on an already-UNSAT solver")
	}
}
