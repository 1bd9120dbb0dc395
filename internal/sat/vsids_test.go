package sat

import "testing"

func TestVSIDS_BumpOrdersBySore(t *testing.T) {
	o := newVSIDS(0.95, 1, 1e100, false)
	o.addVar(true)
	o.addVar(true)
	o.addVar(true)

	o.bump(2)
	o.bump(2)
	o.bump(0)

	unassigned := func(v int) LBool { return Unknown }

	lit, ok := o.selectDecisionLiteral(unassigned)
	if !ok {
		t.Fatal("selectDecisionLiteral: ok = false, want true")
	}
	if got, want := lit.VarID(), 2; got != want {
		t.Errorf("selectDecisionLiteral() var = %d, want %d (highest score)", got, want)
	}
}

func TestVSIDS_TieBreaksByLowestVarID(t *testing.T) {
	o := newVSIDS(0.95, 1, 1e100, false)
	o.addVar(true)
	o.addVar(true)
	o.addVar(true)

	unassigned := func(v int) LBool { return Unknown }

	lit, ok := o.selectDecisionLiteral(unassigned)
	if !ok {
		t.Fatal("selectDecisionLiteral: ok = false, want true")
	}
	if got, want := lit.VarID(), 0; got != want {
		t.Errorf("selectDecisionLiteral() var = %d, want %d (lowest id on tie)", got, want)
	}
}

func TestVSIDS_NoUnassignedReturnsFalse(t *testing.T) {
	o := newVSIDS(0.95, 1, 1e100, false)
	o.addVar(true)

	assigned := func(v int) LBool { return True }

	_, ok := o.selectDecisionLiteral(assigned)
	if ok {
		t.Error("selectDecisionLiteral(): ok = true with no unassigned variables, want false")
	}
}

func TestVSIDS_PhaseSaving(t *testing.T) {
	o := newVSIDS(0.95, 1, 1e100, true)
	o.addVar(true)

	o.reinsert(0, False)

	unassigned := func(v int) LBool { return Unknown }
	lit, ok := o.selectDecisionLiteral(unassigned)
	if !ok {
		t.Fatal("selectDecisionLiteral: ok = false, want true")
	}
	if lit.IsPositive() {
		t.Errorf("selectDecisionLiteral() = %v, want negative literal (saved phase False)", lit)
	}
}

func TestVSIDS_DecayInterval(t *testing.T) {
	o := newVSIDS(0.5, 2, 1e100, false)
	initial := o.increment

	o.conflictOccurred()
	if o.increment != initial {
		t.Errorf("increment after 1 conflict (interval 2) = %v, want unchanged %v", o.increment, initial)
	}

	o.conflictOccurred()
	if o.increment == initial {
		t.Errorf("increment after 2 conflicts (interval 2) = %v, want decayed", o.increment)
	}
}

func TestVSIDS_Rescale(t *testing.T) {
	o := newVSIDS(0.95, 1, 10, false)
	o.addVar(true)

	o.scores[0] = 5
	o.bump(0) // 6, below threshold
	if o.increment != 1 {
		t.Fatalf("increment = %v before rescale, want 1", o.increment)
	}

	o.scores[0] = 20
	o.bump(0) // pushes over threshold 10, triggers rescale
	if o.scores[0] >= 10 {
		t.Errorf("scores[0] after rescale = %v, want below threshold", o.scores[0])
	}
	if o.increment >= 1 {
		t.Errorf("increment after rescale = %v, want shrunk", o.increment)
	}
}
