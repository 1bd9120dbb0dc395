// Package parsers loads DIMACS CNF instances and model files into a SAT
// solver, delegating the wire format itself to github.com/rhartert/dimacs.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/cdclsat/solver/internal/sat"
)

// SATSolver is the narrow interface LoadDIMACS needs from a solver: enough
// to declare variables and add clauses while parsing, without pulling in
// the rest of the solver's API.
type SATSolver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename and loads its formula
// into solver, declaring variables and clauses in the order they appear.
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("reading instance %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{solver}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("parsing instance %q: %w", filename, err)
	}
	return nil
}

// builder adapts a SATSolver to dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want cnf", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	lits := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			lits[i] = sat.NegativeLiteral(-l - 1)
		} else {
			lits[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.solver.AddClause(lits)
}

func (b *builder) Comment(_ string) error {
	return nil
}

// ReadModels reads a model file: one model per line, each line a signed
// literal list in the same variable numbering as the instance it was
// computed for. Used by tests to check a solve against a known model set.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("reading models %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsing models %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
