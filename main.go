// Command solver reads a DIMACS CNF instance and reports its satisfiability.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cdclsat/solver/internal/sat"
	"github.com/cdclsat/solver/parsers"
)

var (
	flagModel      = flag.Bool("model", false, "print a satisfying model, if found")
	flagStats      = flag.Bool("stats", false, "print search statistics")
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagCPUProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write a heap profile to this file")
)

// Exit codes: 0 for a decided instance (SAT or UNSAT), 1 for an input or
// I/O error (reported through log.Fatalf), 2 for a usage error or an
// inconclusive (timed out / conflict-bounded) run.
const (
	exitSAT     = 0
	exitUNSAT   = 0
	exitUnknown = 2
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "usage: solver [flags] <instance.cnf>")
		os.Exit(exitUnknown)
	}
	instanceFile := flag.Arg(0)

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatalf("creating cpu profile: %s", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("starting cpu profile: %s", err)
		}
		defer pprof.StopCPUProfile()
	}

	s := sat.NewDefaultSolver()
	if err := parsers.LoadDIMACS(instanceFile, *flagGzip, s); err != nil {
		log.Fatalf("loading instance: %s", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVariables())
	fmt.Printf("c clauses:   %d\n", s.NumConstraints())

	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)

	if *flagStats {
		fmt.Printf("c time (sec):  %.3f\n", elapsed.Seconds())
		fmt.Printf("c decisions:   %d\n", s.Stats.Decisions)
		fmt.Printf("c propagations: %d\n", s.Stats.Propagations)
		fmt.Printf("c conflicts:   %d\n", s.Stats.Conflicts)
		fmt.Printf("c learned:     %d\n", s.Stats.Learned)
		fmt.Printf("c restarts:    %d\n", s.Stats.Restarts)
	}
	fmt.Printf("c status: %s\n", status)

	switch status {
	case sat.True:
		fmt.Println("Satisfiable")
		if *flagModel {
			printModel(s.Model())
		}
		if *flagMemProfile != "" {
			writeMemProfile(*flagMemProfile)
		}
		os.Exit(exitSAT)
	case sat.False:
		fmt.Println("Unsatisfiable")
		if *flagMemProfile != "" {
			writeMemProfile(*flagMemProfile)
		}
		os.Exit(exitUNSAT)
	default:
		fmt.Println("UNKNOWN")
		if *flagMemProfile != "" {
			writeMemProfile(*flagMemProfile)
		}
		os.Exit(exitUnknown)
	}
}

func printModel(model []bool) {
	for v, b := range model {
		if b {
			fmt.Printf("%d ", v+1)
		} else {
			fmt.Printf("-%d ", v+1)
		}
	}
	fmt.Println("0")
}

func writeMemProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("creating memory profile: %s", err)
		return
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("writing memory profile: %s", err)
	}
}
