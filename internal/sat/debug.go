package sat

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

// trace writes a one-line, tag-prefixed diagnostic to stderr when the
// solver was built with Options.Debug, pretty-printing the values with
// kr/pretty. A no-op otherwise, so the check is the only cost paid on the
// hot path when debugging is off.
func (s *Solver) trace(tag string, v ...interface{}) {
	if !s.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, pretty.Sprint(v...))
}
