package table

import (
	"strings"

	"github.com/dekarrin/regnfa/internal/automaton"
)

// noTransition is the Mealy cell for a state with no move on a symbol.
const noTransition = "-/-"

// EncodeMealy gives the NFA in res as a Mealy-style table, the input format of
// the external minimizer. It has no final-state row; the first line lists the
// states and each following line holds, for one input symbol, cells of the form
// "targets/symbol", with nondeterministic targets comma-joined, or "-/-" where
// the state has no transition on the symbol.
func EncodeMealy(res automaton.Result, delim string) string {
	cols := columns(res.StateIDs())
	symbols := rows(res.NFA)

	lines := make([]string, 0, len(symbols)+1)
	lines = append(lines, delim+strings.Join(cols, delim))

	for _, a := range symbols {
		cells := make([]string, len(cols))
		for i := range cols {
			targets := res.NFA.Targets(cols[i], a)
			if len(targets) == 0 {
				cells[i] = noTransition
				continue
			}
			cells[i] = strings.Join(targets, targetSeparator) + "/" + a
		}
		lines = append(lines, a+delim+strings.Join(cells, delim))
	}

	return strings.Join(lines, "\n")
}
