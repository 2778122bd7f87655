package table

import (
	"strings"

	"github.com/dekarrin/regnfa/internal/automaton"
	"github.com/dekarrin/rosed"
)

// Pretty renders the NFA in res as a boxed text table of at most width
// columns for display on a console. Final states are marked with a '*' after
// their name in the header.
func Pretty(res automaton.Result, width int) string {
	cols := columns(res.StateIDs())
	symbols := rows(res.NFA)

	data := [][]string{}

	headers := []string{"Input"}
	for _, s := range cols {
		if res.Final.Has(s) {
			s += "*"
		}
		headers = append(headers, s)
	}
	data = append(data, headers)

	for _, a := range symbols {
		row := []string{a}
		for _, s := range cols {
			cell := ""
			for i, next := range res.NFA.Targets(s, a) {
				if i > 0 {
					cell += targetSeparator + " "
				}
				cell += next
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	// rosed upper-cases header cells, which would no longer match the state
	// ids in the body, so the header is laid out as a normal row and the rule
	// under it is copied from the top border.
	boxed := rosed.
		Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableBorders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	lines := strings.Split(boxed, "\n")
	if len(lines) > 3 {
		rule := lines[0]
		lines = append(lines[:2], append([]string{rule}, lines[2:]...)...)
	}
	return strings.Join(lines, "\n")
}
