package table

import (
	"fmt"
	"strings"
)

// Table is the decoded form of table text.
type Table struct {
	// States are the column headers in the order they appear.
	States []string

	// Final are the states whose column is marked final, in column order.
	Final []string

	// Symbols are the row headers in the order they appear.
	Symbols []string

	// Cells maps a symbol, then a state, to the targets of that state's
	// transitions on that symbol. Empty cells have no entry.
	Cells map[string]map[string][]string
}

// Targets returns the targets in the cell at symbol and state.
func (t Table) Targets(symbol, state string) []string {
	return t.Cells[symbol][state]
}

// Parse decodes table text produced by Encode. A trailing newline is allowed.
// Returns an error wrapping ErrMalformedTable if the text does not have both
// header lines or if any row has the wrong number of cells.
func Parse(text string, delim string) (Table, error) {
	if delim == "" {
		return Table{}, fmt.Errorf("%w: empty delimiter", ErrMalformedTable)
	}

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if len(lines) < 2 {
		return Table{}, fmt.Errorf("%w: need final-state row and state row, got %d line(s)", ErrMalformedTable, len(lines))
	}

	var tbl Table

	header, err := splitLeading(lines[1], delim, -1)
	if err != nil {
		return Table{}, fmt.Errorf("line 2: %w", err)
	}
	tbl.States = header
	width := len(header)

	marks, err := splitLeading(lines[0], delim, width)
	if err != nil {
		return Table{}, fmt.Errorf("line 1: %w", err)
	}
	for i := range marks {
		switch marks[i] {
		case FinalMarker:
			tbl.Final = append(tbl.Final, tbl.States[i])
		case "":
		default:
			return Table{}, fmt.Errorf("line 1: %w: unknown marker %q", ErrMalformedTable, marks[i])
		}
	}

	tbl.Cells = map[string]map[string][]string{}
	for lineIdx := 2; lineIdx < len(lines); lineIdx++ {
		line := lines[lineIdx]

		sepIdx := strings.Index(line, delim)
		if sepIdx < 0 {
			return Table{}, fmt.Errorf("line %d: %w: no delimiter", lineIdx+1, ErrMalformedTable)
		}
		symbol := line[:sepIdx]

		cells, err := splitLeading(line[sepIdx:], delim, width)
		if err != nil {
			return Table{}, fmt.Errorf("line %d: %w", lineIdx+1, err)
		}

		tbl.Symbols = append(tbl.Symbols, symbol)
		row := map[string][]string{}
		for i := range cells {
			if cells[i] != "" {
				row[tbl.States[i]] = strings.Split(cells[i], targetSeparator)
			}
		}
		tbl.Cells[symbol] = row
	}

	return tbl, nil
}

// splitLeading splits a line that starts with delim into its cells. If width
// is not negative the line must have exactly width cells; a line of only the
// delimiter is then taken as width empty cells.
func splitLeading(line string, delim string, width int) ([]string, error) {
	if !strings.HasPrefix(line, delim) {
		return nil, fmt.Errorf("%w: line does not start with delimiter %q", ErrMalformedTable, delim)
	}
	rest := line[len(delim):]

	if rest == "" {
		if width < 0 {
			return nil, nil
		}
		if width > 1 {
			return nil, fmt.Errorf("%w: expected %d cells, got 1", ErrMalformedTable, width)
		}
		return make([]string, width), nil
	}

	cells := strings.Split(rest, delim)
	if width >= 0 && len(cells) != width {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformedTable, width, len(cells))
	}
	return cells, nil
}
