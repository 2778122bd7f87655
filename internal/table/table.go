// Package table converts NFAs to and from the delimited transition table text
// format read by the downstream minimizer.
//
// A table for the grammar
//
//	<A> -> a <B> | b
//	<B> -> c
//
// with ';' as delimiter looks like:
//
//	;;;F
//	;q0;q1;q2
//	a;q1;;
//	b;q2;;
//	c;;q2;
//
// The first line marks final states with "F" in their column, the second line
// lists the states, and every other line gives, for one input symbol, the
// comma-separated targets of each state's transitions on it.
package table

import (
	"errors"
	"strings"

	"github.com/dekarrin/regnfa/internal/automaton"
	"github.com/dekarrin/regnfa/internal/util"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

const (
	// DefaultDelimiter is the field delimiter used when none is configured.
	DefaultDelimiter = ";"

	// FinalMarker is placed in the marker row at the column of each final
	// state.
	FinalMarker = "F"

	// targetSeparator joins the targets of nondeterministic transitions.
	targetSeparator = ","
)

// ErrMalformedTable is returned when table text cannot be decoded.
var ErrMalformedTable = errors.New("malformed table")

// stateComparator orders state identifiers for gods containers.
var stateComparator utils.Comparator = func(a, b interface{}) int {
	return util.CompareStates(a.(string), b.(string))
}

// Serialize gives the table text for the NFA in res using delim as the field
// delimiter.
func Serialize(res automaton.Result, delim string) string {
	return Encode(res.NFA, res.StateIDs(), res.Final, delim)
}

// Encode gives the table text for nfa. Columns are the given states, with
// duplicates removed, in state order (see util.CompareStates); rows are the
// input symbols of nfa in lexical order. Symbols and state names are written as
// they are and must not contain delim.
func Encode(nfa automaton.NFA, states []string, final util.StringSet, delim string) string {
	cols := columns(states)
	symbols := rows(nfa)

	lines := make([]string, 0, len(symbols)+2)

	marks := make([]string, len(cols))
	for i := range cols {
		if final.Has(cols[i]) {
			marks[i] = FinalMarker
		}
	}
	lines = append(lines, delim+strings.Join(marks, delim))
	lines = append(lines, delim+strings.Join(cols, delim))

	for _, a := range symbols {
		cells := make([]string, len(cols))
		for i := range cols {
			cells[i] = strings.Join(nfa.Targets(cols[i], a), targetSeparator)
		}
		lines = append(lines, a+delim+strings.Join(cells, delim))
	}

	return strings.Join(lines, "\n")
}

func columns(states []string) []string {
	set := treeset.NewWith(stateComparator)
	for _, s := range states {
		set.Add(s)
	}
	return toStrings(set.Values())
}

func rows(nfa automaton.NFA) []string {
	set := treeset.NewWithStringComparator()
	for a := range nfa.InputSymbols() {
		set.Add(a)
	}
	return toStrings(set.Values())
}

func toStrings(values []interface{}) []string {
	strs := make([]string, len(values))
	for i := range values {
		strs[i] = values[i].(string)
	}
	return strs
}
