// Package grammar reads regular grammars written in strictly right-linear or
// strictly left-linear form. It normalizes grammar text into rule lines,
// detects which linear form the grammar uses, and parses the rule lines into
// an insertion-ordered mapping of nonterminals to their productions.
//
// Rules have the form
//
//	<NonTerminal> -> production | production | ...
//
// where a right-linear production is either a terminal or a terminal followed
// by a nonterminal reference ("a <B>"), and a left-linear production is either
// a terminal or a nonterminal reference followed by a terminal ("<B> a").
package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrInvalidGrammar is returned when a grammar cannot be classified as
	// right-linear or left-linear.
	ErrInvalidGrammar = errors.New("invalid grammar")

	// ErrAmbiguousRule is returned when the rule that would decide the linear
	// form of the grammar matches both forms. It wraps ErrInvalidGrammar.
	ErrAmbiguousRule = fmt.Errorf("%w: rule matches both right- and left-linear form", ErrInvalidGrammar)

	// ErrMalformedProduction is returned when a production does not split into
	// a terminal and an optional nonterminal reference in the order the
	// grammar's linear form requires.
	ErrMalformedProduction = errors.New("malformed production")
)

// tracer traces with key 'regnfa.grammar'
func tracer() tracing.Trace {
	return tracing.Select("regnfa.grammar")
}
