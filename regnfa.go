// Package regnfa converts regular grammars into nondeterministic finite
// automata and serializes them as transition tables for a downstream
// minimizer.
//
// The grammar may be strictly right-linear or strictly left-linear; which one
// is detected from the rules themselves. See package grammar for the grammar
// syntax and package table for the table format.
package regnfa

import (
	"fmt"

	"github.com/dekarrin/regnfa/internal/automaton"
	"github.com/dekarrin/regnfa/internal/grammar"
	"github.com/dekarrin/regnfa/internal/table"
)

// Options changes how a grammar is converted.
type Options struct {
	// Delimiter separates table fields. If empty, table.DefaultDelimiter is
	// used.
	Delimiter string
}

// Output is everything produced by converting a grammar.
type Output struct {
	// Rules are the parsed grammar rules.
	Rules grammar.Rules

	// NFA is the automaton built from Rules.
	NFA automaton.Result

	// Table is the transition table text of NFA.
	Table string

	// Mealy is NFA as a Mealy-style table for the external minimizer.
	Mealy string
}

// Convert runs the whole conversion on normalized grammar lines: the linear
// form is detected, the rules are parsed, the NFA is built, and the NFA is
// serialized. The first error stops the conversion and no partial Output is
// returned.
func Convert(lines []string, opts Options) (Output, error) {
	delim := opts.Delimiter
	if delim == "" {
		delim = table.DefaultDelimiter
	}

	gType, err := grammar.DetectType(lines)
	if err != nil {
		return Output{}, err
	}

	rules := grammar.Parse(lines)

	res, err := automaton.Build(rules, gType)
	if err != nil {
		return Output{}, fmt.Errorf("build NFA: %w", err)
	}

	return Output{
		Rules: rules,
		NFA:   res,
		Table: table.Serialize(res, delim),
		Mealy: table.EncodeMealy(res, delim),
	}, nil
}

// ConvertFile reads the grammar in the file at path and converts it.
func ConvertFile(path string, opts Options) (Output, error) {
	lines, err := grammar.ReadFile(path)
	if err != nil {
		return Output{}, err
	}

	return Convert(lines, opts)
}
