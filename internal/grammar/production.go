package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

var refPattern = regexp.MustCompile(`^<(\w+)>$`)

// Production is a single alternative of a rule, split into its parts.
type Production struct {
	// Terminal is the input symbol consumed by the production.
	Terminal string

	// NonTerminal is the name of the referenced nonterminal, without angle
	// brackets. It is empty for a production that is a bare terminal.
	NonTerminal string
}

// HasNonTerminal returns whether the production references a nonterminal.
func (p Production) HasNonTerminal() bool {
	return p.NonTerminal != ""
}

func (p Production) String() string {
	if p.NonTerminal == "" {
		return p.Terminal
	}
	return fmt.Sprintf("%s <%s>", p.Terminal, p.NonTerminal)
}

// ProductionParser splits production text into a Production.
type ProductionParser interface {
	ParseProduction(s string) (Production, error)
}

type rightLinearParser struct{}

type leftLinearParser struct{}

// ParserFor returns the ProductionParser for grammars of type t.
func ParserFor(t Type) ProductionParser {
	if t == LeftLinear {
		return leftLinearParser{}
	}
	return rightLinearParser{}
}

// ParseProduction parses "a" or "a <B>".
func (rightLinearParser) ParseProduction(s string) (Production, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		return bareTerminal(s, fields[0])
	case 2:
		return splitProduction(s, fields[0], fields[1])
	default:
		return Production{}, fmt.Errorf("%w: %q is not 'terminal <NonTerminal>'", ErrMalformedProduction, s)
	}
}

// ParseProduction parses "a" or "<B> a".
func (leftLinearParser) ParseProduction(s string) (Production, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 1:
		return bareTerminal(s, fields[0])
	case 2:
		return splitProduction(s, fields[1], fields[0])
	default:
		return Production{}, fmt.Errorf("%w: %q is not '<NonTerminal> terminal'", ErrMalformedProduction, s)
	}
}

func bareTerminal(s, term string) (Production, error) {
	if strings.ContainsAny(term, "<>") {
		return Production{}, fmt.Errorf("%w: %q has no terminal", ErrMalformedProduction, s)
	}
	return Production{Terminal: term}, nil
}

func splitProduction(s, term, ref string) (Production, error) {
	if strings.ContainsAny(term, "<>") {
		return Production{}, fmt.Errorf("%w: %q has nonterminal where terminal should be", ErrMalformedProduction, s)
	}

	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return Production{}, fmt.Errorf("%w: %q has no nonterminal reference where one should be", ErrMalformedProduction, s)
	}

	return Production{Terminal: term, NonTerminal: m[1]}, nil
}
