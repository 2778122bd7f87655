package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Rules is an ordered mapping of nonterminal names to their productions. The
// order of nonterminals is the order in which they were first defined, and it
// decides the order in which states are allocated when an automaton is built
// from the Rules.
//
// Rules is built by Parse and is not modified afterwards; the accessors all
// return copies.
type Rules struct {
	m *linkedhashmap.Map

	// Start is the start symbol: the nonterminal of the first parsed rule.
	Start string
}

func newRules() Rules {
	return Rules{m: linkedhashmap.New()}
}

func (r Rules) add(nt string, productions ...string) {
	var existing []string
	if v, ok := r.m.Get(nt); ok {
		existing = v.([]string)
	}
	r.m.Put(nt, append(existing, productions...))
}

// Len returns the number of nonterminals that have rules.
func (r Rules) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Size()
}

// NonTerminals returns the names of all nonterminals with rules in the order
// they were first defined.
func (r Rules) NonTerminals() []string {
	if r.m == nil {
		return nil
	}

	keys := r.m.Keys()
	nts := make([]string, len(keys))
	for i := range keys {
		nts[i] = keys[i].(string)
	}
	return nts
}

// Productions returns the productions of nt in the order they were given. If
// nt has no rules, nil is returned.
func (r Rules) Productions(nt string) []string {
	if r.m == nil {
		return nil
	}

	v, ok := r.m.Get(nt)
	if !ok {
		return nil
	}

	prods := v.([]string)
	copied := make([]string, len(prods))
	copy(copied, prods)
	return copied
}

// String gives the rules back in grammar notation, one per line.
func (r Rules) String() string {
	var sb strings.Builder

	for i, nt := range r.NonTerminals() {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(fmt.Sprintf("<%s> -> %s", nt, strings.Join(r.Productions(nt), " | ")))
	}

	return sb.String()
}
