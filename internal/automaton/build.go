package automaton

import (
	"fmt"

	"github.com/dekarrin/regnfa/internal/grammar"
	"github.com/dekarrin/regnfa/internal/util"
)

// FinalLabel is the state map label of the shared final state.
const FinalLabel = "F"

// StateEntry is one entry of a state map: the nonterminal a state was made
// for, or FinalLabel for the shared final state, along with the state's ID.
type StateEntry struct {
	Label string
	ID    string
}

// Result is an NFA built from a grammar along with what is known about how
// its states came about.
type Result struct {
	NFA NFA

	// StateMap lists every state of NFA in the order it was allocated.
	StateMap []StateEntry

	// Final is the set of accepting states. It holds at most the one shared
	// final state.
	Final util.StringSet

	// Type is the linear form of the grammar the NFA was built from.
	Type grammar.Type
}

// StateIDs returns the IDs of all states in allocation order.
func (r Result) StateIDs() []string {
	ids := make([]string, len(r.StateMap))
	for i := range r.StateMap {
		ids[i] = r.StateMap[i].ID
	}
	return ids
}

// StateOf returns the ID of the state allocated for nonterminal nt, or "" if
// there is none.
func (r Result) StateOf(nt string) string {
	for i := range r.StateMap {
		if r.StateMap[i].Label == nt && !r.Final.Has(r.StateMap[i].ID) {
			return r.StateMap[i].ID
		}
	}
	return ""
}

// FinalState returns the ID of the shared final state, or "" if the grammar
// has no production that is a bare terminal.
func (r Result) FinalState() string {
	for id := range r.Final {
		return id
	}
	return ""
}

// Accepts returns whether the sentence made of the given terminals is in the
// language of the grammar. Left-linear grammars are built walking from the end
// of the sentence, so their input is fed to the NFA in reverse.
func (r Result) Accepts(word []string) bool {
	if r.Type == grammar.LeftLinear {
		reversed := make([]string, len(word))
		for i := range word {
			reversed[len(word)-1-i] = word[i]
		}
		word = reversed
	}
	return r.NFA.Accepts(word)
}

// Build creates an NFA from rules of the given linear form.
//
// Nonterminals are visited in the order of rules. Each one gets a state the
// first time it is seen, either as a rule or as a reference in a production.
// A production "a <B>" (or "<B> a" for left-linear grammars) adds a transition
// on "a" to the state of B. A production that is a bare terminal "a" adds a
// transition on "a" to a single shared final state, which is allocated the
// first time one is needed and labeled FinalLabel in the state map.
//
// The start state of the NFA is the state of rules.Start. Returns an error
// wrapping grammar.ErrMalformedProduction if a production cannot be split.
func Build(rules grammar.Rules, t grammar.Type) (Result, error) {
	parser := grammar.ParserFor(t)
	alloc := &Allocator{}

	res := Result{
		Type: t,
	}
	var nfa NFA
	ids := map[string]string{}

	stateFor := func(nt string) string {
		if id, ok := ids[nt]; ok {
			return id
		}
		id := alloc.Next()
		ids[nt] = id
		nfa.AddState(id, false)
		res.StateMap = append(res.StateMap, StateEntry{Label: nt, ID: id})
		tracer().Debugf("state %s allocated for <%s>", id, nt)
		return id
	}

	var final string

	for _, nt := range rules.NonTerminals() {
		from := stateFor(nt)

		for _, text := range rules.Productions(nt) {
			prod, err := parser.ParseProduction(text)
			if err != nil {
				return Result{}, fmt.Errorf("rule <%s>: %w", nt, err)
			}

			if prod.HasNonTerminal() {
				nfa.AddTransition(from, prod.Terminal, stateFor(prod.NonTerminal))
				continue
			}

			if final == "" {
				final = alloc.Next()
				nfa.AddState(final, true)
				res.StateMap = append(res.StateMap, StateEntry{Label: FinalLabel, ID: final})
				tracer().Debugf("state %s allocated as shared final state", final)
			}
			nfa.AddTransition(from, prod.Terminal, final)
		}
	}

	nfa.Start = ids[rules.Start]
	res.NFA = nfa
	res.Final = nfa.AcceptingStates()

	tracer().Infof("built %s-linear NFA with %d states, start %q", t, alloc.Count(), nfa.Start)
	return res, nil
}
