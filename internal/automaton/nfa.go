// Package automaton builds nondeterministic finite automata from regular
// grammars and runs input against them.
package automaton

import (
	"fmt"
	"strings"

	"github.com/dekarrin/regnfa/internal/util"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regnfa.automaton'
func tracer() tracing.Trace {
	return tracing.Select("regnfa.automaton")
}

// FATransition is a single move of a finite automaton.
type FATransition struct {
	input string
	next  string
}

func (t FATransition) String() string {
	return fmt.Sprintf("=(%s)=> %s", t.input, t.next)
}

// NFAState is a state of an NFA along with all transitions out of it.
type NFAState struct {
	name string

	// transitions are kept per input symbol in the order they were added.
	transitions map[string][]FATransition
	accepting   bool
}

func (ns NFAState) String() string {
	var moves []string

	for _, input := range util.OrderedKeys(ns.transitions) {
		for _, t := range ns.transitions[input] {
			moves = append(moves, t.String())
		}
	}

	str := fmt.Sprintf("(%s [%s])", ns.name, strings.Join(moves, ", "))

	if ns.accepting {
		str = "(" + str + ")"
	}

	return str
}

// NFA is a nondeterministic finite automaton. The zero value is an empty NFA
// ready for use.
type NFA struct {
	states map[string]NFAState
	Start  string
}

// AddState adds a new state to the NFA. If a state with that name already
// exists, this has no effect.
func (nfa *NFA) AddState(state string, accepting bool) {
	if _, ok := nfa.states[state]; ok {
		return
	}

	newState := NFAState{
		name:        state,
		transitions: make(map[string][]FATransition),
		accepting:   accepting,
	}

	if nfa.states == nil {
		nfa.states = map[string]NFAState{}
	}

	nfa.states[state] = newState
}

// AddTransition adds a move from fromState to toState on input. Both states
// must already exist. Transitions on the same input from the same state are
// kept in the order they are added; adding a duplicate transition adds it
// again.
func (nfa *NFA) AddTransition(fromState string, input string, toState string) {
	curFromState, ok := nfa.states[fromState]
	if !ok {
		panic(fmt.Sprintf("add transition from non-existent state %q", fromState))
	}
	if _, ok := nfa.states[toState]; !ok {
		panic(fmt.Sprintf("add transition to non-existent state %q", toState))
	}

	curFromState.transitions[input] = append(curFromState.transitions[input], FATransition{
		input: input,
		next:  toState,
	})
	nfa.states[fromState] = curFromState
}

// States returns all states in the NFA.
func (nfa NFA) States() util.StringSet {
	states := util.NewStringSet()

	for k := range nfa.states {
		states.Add(k)
	}

	return states
}

// AcceptingStates returns all states in the NFA that are accepting.
func (nfa NFA) AcceptingStates() util.StringSet {
	accepting := util.NewStringSet()

	for k := range nfa.states {
		if nfa.states[k].accepting {
			accepting.Add(k)
		}
	}

	return accepting
}

// IsAccepting returns whether state is an accepting state. A state that is not
// in the NFA is not accepting.
func (nfa NFA) IsAccepting(state string) bool {
	return nfa.states[state].accepting
}

// InputSymbols returns the set of all input symbols processed by some
// transition in the NFA.
func (nfa NFA) InputSymbols() util.StringSet {
	symbols := util.NewStringSet()
	for sName := range nfa.states {
		for a := range nfa.states[sName].transitions {
			symbols.Add(a)
		}
	}

	return symbols
}

// Targets returns the states that fromState moves to on input, in the order
// the transitions were added. Returns nil if there are none.
func (nfa NFA) Targets(fromState string, input string) []string {
	st, ok := nfa.states[fromState]
	if !ok {
		return nil
	}

	var targets []string
	for _, t := range st.transitions[input] {
		targets = append(targets, t.next)
	}
	return targets
}

// MOVE returns the set of states reachable with one transition from some state
// in X on input a. Purple dragon book calls this function MOVE(T, a) and it is
// on page 153 as part of algorithm 3.20.
func (nfa NFA) MOVE(X util.StringSet, a string) util.StringSet {
	moves := util.NewStringSet()

	for s := range X {
		for _, next := range nfa.Targets(s, a) {
			moves.Add(next)
		}
	}

	return moves
}

// Accepts returns whether the NFA accepts the given sequence of input
// symbols. The simulation tracks every state the NFA could be in; the input is
// accepted if any of them is accepting once all symbols are consumed.
func (nfa NFA) Accepts(input []string) bool {
	if _, ok := nfa.states[nfa.Start]; !ok {
		return false
	}

	current := util.StringSetOf([]string{nfa.Start})
	for _, a := range input {
		current = nfa.MOVE(current, a)
		if current.Empty() {
			return false
		}
	}

	return current.Any(nfa.IsAccepting)
}

func (nfa NFA) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<START: %q, STATES:", nfa.Start))

	orderedStates := util.OrderedKeys(nfa.states)

	for i := range orderedStates {
		sb.WriteString("\n\t")
		sb.WriteString(nfa.states[orderedStates[i]].String())

		if i+1 < len(nfa.states) {
			sb.WriteRune(',')
		} else {
			sb.WriteRune('\n')
		}
	}

	sb.WriteRune('>')

	return sb.String()
}
