package util

import (
	"sort"
	"strings"
)

// StringSet is a map[string]bool with set operations added. It is used for
// sets of state identifiers throughout the automaton and table packages.
type StringSet map[string]bool

// NewStringSet creates a StringSet holding every key of the given maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf creates a StringSet containing each element of sl. A nil slice
// gives a nil set.
func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}

	s := StringSet{}

	for i := range sl {
		s.Add(sl[i])
	}

	return s
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Empty() bool {
	return s.Len() == 0
}

// Any returns whether any element in the set meets some condition.
func (s StringSet) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// Elements returns the elements of s as a slice in state order (see
// CompareStates).
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}

	sl := make([]string, 0, len(s))

	for item := range s {
		sl = append(sl, item)
	}

	SortStates(sl)

	return sl
}

// String shows the contents of the set in state order.
func (s StringSet) String() string {
	var sb strings.Builder

	sb.WriteRune('{')
	sb.WriteString(strings.Join(s.Elements(), ", "))
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m in state order. The order is guaranteed to
// be the same on every run.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	SortStates(keys)

	return keys
}

// SortStates sorts state identifiers in place using CompareStates.
func SortStates(states []string) {
	sort.SliceStable(states, func(i, j int) bool {
		return CompareStates(states[i], states[j]) < 0
	})
}
