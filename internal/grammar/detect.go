package grammar

import (
	"fmt"
	"regexp"
)

// Type is the linear form of a regular grammar.
type Type int

const (
	// RightLinear grammars have productions of the form "a" or "a <B>".
	RightLinear Type = iota

	// LeftLinear grammars have productions of the form "a" or "<B> a".
	LeftLinear
)

func (t Type) String() string {
	switch t {
	case RightLinear:
		return "right"
	case LeftLinear:
		return "left"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

var (
	ruleHead     = regexp.MustCompile(`^\s*<\w+>\s*->`)
	rightPattern = regexp.MustCompile(`^\s*<(\w+)>\s*->\s*(\w(?:\s+<\w+>)?(?:\s*\|\s*\w(?:\s+<\w+>)?)*)\s*$`)
	leftPattern  = regexp.MustCompile(`^\s*<(\w+)>\s*->\s*((?:<\w+>\s+)?\w(?:\s*\|\s*(?:<\w+>\s+)?\w)*)\s*$`)
)

// DetectType decides whether the rule lines describe a right-linear or a
// left-linear grammar.
//
// Lines that do not start with a "<Name> ->" head are ignored. The first rule
// that matches exactly one of the two forms decides the type; if that rule
// matches both forms (for instance "<A> -> a | b"), ErrAmbiguousRule is
// returned. Every rule after the deciding one must also match the decided
// form. Any rule matching neither form, a rule of the other form, or a grammar
// with no classifiable rule gives ErrInvalidGrammar.
func DetectType(lines []string) (Type, error) {
	var decided bool
	var t Type

	for i, line := range lines {
		if !ruleHead.MatchString(line) {
			continue
		}

		isRight := rightPattern.MatchString(line)
		isLeft := leftPattern.MatchString(line)

		if !isRight && !isLeft {
			return t, fmt.Errorf("line %d: %w: rule is neither right- nor left-linear: %q", i+1, ErrInvalidGrammar, line)
		}

		if decided {
			if (t == RightLinear && !isRight) || (t == LeftLinear && !isLeft) {
				return t, fmt.Errorf("line %d: %w: %s-linear grammar has rule of other form: %q", i+1, ErrInvalidGrammar, t, line)
			}
			continue
		}

		if isRight && isLeft {
			return t, fmt.Errorf("line %d: %w: %q", i+1, ErrAmbiguousRule, line)
		}

		if isRight {
			t = RightLinear
		} else {
			t = LeftLinear
		}
		decided = true
		tracer().Debugf("line %d decides %s-linear grammar", i+1, t)
	}

	if !decided {
		return t, fmt.Errorf("%w: no right- or left-linear rules", ErrInvalidGrammar)
	}

	return t, nil
}
