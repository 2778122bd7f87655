package grammar

import (
	"regexp"
	"strings"
)

// rulePattern matches any "<Name> -> rhs" line with a non-empty right-hand
// side.
var rulePattern = regexp.MustCompile(`^\s*<(\w+)>\s*->\s*(.*\S)\s*$`)

// Parse reads rule lines into Rules. Each line of the form
// "<NonTerminal> -> production | production ..." adds its productions, in
// order, to the productions of NonTerminal; a nonterminal named on several
// lines accumulates productions across all of them. The first nonterminal
// seen becomes the start symbol.
//
// Lines that are not rules are skipped. Parse never fails; productions are
// only checked when an automaton is built from them.
func Parse(lines []string) Rules {
	rules := newRules()

	for i := range lines {
		m := rulePattern.FindStringSubmatch(lines[i])
		if m == nil {
			if strings.TrimSpace(lines[i]) != "" {
				tracer().Debugf("skipping non-rule line %d: %q", i+1, lines[i])
			}
			continue
		}

		nt := m[1]
		alts := strings.Split(m[2], "|")
		for j := range alts {
			alts[j] = strings.TrimSpace(alts[j])
		}
		rules.add(nt, alts...)

		if rules.Start == "" {
			rules.Start = nt
		}
	}

	tracer().Debugf("parsed %d nonterminals, start symbol %q", rules.Len(), rules.Start)
	return rules
}
