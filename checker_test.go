package regnfa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func Test_Checker_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name    string
		grammar []string
		input   string
		expect  string
	}{
		{
			name:    "right-linear words",
			grammar: []string{"<A> -> a <B> | b", "<B> -> c"},
			input:   "b\nac\na\n\nQUIT\nb\n",
			expect:  "ACCEPT\nACCEPT\nREJECT\nREJECT\n",
		},
		{
			name:    "left-linear words",
			grammar: []string{"<S> -> <A> b | a", "<A> -> a"},
			input:   "ab\nba\na",
			expect:  "ACCEPT\nREJECT\nACCEPT\n",
		},
		{
			name:    "multi-character terminals",
			grammar: []string{"<S> -> x <T>", "<T> -> y"},
			input:   "x y\nxy\n",
			expect:  "ACCEPT\nACCEPT\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			teardown := gotestingadapter.QuickConfig(t, "regnfa.automaton")
			defer teardown()
			assert := assert.New(t)

			conv, err := Convert(tc.grammar, Options{})
			if !assert.NoError(err) {
				return
			}

			var out bytes.Buffer
			chk, err := NewChecker(conv.NFA, strings.NewReader(tc.input), &out, true)
			if !assert.NoError(err) {
				return
			}

			err = chk.RunUntilQuit()
			assert.NoError(err)
			assert.NoError(chk.Close())

			assert.True(strings.HasSuffix(out.String(), "\n"+tc.expect), "output was:\n%s", out.String())
			assert.Contains(out.String(), "(direct")
		})
	}
}

func Test_SplitWord(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []string
	}{
		{name: "empty", input: "", expect: []string{}},
		{name: "characters", input: "abc", expect: []string{"a", "b", "c"}},
		{name: "fields", input: "ab  c", expect: []string{"ab", "c"}},
		{name: "unicode characters", input: "αβ", expect: []string{"α", "β"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, SplitWord(tc.input))
		})
	}
}
