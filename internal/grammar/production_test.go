package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ProductionParsers(t *testing.T) {
	testCases := []struct {
		name      string
		t         Type
		input     string
		expect    Production
		expectErr bool
	}{
		{name: "right: bare terminal", t: RightLinear, input: "a", expect: Production{Terminal: "a"}},
		{name: "right: terminal then ref", t: RightLinear, input: "a <B>", expect: Production{Terminal: "a", NonTerminal: "B"}},
		{name: "right: extra whitespace", t: RightLinear, input: "  a \t <Bee> ", expect: Production{Terminal: "a", NonTerminal: "Bee"}},
		{name: "right: ref first", t: RightLinear, input: "<B> a", expectErr: true},
		{name: "right: two refs", t: RightLinear, input: "<B> <C>", expectErr: true},
		{name: "right: too many parts", t: RightLinear, input: "a <B> c", expectErr: true},
		{name: "right: empty", t: RightLinear, input: "", expectErr: true},
		{name: "right: bare ref", t: RightLinear, input: "<B>", expectErr: true},
		{name: "left: bare terminal", t: LeftLinear, input: "a", expect: Production{Terminal: "a"}},
		{name: "left: ref then terminal", t: LeftLinear, input: "<B> a", expect: Production{Terminal: "a", NonTerminal: "B"}},
		{name: "left: terminal first", t: LeftLinear, input: "a <B>", expectErr: true},
		{name: "left: empty", t: LeftLinear, input: "   ", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParserFor(tc.t).ParseProduction(tc.input)

			if tc.expectErr {
				assert.ErrorIs(err, ErrMalformedProduction)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Production_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a", Production{Terminal: "a"}.String())
	assert.Equal("a <B>", Production{Terminal: "a", NonTerminal: "B"}.String())
	assert.True(Production{Terminal: "a", NonTerminal: "B"}.HasNonTerminal())
	assert.False(Production{Terminal: "a"}.HasNonTerminal())
}
