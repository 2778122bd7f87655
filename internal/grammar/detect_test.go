package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func Test_DetectType(t *testing.T) {
	testCases := []struct {
		name            string
		lines           []string
		expect          Type
		expectErr       error
		expectAmbiguous bool
	}{
		{
			name:   "right-linear",
			lines:  []string{"<A> -> a <B> | b", "<B> -> c"},
			expect: RightLinear,
		},
		{
			name:   "left-linear",
			lines:  []string{"<A> -> <B> a | b", "<B> -> c"},
			expect: LeftLinear,
		},
		{
			name:   "right-linear with several rules of both shapes",
			lines:  []string{"<S> -> 0 <S> | 1 <A>", "<A> -> 0 <A> | 1 | 1 <S>"},
			expect: RightLinear,
		},
		{
			name:   "non-rule lines are ignored",
			lines:  []string{"", "this is not a rule", "<S> -> <S> a | b"},
			expect: LeftLinear,
		},
		{
			name:   "bare-terminal rule after decision is fine",
			lines:  []string{"<S> -> <A> x", "<A> -> y | z"},
			expect: LeftLinear,
		},
		{
			name:      "no lines",
			lines:     nil,
			expectErr: ErrInvalidGrammar,
		},
		{
			name:      "no rules",
			lines:     []string{"hello", ""},
			expectErr: ErrInvalidGrammar,
		},
		{
			name:      "two nonterminal references",
			lines:     []string{"<A> -> <B> <C>"},
			expectErr: ErrInvalidGrammar,
		},
		{
			name:      "unclassifiable rule after decision",
			lines:     []string{"<A> -> a <B>", "<B> -> <B> <C>"},
			expectErr: ErrInvalidGrammar,
		},
		{
			name:      "mixed grammar",
			lines:     []string{"<A> -> a <B>", "<B> -> <A> b"},
			expectErr: ErrInvalidGrammar,
		},
		{
			name:            "deciding rule is bare terminals only",
			lines:           []string{"<A> -> a | b", "<B> -> c <A>"},
			expectErr:       ErrInvalidGrammar,
			expectAmbiguous: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			teardown := gotestingadapter.QuickConfig(t, "regnfa.grammar")
			defer teardown()
			assert := assert.New(t)

			actual, err := DetectType(tc.lines)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				if tc.expectAmbiguous {
					assert.ErrorIs(err, ErrAmbiguousRule)
				} else {
					assert.NotErrorIs(err, ErrAmbiguousRule)
				}
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Type_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("right", RightLinear.String())
	assert.Equal("left", LeftLinear.String())
	assert.Equal("Type(7)", Type(7).String())
}
