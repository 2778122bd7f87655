package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CompareStates(t *testing.T) {
	testCases := []struct {
		name   string
		a      string
		b      string
		expect int
	}{
		{name: "same", a: "q1", b: "q1", expect: 0},
		{name: "single digit", a: "q1", b: "q2", expect: -1},
		{name: "numeric not lexical", a: "q2", b: "q10", expect: -1},
		{name: "numeric not lexical reversed", a: "q10", b: "q2", expect: 1},
		{name: "different prefixes are lexical", a: "p10", b: "q2", expect: -1},
		{name: "no number is lexical", a: "F", b: "q0", expect: -1},
		{name: "leading zeros fall back to lexical", a: "q01", b: "q1", expect: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := CompareStates(tc.a, tc.b)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_StringSet_Elements(t *testing.T) {
	assert := assert.New(t)

	s := StringSetOf([]string{"q10", "q2", "q0", "q1"})

	assert.Equal([]string{"q0", "q1", "q2", "q10"}, s.Elements())
	assert.Equal("{q0, q1, q2, q10}", s.String())
}
