package automaton

import (
	"testing"

	"github.com/dekarrin/regnfa/internal/util"
	"github.com/stretchr/testify/assert"
)

func Test_Allocator(t *testing.T) {
	assert := assert.New(t)

	var alloc Allocator

	assert.Equal("q0", alloc.Next())
	assert.Equal("q1", alloc.Next())
	assert.Equal("q2", alloc.Next())
	assert.Equal(3, alloc.Count())
}

func Test_NFA_String(t *testing.T) {
	assert := assert.New(t)

	var nfa NFA
	nfa.AddState("q0", false)
	nfa.AddState("q1", false)
	nfa.AddState("q2", true)
	nfa.AddTransition("q0", "a", "q1")
	nfa.AddTransition("q0", "b", "q2")
	nfa.AddTransition("q1", "c", "q2")
	nfa.Start = "q0"

	expect := "<START: \"q0\", STATES:\n" +
		"\t(q0 [=(a)=> q1, =(b)=> q2]),\n" +
		"\t(q1 [=(c)=> q2]),\n" +
		"\t((q2 []))\n" +
		">"

	assert.Equal(expect, nfa.String())
}

func Test_NFA_MOVE(t *testing.T) {
	assert := assert.New(t)

	var nfa NFA
	nfa.AddState("q0", false)
	nfa.AddState("q1", false)
	nfa.AddState("q2", true)
	nfa.AddTransition("q0", "a", "q1")
	nfa.AddTransition("q0", "a", "q2")
	nfa.AddTransition("q1", "a", "q2")

	actual := nfa.MOVE(util.StringSetOf([]string{"q0", "q1"}), "a")

	assert.Equal([]string{"q1", "q2"}, actual.Elements())
	assert.True(nfa.MOVE(util.StringSetOf([]string{"q2"}), "a").Empty())
}

func Test_NFA_AddTransition_UnknownState(t *testing.T) {
	assert := assert.New(t)

	var nfa NFA
	nfa.AddState("q0", false)

	assert.Panics(func() { nfa.AddTransition("q0", "a", "q9") })
	assert.Panics(func() { nfa.AddTransition("q9", "a", "q0") })
}
