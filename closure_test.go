package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosure(t *testing.T) {
	t.Run("noEpsilonTransitions", func(t *testing.T) {
		a, err := Validate(
			[]string{"q0", "q1"},
			[]Symbol{"a"},
			"q0",
			nil,
			[]Transition{
				{From: "q0", Input: "a", To: []string{"q1"}},
			},
		)
		assert.Nil(t, err)

		cl, err := a.Closure("q0")
		assert.Nil(t, err)
		assert.Equal(t, []string{"q0"}, cl)
	})

	t.Run("chain", func(t *testing.T) {
		a, err := Validate(
			[]string{"q0", "q1", "q2"},
			[]Symbol{"a"},
			"q0",
			nil,
			[]Transition{
				{From: "q0", Input: Epsilon, To: []string{"q1"}},
				{From: "q1", Input: Epsilon, To: []string{"q2"}},
			},
		)
		assert.Nil(t, err)

		cl, err := a.Closure("q0")
		assert.Nil(t, err)
		assert.ElementsMatch(t, []string{"q0", "q1", "q2"}, cl)

		cl, err = a.Closure("q1")
		assert.Nil(t, err)
		assert.ElementsMatch(t, []string{"q1", "q2"}, cl)
	})

	t.Run("cycleTerminates", func(t *testing.T) {
		a, err := Validate(
			[]string{"q0", "q1"},
			[]Symbol{"a"},
			"q0",
			[]string{"q1"},
			[]Transition{
				{From: "q0", Input: Epsilon, To: []string{"q1"}},
				{From: "q1", Input: Epsilon, To: []string{"q0"}},
				{From: "q0", Input: "a", To: []string{"q0"}},
			},
		)
		assert.Nil(t, err)

		cl0, err := a.Closure("q0")
		assert.Nil(t, err)
		cl1, err := a.Closure("q1")
		assert.Nil(t, err)
		assert.ElementsMatch(t, []string{"q0", "q1"}, cl0)
		assert.ElementsMatch(t, []string{"q0", "q1"}, cl1)
	})

	t.Run("undeclaredState", func(t *testing.T) {
		a, err := Validate([]string{"q0"}, []Symbol{"a"}, "q0", nil, nil)
		assert.Nil(t, err)

		_, err = a.Closure("q9")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestClosureProperties(t *testing.T) {
	a, err := Validate(
		[]string{"q0", "q1", "q2", "q3"},
		[]Symbol{"a"},
		"q0",
		[]string{"q3"},
		[]Transition{
			{From: "q0", Input: Epsilon, To: []string{"q1", "q2"}},
			{From: "q2", Input: Epsilon, To: []string{"q3"}},
			{From: "q3", Input: Epsilon, To: []string{"q0"}},
			{From: "q1", Input: "a", To: []string{"q1"}},
		},
	)
	assert.Nil(t, err)

	table := a.Closures()

	t.Run("reflexivity", func(t *testing.T) {
		for _, s := range a.States() {
			cl, err := table.Of(s)
			assert.Nil(t, err)
			assert.Contains(t, cl, s)
		}
	})

	t.Run("transitiveClosedness", func(t *testing.T) {
		for _, s := range a.States() {
			clS, err := table.Of(s)
			assert.Nil(t, err)
			for _, u := range clS {
				clU, err := table.Of(u)
				assert.Nil(t, err)
				assert.Subset(t, clS, clU)
			}
		}
	})

	t.Run("tableMatchesSingleStateClosure", func(t *testing.T) {
		for _, s := range a.States() {
			fromTable, err := table.Of(s)
			assert.Nil(t, err)
			direct, err := a.Closure(s)
			assert.Nil(t, err)
			assert.Equal(t, direct, fromTable)
		}
	})
}
