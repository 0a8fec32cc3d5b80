package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func answersFor(t *testing.T, x LVar, g Goal) []Term {
	t.Helper()
	st0 := State{Subst: EmptySubst(), NextID: x.ID() + 1}
	var got []Term
	for s := range ToSeq(g(st0)) {
		got = append(got, Walk(x, s.Subst))
	}
	return got
}

func TestDisjEnumeratesAllClauses(t *testing.T) {
	x := NewLVar(0)
	g := Disj(Eq(x, 1), Eq(x, 2), Eq(x, 3))
	assert.ElementsMatch(t, []Term{1, 2, 3}, answersFor(t, x, g))
}

func TestDisjSkipsFailingClauses(t *testing.T) {
	x := NewLVar(0)
	g := Disj(FailGoal(), Eq(x, 1), FailGoal())
	assert.Equal(t, []Term{1}, answersFor(t, x, g))
}

func TestConjRequiresAllClauses(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	g := Conj(Eq(x, 1), Eq(y, 2))
	st0 := State{Subst: EmptySubst(), NextID: 2}

	var got []Term
	for s := range ToSeq(g(st0)) {
		got = append(got, Seq{Walk(x, s.Subst), Walk(y, s.Subst)})
	}
	assert.Equal(t, []Term{Seq{1, 2}}, got)
}

func TestConjShortCircuitsOnFailure(t *testing.T) {
	x := NewLVar(0)
	g := Conj(Eq(x, 1), FailGoal())
	assert.Empty(t, answersFor(t, x, g))
}

func TestCondeEnumeratesEachClauseConjunctively(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	g := Conde(
		[]Goal{Eq(x, 1), Eq(y, "a")},
		[]Goal{Eq(x, 2), Eq(y, "b")},
	)
	st0 := State{Subst: EmptySubst(), NextID: 2}

	var got []Term
	for s := range ToSeq(g(st0)) {
		got = append(got, Seq{Walk(x, s.Subst), Walk(y, s.Subst)})
	}
	assert.ElementsMatch(t, []Term{Seq{1, "a"}, Seq{2, "b"}}, got)
}

func TestFreshIntroducesDistinctVariables(t *testing.T) {
	st0 := State{Subst: EmptySubst(), NextID: 0}
	var captured []LVar
	g := Fresh(2, func(vs []LVar) Goal {
		captured = vs
		return Conj(Eq(vs[0], 1), Eq(vs[1], 2))
	})

	m, ok := RealizeHead(g(st0)).(matureStream)
	if assert.True(t, ok) {
		require := assert.New(t)
		require.Len(captured, 2)
		require.NotEqual(captured[0].ID(), captured[1].ID())
		require.Equal(1, Walk(captured[0], m.head.Subst))
		require.Equal(2, Walk(captured[1], m.head.Subst))
	}
}
