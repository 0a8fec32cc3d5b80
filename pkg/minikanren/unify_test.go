package minikanren

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyAtoms(t *testing.T) {
	s := Unify(5, 5, EmptySubst())
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())

	assert.Nil(t, Unify(5, 6, EmptySubst()))
}

func TestUnifyBindsLVar(t *testing.T) {
	x := NewLVar(0)
	s := Unify(x, 42, EmptySubst())
	require.NotNil(t, s)
	assert.Equal(t, 42, Walk(x, s))
}

func TestUnifyLVarOnLeftTakesPrecedence(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	s := Unify(x, y, EmptySubst())
	require.NotNil(t, s)
	// x should be bound to y (rule 3 fires before rule 4).
	v, ok := s.lookup(x)
	require.True(t, ok)
	assert.Equal(t, y, v)
	_, ok = s.lookup(y)
	assert.False(t, ok)
}

func TestUnifyOnNilSubstFails(t *testing.T) {
	assert.Nil(t, Unify(1, 1, nil))
}

func TestUnifyPropagatesFailure(t *testing.T) {
	x := NewLVar(0)
	s := Unify(x, 1, EmptySubst())
	require.NotNil(t, s)
	s = Unify(x, 2, s) // x is already 1, contradiction
	assert.Nil(t, s)
}

func TestUnifySequencesProperLists(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	s := Unify(Seq{x, y, 3}, Seq{1, 2, 3}, EmptySubst())
	require.NotNil(t, s)
	assert.Equal(t, 1, Walk(x, s))
	assert.Equal(t, 2, Walk(y, s))
}

func TestUnifyEmptySeqVsEmptySeq(t *testing.T) {
	s := Unify(Seq{}, Seq{}, EmptySubst())
	assert.NotNil(t, s)
}

func TestUnifyEmptySeqVsNonEmptyFails(t *testing.T) {
	assert.Nil(t, Unify(Seq{}, Seq{1}, EmptySubst()))
	assert.Nil(t, Unify(Seq{1}, Seq{}, EmptySubst()))
}

func TestUnifySeqVsAtomFails(t *testing.T) {
	assert.Nil(t, Unify(Seq{1}, 1, EmptySubst()))
}

func TestUnifyImproperTailBindsRemainder(t *testing.T) {
	tail := NewLVar(0)
	s := Unify(Seq{1, 2, DOT, tail}, Seq{1, 2, 3, 4}, EmptySubst())
	require.NotNil(t, s)

	got := DeepWalk(tail, s)
	want := Seq{3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tail mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifyImproperTailBothSides(t *testing.T) {
	a, b := NewLVar(0), NewLVar(1)
	s := Unify(Seq{DOT, a}, Seq{1, 2, DOT, b}, EmptySubst())
	require.NotNil(t, s)
	// a is bound to the whole right-hand improper sequence.
	got := Walk(a, s)
	assert.Equal(t, Seq{1, 2, DOT, b}, got)
}

func TestUnifySymmetryUpToBindingSide(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	s1 := Unify(x, y, EmptySubst())
	s2 := Unify(y, x, EmptySubst())
	require.NotNil(t, s1)
	require.NotNil(t, s2)

	// Whichever side got bound, both eventually walk to the same atom
	// once the free variable is further constrained.
	s1 = Unify(y, "shared", s1)
	s2 = Unify(x, "shared", s2)
	require.NotNil(t, s1)
	require.NotNil(t, s2)
	assert.Equal(t, Walk(x, s1), Walk(x, s2))
	assert.Equal(t, Walk(y, s1), Walk(y, s2))
}

func TestUnifyMonotonicityPreservesExistingBindings(t *testing.T) {
	x, y := NewLVar(0), NewLVar(1)
	s := Unify(x, 1, EmptySubst())
	require.NotNil(t, s)
	before := Walk(x, s)

	s2 := Unify(y, 2, s)
	require.NotNil(t, s2)
	assert.Equal(t, before, Walk(x, s2))
}

// customPair is a minimal TermUnifier extension used to verify the open
// dispatch hook without modifying the core unifier.
type customPair struct{ a, b Term }

func (c customPair) UnifyTerm(other Term, s *Subst) *Subst {
	o, ok := other.(customPair)
	if !ok {
		return nil
	}
	s = Unify(c.a, o.a, s)
	if s == nil {
		return nil
	}
	return Unify(c.b, o.b, s)
}

func TestUnifyExtensionTermUnifier(t *testing.T) {
	x := NewLVar(0)
	s := Unify(customPair{a: x, b: 2}, customPair{a: 1, b: 2}, EmptySubst())
	require.NotNil(t, s)
	assert.Equal(t, 1, Walk(x, s))

	assert.Nil(t, Unify(customPair{a: 1, b: 2}, customPair{a: 1, b: 3}, EmptySubst()))
}

func TestUnifyUnrecognizedShapeFails(t *testing.T) {
	assert.Nil(t, Unify(customPair{a: 1, b: 2}, 5, EmptySubst()))
}
