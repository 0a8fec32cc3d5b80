package minikanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLVarEquality(t *testing.T) {
	v1 := NewLVar(1)
	v2 := NewLVar(1)
	v3 := NewLVar(2)

	assert.True(t, Equal(v1, v2), "LVars with the same id must be equal")
	assert.False(t, Equal(v1, v3), "LVars with different ids must not be equal")
	assert.True(t, IsLVar(v1))
	assert.False(t, IsLVar("atom"))
}

func TestLVarString(t *testing.T) {
	assert.Equal(t, "<lvar 7>", NewLVar(7).String())
}

func TestEqualAtoms(t *testing.T) {
	assert.True(t, Equal(5, 5))
	assert.False(t, Equal(5, 6))
	assert.True(t, Equal("x", "x"))
	assert.False(t, Equal("x", 5))
}

func TestEqualSequences(t *testing.T) {
	a := Seq{1, 2, 3}
	b := Seq{1, 2, 3}
	c := Seq{1, 2}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, "not a seq"))
}

func TestEqualIncomparableAtomsDoesNotPanic(t *testing.T) {
	a := []int{1, 2}
	b := []int{1, 2}
	assert.NotPanics(t, func() {
		assert.False(t, Equal(a, b))
	})
}

type customTerm struct{ tag string }

func (c customTerm) EqualTerm(other Term) bool {
	o, ok := other.(customTerm)
	return ok && o.tag == c.tag
}

func TestEqualCustomEqualTermer(t *testing.T) {
	assert.True(t, Equal(customTerm{"a"}, customTerm{"a"}))
	assert.False(t, Equal(customTerm{"a"}, customTerm{"b"}))
}

func TestDotMarkerString(t *testing.T) {
	assert.Equal(t, ".", DOT.(interface{ String() string }).String())
}
