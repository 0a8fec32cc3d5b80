package minikanren

// Subst is a finite, triangular mapping from logic variables to terms.
// "Triangular" means a bound value may itself mention other LVars that
// are bound elsewhere in the same substitution; resolving a variable to
// its final value is Walk's job, not Subst's.
//
// A nil *Subst is the distinguished failure value ⊥: once a step yields
// no substitution, every downstream Add and Unify call also yields nil,
// so failure propagates monotonically without any explicit error
// checking at call sites. Subst is purely functional — Add never
// mutates its receiver, so a Subst value remains valid for as long as
// anything holds a reference to it.
//
// No occurs-check is performed. A self-referential binding v -> f(v) is
// permitted; Walk will diverge if it is ever followed. This is
// deliberate (see the package doc) and must not be "fixed" by adding a
// transparent cycle detector.
type Subst struct {
	bindings map[int]Term
}

// EmptySubst returns a substitution with no bindings.
func EmptySubst() *Subst {
	return &Subst{bindings: map[int]Term{}}
}

// Len reports the number of bindings held directly in s. A nil receiver
// (⊥) has length 0.
func (s *Subst) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

func (s *Subst) lookup(v LVar) (Term, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.bindings[v.id]
	return t, ok
}

// Add extends s with a binding v -> t, returning a new substitution. If
// s is ⊥ (nil), Add returns ⊥ unchanged — this is what lets unification
// fail monotonically: once unification has failed, every subsequent Add
// it performs is a no-op that preserves the failure. Add does not check
// v for consistency with existing bindings; the unifier is responsible
// for only calling Add once it has decided the binding is sound.
func Add(s *Subst, v LVar, t Term) *Subst {
	if s == nil {
		return nil
	}
	next := make(map[int]Term, len(s.bindings)+1)
	for k, val := range s.bindings {
		next[k] = val
	}
	next[v.id] = t
	return &Subst{bindings: next}
}

// Walk resolves a term to its current binding by following LVar chains
// at the root. If t is an LVar bound in s, Walk follows the binding
// recursively; any other term — including an unbound LVar, an atom, or
// a Seq — walks to itself. Walk does not descend into the elements of a
// Seq; that is DeepWalk's job.
//
// Walk can fail to terminate if s contains a cycle reachable from t;
// this is accepted behavior (see Subst and the package doc), not a bug.
func Walk(t Term, s *Subst) Term {
	for {
		v, ok := t.(LVar)
		if !ok {
			return t
		}
		bound, found := s.lookup(v)
		if !found {
			return t
		}
		t = bound
	}
}

// State is the search state threaded through goal evaluation: a
// substitution plus the id of the next LVar that CallFresh would
// allocate. States are immutable; goals derive new states from old ones
// rather than mutating them in place.
type State struct {
	Subst  *Subst
	NextID int
}

// EmptyState returns a state with no bindings in which the next fresh
// variable allocated will be lvar 0 (the conventional query variable).
// RunSeq does not start from it: it creates lvar 0 itself and starts
// from a state with no bindings and NextID 1.
func EmptyState() State {
	return State{Subst: EmptySubst(), NextID: 0}
}
