package minikanren

// Goal is a pure function from a State to a Stream of successor States.
// A Goal is a relation: given an input world, it yields zero or more
// refined worlds. Goals are values — they close over the terms and
// sub-goals that define them, and can be stored, passed around, and
// applied repeatedly without side effects.
type Goal func(State) Stream

// Eq is the unification goal, written ≡ in the design notes. On a State
// st it attempts to unify u and v against st.Subst; on success it
// returns the single-answer stream containing st with the unified
// substitution, on failure it returns Empty.
func Eq(u, v Term) Goal {
	return func(st State) Stream {
		s2 := Unify(u, v, st.Subst)
		if s2 == nil {
			return Empty()
		}
		return Unit(State{Subst: s2, NextID: st.NextID})
	}
}

// CallFresh allocates one fresh logic variable and passes it to f to
// produce the goal that runs against the incremented state. The new
// variable's id is st.NextID; the goal f(v) then runs against a state
// whose NextID has been bumped by one, so nested CallFresh calls never
// collide on variable ids.
func CallFresh(f func(LVar) Goal) Goal {
	return func(st State) Stream {
		v := NewLVar(st.NextID)
		g := f(v)
		return g(State{Subst: st.Subst, NextID: st.NextID + 1})
	}
}

// Succeed is the goal that always succeeds, returning the input state
// unchanged. It is the identity element for Conj (conj(g, succeed) is
// equivalent to g).
func Succeed() Goal {
	return func(st State) Stream { return Unit(st) }
}

// FailGoal is the goal that never succeeds. It is the identity element
// for Disj (disj(g, fail) is equivalent to g).
func FailGoal() Goal {
	return func(State) Stream { return Empty() }
}

// Delay wraps a goal so that applying it to a state does not evaluate
// the goal immediately but instead returns a suspended (Immature)
// stream node. This converts what would otherwise be unbounded direct
// recursion — the usual shape of a recursively defined relation — into
// a stream node that participates in Merge/Bind's fairness schedule
// instead of running the goal to completion (or diverging) before
// Merge ever gets a chance to interleave something else in.
func Delay(g Goal) Goal {
	return func(st State) Stream {
		return Suspend(func() Stream { return g(st) })
	}
}
