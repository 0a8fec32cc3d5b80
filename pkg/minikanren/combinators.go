package minikanren

// disj2 is the binary logical-or combinator described in the design
// notes: on a state st it merges the streams produced by g1 and g2.
func disj2(g1, g2 Goal) Goal {
	return func(st State) Stream { return Merge(g1(st), g2(st)) }
}

// conj2 is the binary logical-and combinator: on a state st it binds
// the stream produced by g1 to g2.
func conj2(g1, g2 Goal) Goal {
	return func(st State) Stream { return Bind(g1(st), g2) }
}

// Disj is the n-ary disjunction sugar. Every operand is wrapped in Delay
// before being folded pairwise with disj2, right-to-left, so that any
// clause — including one defined recursively in terms of the goal being
// built — can appear without special care from the caller. Disj() with
// no operands is FailGoal, the identity element for disjunction.
func Disj(goals ...Goal) Goal {
	if len(goals) == 0 {
		return FailGoal()
	}
	result := Delay(goals[len(goals)-1])
	for i := len(goals) - 2; i >= 0; i-- {
		result = disj2(Delay(goals[i]), result)
	}
	return result
}

// Conj is the n-ary conjunction sugar, folded the same way as Disj.
// Conj() with no operands is Succeed, the identity element for
// conjunction.
func Conj(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed()
	}
	result := Delay(goals[len(goals)-1])
	for i := len(goals) - 2; i >= 0; i-- {
		result = conj2(Delay(goals[i]), result)
	}
	return result
}

// Conde is the disjunction-of-conjunctions convenience form: each clause
// is a slice of goals conjoined with Conj, and the clauses are then
// combined with Disj. It is the direct analogue of miniKanren's conde:
// Conde([]Goal{a, b}, []Goal{c}) reads as "(a and b) or c".
func Conde(clauses ...[]Goal) Goal {
	goals := make([]Goal, len(clauses))
	for i, c := range clauses {
		goals[i] = Conj(c...)
	}
	return Disj(goals...)
}

// Fresh allocates n fresh logic variables and passes them as a slice to
// f, which builds the goal that uses them. It is sugar over nested
// CallFresh calls — the "fresh(vars…, goals…)" form from the sugar
// contract — letting callers write Fresh(2, func(xs []LVar) Goal {...})
// instead of nesting CallFresh by hand.
func Fresh(n int, f func(vars []LVar) Goal) Goal {
	return freshN(n, nil, f)
}

func freshN(n int, acc []LVar, f func(vars []LVar) Goal) Goal {
	if n == 0 {
		return f(acc)
	}
	return CallFresh(func(v LVar) Goal {
		return freshN(n-1, append(acc, v), f)
	})
}
