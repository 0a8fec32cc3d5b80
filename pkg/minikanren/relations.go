package minikanren

// This file collects the standard teaching relations every miniKanren
// implementation in the surveyed corpus ships alongside its core
// (gitrdm/gokanlogic's list_ops.go is the closest analogue) — built
// purely from Eq, CallFresh/Fresh, Disj, Conj, and Delay, with no
// special support from the core itself. They exist to give the four
// core subsystems something worth running, and §8's appendo scenario
// needs Appendo to exist somewhere.

// Appendo relates three sequences such that appending a and b yields c.
// It is defined recursively, the canonical miniKanren example of a
// relation that runs equally well forwards (a and b known, c derived),
// backwards (c known, enumerate all splits into a and b), or in between
// — which is exactly what makes it a good demonstration of the search
// engine rather than of some particular mode of use.
//
// Every recursive call is wrapped in Delay (via Conde, which itself
// folds through Disj/Conj) so that an open-ended search over Appendo
// participates in the fairness schedule instead of recursing directly.
func Appendo(a, b, c Term) Goal {
	return Conde(
		[]Goal{Eq(a, Seq{}), Eq(b, c)},
		[]Goal{Fresh(3, func(vs []LVar) Goal {
			head, aRest, cRest := vs[0], vs[1], vs[2]
			return Conj(
				Eq(a, Seq{head, DOT, aRest}),
				Eq(c, Seq{head, DOT, cRest}),
				Appendo(aRest, b, cRest),
			)
		})},
	)
}

// Membero relates an element x to a sequence xs such that x occurs
// somewhere in xs. Like Appendo it runs in any direction: with xs bound
// it enumerates the members of xs; with x bound and xs open it
// enumerates every sequence containing x.
func Membero(x, xs Term) Goal {
	return Conde(
		[]Goal{Fresh(1, func(vs []LVar) Goal {
			rest := vs[0]
			return Eq(xs, Seq{x, DOT, rest})
		})},
		[]Goal{Fresh(2, func(vs []LVar) Goal {
			head, rest := vs[0], vs[1]
			return Conj(
				Eq(xs, Seq{head, DOT, rest}),
				Membero(x, rest),
			)
		})},
	)
}

// Reverseo relates two sequences such that ys is xs reversed. It is
// defined in terms of Appendo, the same way the textbook relational
// definition builds reverse from append. Both sequences are first
// constrained to the same length, so the search is finite whenever
// either of them is a proper list.
func Reverseo(xs, ys Term) Goal {
	var sameLength func(a, b Term) Goal
	sameLength = func(a, b Term) Goal {
		return Conde(
			[]Goal{Eq(a, Seq{}), Eq(b, Seq{})},
			[]Goal{Fresh(4, func(vs []LVar) Goal {
				return Conj(Eq(a, Seq{vs[0], DOT, vs[1]}), Eq(b, Seq{vs[2], DOT, vs[3]}), sameLength(vs[1], vs[3]))
			})},
		)
	}
	return Conj(sameLength(xs, ys), Conde(
		[]Goal{Eq(xs, Seq{}), Eq(ys, Seq{})},
		[]Goal{Fresh(3, func(vs []LVar) Goal {
			head, xsRest, ysRest := vs[0], vs[1], vs[2]
			return Conj(
				Eq(xs, Seq{head, DOT, xsRest}),
				Reverseo(xsRest, ysRest),
				Appendo(ysRest, Seq{head}, ys),
			)
		})},
	))
}

// Permuteo relates two sequences such that ys is some permutation of
// xs. It is defined by repeated selection: pick one element out of xs
// (via Membero-style removal) and recurse on what remains.
func Permuteo(xs, ys Term) Goal {
	return Conde(
		[]Goal{Eq(xs, Seq{}), Eq(ys, Seq{})},
		[]Goal{Fresh(3, func(vs []LVar) Goal {
			head, ysRest, xsRest := vs[0], vs[1], vs[2]
			return Conj(
				Eq(ys, Seq{head, DOT, ysRest}),
				removeFirsto(head, xs, xsRest),
				Permuteo(xsRest, ysRest),
			)
		})},
	)
}

// removeFirsto relates x, xs, and rest such that rest is xs with exactly
// one occurrence of x removed. It backs Permuteo's element selection.
func removeFirsto(x, xs, rest Term) Goal {
	return Conde(
		[]Goal{Fresh(1, func(vs []LVar) Goal {
			xsRest := vs[0]
			return Conj(
				Eq(xs, Seq{x, DOT, xsRest}),
				Eq(rest, xsRest),
			)
		})},
		[]Goal{Fresh(3, func(vs []LVar) Goal {
			head, xsRest, restRest := vs[0], vs[1], vs[2]
			return Conj(
				Eq(xs, Seq{head, DOT, xsRest}),
				Eq(rest, Seq{head, DOT, restRest}),
				removeFirsto(x, xsRest, restRest),
			)
		})},
	)
}
