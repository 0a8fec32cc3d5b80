// Package minikanren implements the core of a relational (logic)
// programming engine in the miniKanren family: a small, embeddable
// evaluator that, given a goal built from unification and the logical
// connectives, enumerates all variable assignments ("substitutions")
// that make the goal true.
//
// The package is organized around four tightly coupled subsystems:
//
//   - Terms and logic variables (LVar, Seq) and the substitution map
//     that binds them (Subst, Walk).
//   - Unification over terms, extensible to new term shapes via the
//     TermUnifier interface (Unify).
//   - A lazy, interleaving result stream that implements fair search
//     over goals with infinite or divergent search spaces (Stream,
//     Merge, Bind, RealizeHead, ToSeq).
//   - Goals and their combinators: unification, fresh-variable
//     allocation, disjunction, conjunction (Eq, CallFresh, Disj, Conj),
//     plus reification of answers (DeepWalk, ReifyFirst) and the query
//     runner sugar (Run, RunStar, RunSeq).
//
// Everything in this package is immutable and side-effect free; a Goal
// is a pure function from a State to a Stream of States. There is no
// global state, no locking, and no I/O. The package intentionally omits
// an occurs-check during unification (see Unify) and does not provide
// constraint solving beyond syntactic unification — those are layered
// on top, outside this package, should a caller need them.
package minikanren
