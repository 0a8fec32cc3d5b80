package minikanren

// reifiedName is the canonical stand-in for a variable that is still
// unbound at the time an answer is reified. Its only job is to print as
// "_.k"; it carries no other behavior and is never unified against
// anything (reification happens after search has finished).
type reifiedName struct{ k int }

func (r reifiedName) String() string { return sprintReifiedName(r.k) }

// ReifyName returns the canonical stand-in term for the k-th unbound
// variable discovered during reification, printed as "_.k".
func ReifyName(k int) Term { return reifiedName{k: k} }

// DeepWalk is like Walk, but after walking the root it descends into a
// Seq and deep-walks each element. For a Seq that encodes an improper
// tail (see DOT), DeepWalk deep-walks the tail term and then either
// splices it into the result (if it resolved to a further proper Seq —
// the improper encoding was only ever a placeholder for an as-yet-
// unknown proper tail) or keeps the DOT marker in the output (if the
// tail is still, say, an unbound variable), so only genuinely improper
// results are ever displayed with a literal DOT in them.
func DeepWalk(t Term, s *Subst) Term {
	t = Walk(t, s)

	if seq, ok := t.(Seq); ok {
		if prefix, tail, improper := improperSplit(seq); improper {
			out := make(Seq, len(prefix), len(prefix)+1)
			for i, el := range prefix {
				out[i] = DeepWalk(el, s)
			}
			walkedTail := DeepWalk(tail, s)
			if tailSeq, ok := walkedTail.(Seq); ok {
				return append(out, tailSeq...)
			}
			return append(out, DOT, walkedTail)
		}

		out := make(Seq, len(seq))
		for i, el := range seq {
			out[i] = DeepWalk(el, s)
		}
		return out
	}

	if dw, ok := t.(DeepWalker); ok {
		return dw.DeepWalkTerm(s)
	}
	return t
}

// ReifyS builds the canonical variable-naming substitution for a term.
// Starting from s (the reify substitution being built — callers
// normally start from EmptySubst, not the main search substitution),
// ReifyS walks t; for every LVar it encounters that is still unbound in
// s, it extends s with a binding to ReifyName(s.Len()), then recurses
// into Seq elements. Because each new name is assigned using the size of
// the substitution being built (not the original search substitution),
// and because walking a later occurrence of an already-named variable
// resolves straight to its assigned name, the first unbound variable
// encountered in a left-to-right walk becomes _.0, the next _.1, and so
// on, deterministically.
func ReifyS(t Term, s *Subst) *Subst {
	t = Walk(t, s)
	switch tt := t.(type) {
	case LVar:
		return Add(s, tt, ReifyName(s.Len()))
	case Seq:
		for _, el := range tt {
			s = ReifyS(el, s)
		}
		return s
	default:
		return s
	}
}

// ReifyFirst is the standard answer projection used by the query
// runner: it deep-walks the conventional query variable (lvar 0, the
// first variable allocated by the outer Fresh/CallFresh) against the
// state's substitution, then deep-walks the result again against a
// freshly built naming substitution so every variable still unbound
// prints as _.0, _.1, … in discovery order.
func ReifyFirst(st State) Term {
	q := NewLVar(0)
	v := DeepWalk(q, st.Subst)
	named := ReifyS(v, EmptySubst())
	return DeepWalk(v, named)
}
