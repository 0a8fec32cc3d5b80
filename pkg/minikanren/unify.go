package minikanren

// Unify performs syntactic equation-solving over two terms against a
// substitution, returning an extended substitution on success or ⊥ (nil)
// on failure. The algorithm, after walking both operands:
//
//  1. walk u and v to u' and v';
//  2. if u' and v' are Equal, succeed with s unchanged;
//  3. else if u' is an LVar, succeed by binding it to v';
//  4. else if v' is an LVar, succeed by binding it to u' (LVar-on-the-
//     left takes precedence when both sides are LVars: rule 3 fires
//     first);
//  5. else dispatch to the term-unifier for the shape of u' and v'.
//
// The only built-in term-unifier is for Seq (see unifySeq). Any other
// term kind that implements TermUnifier gets a chance to unify itself
// against the other operand; unrecognized shapes fail (return ⊥). Unify
// never raises an error for a failed unification — searching over many
// failing branches is the normal case, not an exceptional one — and it
// performs no occurs-check, so a binding that introduces a cycle is
// accepted without complaint (see Subst).
func Unify(u, v Term, s *Subst) *Subst {
	if s == nil {
		return nil
	}

	u = Walk(u, s)
	v = Walk(v, s)

	if Equal(u, v) {
		return s
	}
	if uv, ok := u.(LVar); ok {
		return Add(s, uv, v)
	}
	if vv, ok := v.(LVar); ok {
		return Add(s, vv, u)
	}
	return unifyTerms(u, v, s)
}

func unifyTerms(u, v Term, s *Subst) *Subst {
	if us, ok := u.(Seq); ok {
		if vs, ok := v.(Seq); ok {
			return unifySeq(us, vs, s)
		}
	}
	if ext, ok := u.(TermUnifier); ok {
		return ext.UnifyTerm(v, s)
	}
	if ext, ok := v.(TermUnifier); ok {
		return ext.UnifyTerm(u, s)
	}
	return nil
}

// unifySeq implements the pair/sequence term-unifier.
//
// If u has reached the two-element improper-tail shape [DOT, tail], tail
// unifies against the entirety of v (and symmetrically for v). Otherwise
// both sides must be non-empty sequences: unify their heads, then
// recurse on their tails. Two empty sequences unify trivially; a
// non-empty sequence never unifies with an empty one — this is treated
// as an explicit failure, not inferred from some other guard (see the
// open question in the design notes).
func unifySeq(u, v Seq, s *Subst) *Subst {
	if prefix, tail, ok := improperSplit(u); ok && len(prefix) == 0 {
		return Unify(tail, Term(v), s)
	}
	if prefix, tail, ok := improperSplit(v); ok && len(prefix) == 0 {
		return Unify(tail, Term(u), s)
	}
	if len(u) == 0 && len(v) == 0 {
		return s
	}
	if len(u) == 0 || len(v) == 0 {
		return nil
	}
	s = Unify(u[0], v[0], s)
	if s == nil {
		return nil
	}
	return unifySeq(u[1:], v[1:], s)
}
