package minikanren

// Term is any value in the relational universe. A Term is one of:
//
//   - an LVar, a logic variable standing for an as-yet-unknown term;
//   - a Seq, a finite ordered sequence of terms, optionally "improper"
//     (see DOT);
//   - any other Go value, treated as an atom and compared by ordinary
//     Go equality (or by a custom EqualTerm implementation).
//
// Term carries no methods of its own; it exists purely as documentation
// for the "any" values this package passes around.
type Term = any

// LVar is a logic variable identified by a non-negative integer id. Two
// LVars are equal iff their ids match. LVars are created by CallFresh
// (and the Fresh sugar built on top of it); callers should not normally
// construct one directly, except lvar 0, which by convention is the
// query variable reified by ReifyFirst.
type LVar struct {
	id int
}

// NewLVar constructs a logic variable with the given id. Most callers
// never need this directly — CallFresh allocates ids from State.NextID
// — but it is exported so extension term kinds and tests can build LVars
// explicitly.
func NewLVar(id int) LVar { return LVar{id: id} }

// ID returns the variable's integer identifier.
func (v LVar) ID() int { return v.id }

// String renders the variable in the stable, implementation-specific
// form described by the external interface: "<lvar id>".
func (v LVar) String() string { return sprintLVar(v.id) }

// IsLVar reports whether t is a logic variable.
func IsLVar(t Term) bool {
	_, ok := t.(LVar)
	return ok
}

// Seq is the sequence term shape: a finite ordered list of terms, used
// to build lists and other compound structures. A Seq is "improper" when
// its second-to-last element is DOT, in which case the final element
// stands for the remainder of the sequence — an as-yet-unknown tail,
// typically an LVar. See Unify and DeepWalk for how the encoding is
// interpreted.
type Seq []Term

type dotMarker struct{}

func (dotMarker) String() string { return "." }

// DOT is the sentinel marking an improper-tail position inside a Seq.
// A Seq [a, b, DOT, v] denotes the sequence whose first two elements are
// a and b, and whose remaining tail is the term v. This is purely an
// encoding trick (see §3 of the design notes) to avoid requiring native
// improper-list support.
var DOT Term = dotMarker{}

// improperSplit reports whether seq encodes an improper tail — i.e. its
// second-to-last element is DOT — and if so returns the proper prefix
// and the tail term.
func improperSplit(seq Seq) (prefix Seq, tail Term, ok bool) {
	if len(seq) >= 2 {
		if _, isDot := seq[len(seq)-2].(dotMarker); isDot {
			return seq[:len(seq)-2], seq[len(seq)-1], true
		}
	}
	return nil, nil, false
}

// TermUnifier lets a custom term kind participate in Unify without
// modifying the core dispatch. The default dispatch only calls UnifyTerm
// after walking both operands and ruling out the Equal, LVar, and Seq
// cases, so an implementation need only handle unification against
// terms of shapes it understands (and should return ⊥, i.e. nil, for
// anything else).
type TermUnifier interface {
	UnifyTerm(other Term, s *Subst) *Subst
}

// DeepWalker lets an extension term kind customize how DeepWalk
// recurses into it — for example, a struct with several term-valued
// fields that should each be walked.
type DeepWalker interface {
	DeepWalkTerm(s *Subst) Term
}

type equalTermer interface {
	EqualTerm(other Term) bool
}

// Equal reports whether u and v are structurally equal: for LVars this
// compares ids; for sequences this compares elementwise; for anything
// implementing EqualTerm that method is used; otherwise Go's built-in
// equality is used, treating incomparable values as unequal rather than
// panicking.
func Equal(u, v Term) bool {
	if uv, ok := u.(LVar); ok {
		vv, ok2 := v.(LVar)
		return ok2 && uv.id == vv.id
	}
	if _, ok := v.(LVar); ok {
		return false
	}

	if us, ok := u.(Seq); ok {
		vs, ok2 := v.(Seq)
		if !ok2 || len(us) != len(vs) {
			return false
		}
		for i := range us {
			if !Equal(us[i], vs[i]) {
				return false
			}
		}
		return true
	}
	if _, ok := v.(Seq); ok {
		return false
	}

	if ue, ok := u.(equalTermer); ok {
		return ue.EqualTerm(v)
	}
	if ve, ok := v.(equalTermer); ok {
		return ve.EqualTerm(u)
	}
	return comparableEqual(u, v)
}

// comparableEqual compares two atoms with Go's == operator, treating
// operands whose dynamic type is not comparable (e.g. a bare slice or
// map used as an atom) as unequal rather than panicking.
func comparableEqual(u, v Term) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return u == v
}
