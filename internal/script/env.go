package script

import (
	"fmt"

	"github.com/exclsr/micrologic/pkg/minikanren"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// relationDef is a named relation as written in a .kan file: a parameter
// list and a single body form built from the surface syntax's builtins.
type relationDef struct {
	name   string
	params []string
	body   node
}

// queryDef is a named top-level query: a body form evaluated with no
// parameters, in the same surface syntax as a relation body.
type queryDef struct {
	name string
	body node
}

// env is the compile-time environment threaded through compileGoal: the
// set of relations a relation call can resolve against, plus the logger.
// The current variable bindings are passed alongside it as a bindings
// value.
type env struct {
	relations map[string]*relationDef
	logger    hclog.Logger
}

// bindings maps surface-syntax variable names to the Term each one
// currently stands for. A fresh binding set is extended, never mutated,
// every time a (fresh ...) form or a relation call introduces new names,
// mirroring Subst's copy-on-write discipline in the core package.
type bindings map[string]minikanren.Term

func (b bindings) extend(name string, t minikanren.Term) bindings {
	next := make(bindings, len(b)+1)
	for k, v := range b {
		next[k] = v
	}
	next[name] = t
	return next
}

// compileGoal turns one body form into a minikanren.Goal under the given
// variable bindings. It recognizes a small, fixed set of builtins — ==,
// fresh, conde, conj/and, disj/or — and otherwise treats the head symbol
// as a relation name to resolve against e.relations.
func compileGoal(e *env, b bindings, n node) (minikanren.Goal, error) {
	list, ok := n.(listNode)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("expected a goal form, got %s", describe(n))
	}
	head, ok := list[0].(symbolNode)
	if !ok {
		return nil, fmt.Errorf("goal form must start with a symbol, got %s", describe(list[0]))
	}

	switch string(head) {
	case "==":
		if len(list) != 3 {
			return nil, fmt.Errorf("(== a b) takes exactly 2 arguments, got %d", len(list)-1)
		}
		lhs, err := evalTerm(b, list[1])
		if err != nil {
			return nil, err
		}
		rhs, err := evalTerm(b, list[2])
		if err != nil {
			return nil, err
		}
		return minikanren.Eq(lhs, rhs), nil

	case "fresh":
		if len(list) < 3 {
			return nil, fmt.Errorf("(fresh (vars...) body...) takes a variable list and at least one body form")
		}
		varList, ok := list[1].(listNode)
		if !ok {
			return nil, fmt.Errorf("(fresh ...)'s first argument must be a variable list, got %s", describe(list[1]))
		}
		names := make([]string, len(varList))
		for i, v := range varList {
			sym, ok := v.(symbolNode)
			if !ok {
				return nil, fmt.Errorf("fresh variable names must be symbols, got %s", describe(v))
			}
			names[i] = string(sym)
		}
		bodyForms := list[2:]
		probe := b
		for _, name := range names {
			probe = probe.extend(name, minikanren.NewLVar(0))
		}
		if _, err := compileEach(e, probe, bodyForms); err != nil {
			return nil, err
		}
		return minikanren.Fresh(len(names), func(vars []minikanren.LVar) minikanren.Goal {
			inner := b
			for i, name := range names {
				inner = inner.extend(name, vars[i])
			}
			return conjoinForms(e, inner, bodyForms)
		}), nil

	case "conde":
		clauses := make([][]minikanren.Goal, 0, len(list)-1)
		for _, clauseNode := range list[1:] {
			clauseList, ok := clauseNode.(listNode)
			if !ok {
				return nil, fmt.Errorf("each conde clause must be a list of goals, got %s", describe(clauseNode))
			}
			goals := make([]minikanren.Goal, 0, len(clauseList))
			for _, g := range clauseList {
				compiled, err := compileGoal(e, b, g)
				if err != nil {
					return nil, err
				}
				goals = append(goals, compiled)
			}
			clauses = append(clauses, goals)
		}
		return minikanren.Conde(clauses...), nil

	case "conj", "and":
		goals, err := compileEach(e, b, list[1:])
		if err != nil {
			return nil, err
		}
		return minikanren.Conj(goals...), nil

	case "disj", "or":
		goals, err := compileEach(e, b, list[1:])
		if err != nil {
			return nil, err
		}
		return minikanren.Disj(goals...), nil

	default:
		rel, ok := e.relations[string(head)]
		if !ok {
			return nil, fmt.Errorf("undefined relation %q", string(head))
		}
		args := list[1:]
		if len(args) != len(rel.params) {
			return nil, fmt.Errorf("relation %q takes %d argument(s), got %d", rel.name, len(rel.params), len(args))
		}
		argTerms := make([]minikanren.Term, len(args))
		for i, a := range args {
			t, err := evalTerm(b, a)
			if err != nil {
				return nil, err
			}
			argTerms[i] = t
		}
		return minikanren.Delay(func(st minikanren.State) minikanren.Stream {
			callBindings := make(bindings, len(rel.params))
			for i, p := range rel.params {
				callBindings[p] = argTerms[i]
			}
			g, err := compileGoal(e, callBindings, rel.body)
			if err != nil {
				// A relation body is validated at load time (see Load);
				// reaching here with an error means the environment was
				// constructed incorrectly, which is a programming error,
				// not a user-input error.
				panic(fmt.Sprintf("script: relation %q failed to recompile at call time: %v", rel.name, err))
			}
			return g(st)
		}), nil
	}
}

func compileEach(e *env, b bindings, forms []node) ([]minikanren.Goal, error) {
	goals := make([]minikanren.Goal, 0, len(forms))
	for _, f := range forms {
		g, err := compileGoal(e, b, f)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func conjoinForms(e *env, b bindings, forms []node) minikanren.Goal {
	goals, err := compileEach(e, b, forms)
	if err != nil {
		panic(fmt.Sprintf("script: body recompiled with a validation error: %v", err))
	}
	return minikanren.Conj(goals...)
}

// evalTerm evaluates a form in term position (an argument to == or to a
// relation call, rather than a goal itself): a bound variable name
// resolves to its Term, a number or string literal resolves to itself,
// and (list a b c) builds a proper Seq.
func evalTerm(b bindings, n node) (minikanren.Term, error) {
	switch tt := n.(type) {
	case numberNode:
		return float64(tt), nil
	case stringNode:
		return string(tt), nil
	case symbolNode:
		if t, ok := b[string(tt)]; ok {
			return t, nil
		}
		return string(tt), nil
	case listNode:
		if len(tt) == 0 {
			return minikanren.Seq{}, nil
		}
		if head, ok := tt[0].(symbolNode); ok && string(head) == "list" {
			rest := tt[1:]
			elems := make(minikanren.Seq, 0, len(rest))
			for i := 0; i < len(rest); i++ {
				if sym, ok := rest[i].(symbolNode); ok && string(sym) == "." {
					if i != len(rest)-2 {
						return nil, fmt.Errorf("'.' in (list ...) must be followed by exactly one tail term")
					}
					tail, err := evalTerm(b, rest[i+1])
					if err != nil {
						return nil, err
					}
					return append(elems, minikanren.DOT, tail), nil
				}
				v, err := evalTerm(b, rest[i])
				if err != nil {
					return nil, err
				}
				elems = append(elems, v)
			}
			return elems, nil
		}
		return nil, fmt.Errorf("unrecognized term form %s (expected a variable, literal, or (list ...))", describe(n))
	default:
		return nil, fmt.Errorf("unrecognized term form %s", describe(n))
	}
}

func describe(n node) string {
	switch n.(type) {
	case listNode:
		return "a list"
	case symbolNode:
		return fmt.Sprintf("symbol %q", n)
	case numberNode:
		return fmt.Sprintf("number %v", n)
	case stringNode:
		return fmt.Sprintf("string %q", n)
	default:
		return "an unknown form"
	}
}

// validate compiles every relation body and every query body once,
// purely to surface errors; the resulting Goals are discarded; real
// compilation happens lazily (and per-call, for relations) when a query
// actually runs, via compileGoal.
func validate(e *env, queries map[string]*queryDef) error {
	var errs *multierror.Error
	for name, rel := range e.relations {
		b := make(bindings, len(rel.params))
		for _, p := range rel.params {
			b[p] = minikanren.NewLVar(0)
		}
		if _, err := compileGoal(e, b, rel.body); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("relation %q: %w", name, err))
		}
	}
	for name, q := range queries {
		if _, err := compileGoal(e, bindings{queryVar: minikanren.NewLVar(0)}, q.body); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("query %q: %w", name, err))
		}
	}
	if errs != nil {
		e.logger.Debug("script validation failed", "error_count", errs.Len())
	}
	return errs.ErrorOrNil()
}
