// Package script loads .kan files — named relation and query
// definitions written in a small S-expression surface syntax — and
// compiles them into pkg/minikanren Goal values. It is the one concrete
// front-end exercising the core package's sugar contract end to end;
// cmd/kanrun is built on top of it.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/exclsr/micrologic/pkg/minikanren"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Program is a loaded .kan file: its relation definitions, ready to be
// called by name, and its named queries.
type Program struct {
	env     *env
	queries map[string]*queryDef
}

// Load reads and compiles a .kan file from path. Every relation and
// query body in the file is validated once (undefined relations, wrong
// arities, malformed forms); if more than one form is broken, Load
// reports all of them together via a *multierror.Error rather than
// stopping at the first, the same way the rest of this project's
// boundary layer aggregates validation errors. A nil logger is replaced
// with hclog's no-op logger.
func Load(path string, logger hclog.Logger) (*Program, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: opening %s: %w", path, err)
	}
	defer f.Close()

	return parse(path, f, logger)
}

func parse(name string, src io.Reader, logger hclog.Logger) (*Program, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("script: reading %s: %w", name, err)
	}

	forms, err := newReader(name, data).readAll()
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	e := &env{relations: map[string]*relationDef{}, logger: logger.Named("script")}
	queries := map[string]*queryDef{}

	var errs *multierror.Error
	for _, f := range forms {
		list, ok := f.(listNode)
		if !ok || len(list) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("top-level form must be a list, got %s", describe(f)))
			continue
		}
		head, ok := list[0].(symbolNode)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("top-level form must start with a symbol, got %s", describe(list[0])))
			continue
		}

		switch string(head) {
		case "relation":
			def, err := parseRelation(list)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if _, dup := e.relations[def.name]; dup {
				errs = multierror.Append(errs, fmt.Errorf("relation %q defined more than once", def.name))
				continue
			}
			e.relations[def.name] = def
		case "query":
			def, err := parseQuery(list)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if _, dup := queries[def.name]; dup {
				errs = multierror.Append(errs, fmt.Errorf("query %q defined more than once", def.name))
				continue
			}
			queries[def.name] = def
		default:
			errs = multierror.Append(errs, fmt.Errorf("unrecognized top-level form %q", string(head)))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	if err := validate(e, queries); err != nil {
		return nil, err
	}

	e.logger.Debug("loaded script", "relations", len(e.relations), "queries", len(queries))
	return &Program{env: e, queries: queries}, nil
}

func parseRelation(list listNode) (*relationDef, error) {
	if len(list) != 4 {
		return nil, fmt.Errorf("(relation name (params...) body) takes exactly 3 arguments, got %d", len(list)-1)
	}
	name, ok := list[1].(symbolNode)
	if !ok {
		return nil, fmt.Errorf("relation name must be a symbol, got %s", describe(list[1]))
	}
	paramList, ok := list[2].(listNode)
	if !ok {
		return nil, fmt.Errorf("relation %q's parameter list must be a list, got %s", string(name), describe(list[2]))
	}
	params := make([]string, len(paramList))
	for i, p := range paramList {
		sym, ok := p.(symbolNode)
		if !ok {
			return nil, fmt.Errorf("relation %q's parameters must be symbols, got %s", string(name), describe(p))
		}
		params[i] = string(sym)
	}
	return &relationDef{name: string(name), params: params, body: list[3]}, nil
}

func parseQuery(list listNode) (*queryDef, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("(query name body) takes exactly 2 arguments, got %d", len(list)-1)
	}
	name, ok := list[1].(symbolNode)
	if !ok {
		return nil, fmt.Errorf("query name must be a symbol, got %s", describe(list[1]))
	}
	return &queryDef{name: string(name), body: list[2]}, nil
}

// Names returns the defined query names, in no particular order.
func (p *Program) Names() []string {
	names := make([]string, 0, len(p.queries))
	for n := range p.queries {
		names = append(names, n)
	}
	return names
}

// queryVar is the reserved name a .kan query body uses to refer to its
// own query variable — the term that RunQuery's caller sees reified back
// in each answer, exactly as lvar 0 is the conventional query variable
// for minikanren.Run/RunStar/RunSeq's f func(LVar) Goal callback.
const queryVar = "q"

// Goal builds the func(LVar) Goal callback the core package's
// Run/RunStar/RunSeq family expects, with the query's reserved "q"
// variable bound to the LVar that callback receives. It returns an error
// if the query is not defined; the body itself was already validated at
// Load time, so compiling it here is not expected to fail.
func (p *Program) Goal(name string) (func(minikanren.LVar) minikanren.Goal, error) {
	q, ok := p.queries[name]
	if !ok {
		return nil, fmt.Errorf("script: no query named %q", name)
	}
	return func(qv minikanren.LVar) minikanren.Goal {
		g, err := compileGoal(p.env, bindings{queryVar: qv}, q.body)
		if err != nil {
			panic(fmt.Sprintf("script: query %q failed to recompile at run time: %v", name, err))
		}
		return g
	}, nil
}

// RunQuery runs the named query and returns at most n reified answers
// (n <= 0 means unbounded — the caller is responsible for the query
// actually terminating). onForce, if non-nil, is invoked once per
// stream suspension forced, the same tracing hook RunSeqTraced exposes;
// cmd/kanrun wires this to an hclog.Logger's Trace level.
func (p *Program) RunQuery(name string, n int, onForce func()) ([]minikanren.Term, error) {
	goalFn, err := p.Goal(name)
	if err != nil {
		return nil, err
	}

	var out []minikanren.Term
	for t := range minikanren.RunSeqTraced(goalFn, onForce) {
		out = append(out, t)
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out, nil
}
