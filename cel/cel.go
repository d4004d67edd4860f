package cel

import (
	"fmt"
	"time"

	"github.com/ezachrisen/reportfilter"
	celgo "github.com/google/cel-go/cel"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Record is a respondent record: answers keyed by question id.
type Record map[string]interface{}

// Evaluator compiles filter expressions to CEL programs.
type Evaluator struct {
	env       *celgo.Env
	params    map[string][]string
	qualified bool
}

// Option configures an Evaluator.
type Option func(e *Evaluator)

// ParameterValues supplies the selections that PValStrArr parameter references resolve to.
// Parameters not in the map have no selection.
func ParameterValues(p map[string][]string) Option {
	return func(e *Evaluator) {
		e.params = p
	}
}

// QualifiedFields keys records by the data source qualified field name ("ds:qid").
func QualifiedFields() Option {
	return func(e *Evaluator) {
		e.qualified = true
	}
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	env, err := celgo.NewEnv(
		celgo.Variable(recordVar, celgo.MapType(celgo.StringType, celgo.DynType)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating CEL environment")
	}

	e := Evaluator{
		env:    env,
		params: map[string][]string{},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return &e, nil
}

// Program is a compiled filter expression.
type Program struct {
	source  string
	program celgo.Program
}

// Translate returns the CEL source for the expression.
func (e *Evaluator) Translate(x reportfilter.Expr) (string, error) {
	return e.translate(x)
}

// Compile translates the expression, then parses, checks and plans the CEL program.
// A nil expression compiles to a program matching every record.
func (e *Evaluator) Compile(x reportfilter.Expr) (*Program, error) {
	src, err := e.translate(x)
	if err != nil {
		return nil, err
	}

	ast, iss := e.env.Compile(src)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compiling %q: %w", reportfilter.Render(x), iss.Err())
	}

	if !ast.OutputType().IsExactType(celgo.BoolType) {
		return nil, fmt.Errorf("compiling %q: expected bool result, got %s", reportfilter.Render(x), ast.OutputType())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("generating program for %q: %w", reportfilter.Render(x), err)
	}
	return &Program{source: src, program: prg}, nil
}

// Source returns the CEL source of the program.
func (p *Program) Source() string {
	return p.source
}

// Match reports whether the record satisfies the filter.
func (p *Program) Match(rec Record) (bool, error) {
	out, _, err := p.program.Eval(map[string]interface{}{recordVar: normalize(rec)})
	if err != nil {
		return false, fmt.Errorf("evaluating %s: %w", p.source, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %s: expected bool, got %T", p.source, out.Value())
	}
	return b, nil
}

// Filter returns the records matching the expression, in input order.
func (e *Evaluator) Filter(x reportfilter.Expr, records []Record) ([]Record, error) {
	p, err := e.Compile(x)
	if err != nil {
		return nil, err
	}

	matched := []Record{}
	for i, rec := range records {
		ok, err := p.Match(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if ok {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// normalize drops null answers and converts dates to protobuf timestamps,
// which CEL compares natively.
func normalize(rec Record) map[string]interface{} {
	out := make(map[string]interface{}, len(rec))
	for k, v := range rec {
		switch t := v.(type) {
		case nil:
			continue
		case time.Time:
			out[k] = timestamppb.New(t)
		case *time.Time:
			if t == nil {
				continue
			}
			out[k] = timestamppb.New(*t)
		default:
			out[k] = v
		}
	}
	return out
}
