package cel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ezachrisen/reportfilter"
	"github.com/pkg/errors"
)

// recordVar is the name of the CEL variable holding the record.
const recordVar = "r"

// dateLayout is the format of reportfilter.Date operands.
const dateLayout = "2006-01-02"

// translate converts an expression tree to CEL source.
func (e *Evaluator) translate(x reportfilter.Expr) (string, error) {
	if x == nil {
		return "true", nil
	}

	switch v := x.(type) {
	case *reportfilter.In:
		return e.translateIn(v)
	case *reportfilter.Compare:
		return e.translateCompare(v)
	case *reportfilter.IsNull:
		return fmt.Sprintf("!(%s)", e.present(v.Field)), nil
	case *reportfilter.Not:
		inner, err := e.translate(v.X)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("!(%s)", inner), nil
	case *reportfilter.Group:
		inner, err := e.translate(v.X)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	case *reportfilter.And:
		return e.translateJunction(v.Terms, " && ")
	case *reportfilter.Or:
		return e.translateJunction(v.Terms, " || ")
	case reportfilter.Raw:
		return "", errors.Wrapf(reportfilter.ErrUnsupportedNode, "host fragment %q", string(v))
	}
	return "", errors.Wrapf(reportfilter.ErrUnsupportedNode, "%T", x)
}

// translateJunction joins the non-empty terms. A junction without terms places
// no constraint, the same as its rendering in the host grammar.
func (e *Evaluator) translateJunction(terms []reportfilter.Expr, op string) (string, error) {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if reportfilter.Render(t) == "" {
			continue
		}
		s, err := e.translate(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "true", nil
	}
	return "(" + strings.Join(parts, op) + ")", nil
}

func (e *Evaluator) translateIn(v *reportfilter.In) (string, error) {
	values := v.Values
	if v.Param != "" {
		values = e.params[v.Param]
	}
	quoted := make([]string, len(values))
	for i, s := range values {
		quoted[i] = strconv.Quote(s)
	}
	return fmt.Sprintf("(%s && string(%s) in [%s])",
		e.present(v.Field), e.value(v.Field), strings.Join(quoted, ", ")), nil
}

func (e *Evaluator) translateCompare(v *reportfilter.Compare) (string, error) {
	op, err := celOperator(v.Op)
	if err != nil {
		return "", err
	}

	switch operand := v.Value.(type) {
	case reportfilter.String:
		return fmt.Sprintf("(%s && string(%s) %s %s)",
			e.present(v.Field), e.value(v.Field), op, strconv.Quote(string(operand))), nil
	case reportfilter.Date:
		t, err := time.Parse(dateLayout, string(operand))
		if err != nil {
			return "", errors.Wrapf(reportfilter.ErrInvalidArgument, "date %q: %v", string(operand), err)
		}
		return fmt.Sprintf("(%s && %s %s timestamp(%s))",
			e.present(v.Field), e.value(v.Field), op, strconv.Quote(t.UTC().Format(time.RFC3339))), nil
	}
	return "", errors.Wrapf(reportfilter.ErrUnsupportedNode, "operand %T", v.Value)
}

func celOperator(op string) (string, error) {
	switch op {
	case "=":
		return "==", nil
	case "!=", "<", "<=", ">", ">=":
		return op, nil
	}
	return "", errors.Wrapf(reportfilter.ErrUnsupportedNode, "operator %q", op)
}

// key is the record key of a field.
func (e *Evaluator) key(f reportfilter.Field) string {
	if e.qualified {
		return f.String()
	}
	return f.Name
}

// present tests that the record has a value for the field.
func (e *Evaluator) present(f reportfilter.Field) string {
	return fmt.Sprintf("%s in %s", strconv.Quote(e.key(f)), recordVar)
}

// value selects the field's value from the record.
func (e *Evaluator) value(f reportfilter.Field) string {
	return fmt.Sprintf("%s[%s]", recordVar, strconv.Quote(e.key(f)))
}
