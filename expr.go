package reportfilter

import (
	"strings"
)

// Expr is a node of a filter expression tree.
// Trees are immutable once built; Render turns a tree into the host grammar.
type Expr interface {
	// exprNode is a marker method to distinguish expression nodes.
	exprNode()
	// String returns the expression in the host grammar.
	String() string
}

// Field references a question (or other record field), optionally qualified by a data source.
type Field struct {
	Source string
	Name   string
}

func (f Field) String() string {
	if f.Source == "" {
		return f.Name
	}
	return f.Source + ":" + f.Name
}

// Operand is the right-hand side of a comparison.
type Operand interface {
	operand()
	String() string
}

// String is a string literal operand.
type String string

// Date is a date operand in ISO format; it renders as TODATE("...").
type Date string

func (String) operand() {}
func (Date) operand()   {}

func (s String) String() string { return quote(string(s)) }
func (d Date) String() string   { return "TODATE(" + quote(string(d)) + ")" }

// In matches records whose field holds one of the values. If Param is set, the values are
// the current selections of that parameter, resolved by the host at query time.
type In struct {
	Field  Field
	Values []string
	Param  string
}

// Compare compares a field with an operand. Op is one of = != < <= > >=.
type Compare struct {
	Field Field
	Op    string
	Value Operand
}

// IsNull matches records with no value for the field.
type IsNull struct {
	Field Field
}

// Not negates an expression.
type Not struct {
	X Expr
}

// And matches when all terms match.
type And struct {
	Terms []Expr
}

// Or matches when any term matches.
type Or struct {
	Terms []Expr
}

// Group wraps an expression in parentheses.
type Group struct {
	X Expr
}

// Raw is an expression fragment produced by the host, such as a hierarchy filter.
// It is rendered as-is.
type Raw string

func (*In) exprNode()      {}
func (*Compare) exprNode() {}
func (*IsNull) exprNode()  {}
func (*Not) exprNode()     {}
func (*And) exprNode()     {}
func (*Or) exprNode()      {}
func (*Group) exprNode()   {}
func (Raw) exprNode()      {}

func (e *In) String() string {
	if e.Param != "" {
		return "IN(" + e.Field.String() + ", PValStrArr(" + quote(e.Param) + "))"
	}
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = quote(v)
	}
	return "IN(" + e.Field.String() + ", " + strings.Join(quoted, ",") + ")"
}

func (e *Compare) String() string {
	return e.Field.String() + " " + e.Op + " " + e.Value.String()
}

func (e *IsNull) String() string {
	return "ISNULL(" + e.Field.String() + ")"
}

func (e *Not) String() string {
	switch e.X.(type) {
	case *And, *Or:
		return "NOT (" + e.X.String() + ")"
	}
	return "NOT " + e.X.String()
}

// String joins the terms with AND. OR terms are parenthesised so that the
// host's precedence (AND binds tighter) doesn't change their meaning.
func (e *And) String() string {
	parts := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		s := t.String()
		if s == "" {
			continue
		}
		if _, ok := t.(*Or); ok {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " AND ")
}

func (e *Or) String() string {
	parts := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		if s := t.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " OR ")
}

func (e *Group) String() string {
	return "(" + e.X.String() + ")"
}

func (e Raw) String() string { return string(e) }

// AndOf combines the terms with AND, dropping nil and empty terms.
// It returns nil if no term is left and the term itself if only one is left.
func AndOf(terms ...Expr) Expr {
	kept := compact(terms)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &And{Terms: kept}
}

// OrOf combines the terms with OR, dropping nil and empty terms.
// It returns nil if no term is left and the term itself if only one is left.
func OrOf(terms ...Expr) Expr {
	kept := compact(terms)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &Or{Terms: kept}
}

// Render serialises an expression to the host grammar. A nil expression renders as "",
// the host's "no constraint" value.
func Render(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func compact(terms []Expr) []Expr {
	kept := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if t == nil || t.String() == "" {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// quote produces a double-quoted literal, escaping backslashes and quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
