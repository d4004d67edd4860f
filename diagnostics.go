package reportfilter

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Diagnostics describes one node of an expression tree, for inspecting how a filter was composed.
type Diagnostics struct {
	Loc      string // position in the tree; "1.2" is the second child of the root
	Node     string // node kind
	Expr     string // the node rendered in the host grammar
	Children []Diagnostics
}

// Diagnose returns the diagnostics tree of the expression.
func Diagnose(e Expr) Diagnostics {
	return diagnose(e, "1")
}

func diagnose(e Expr, loc string) Diagnostics {
	d := Diagnostics{
		Loc:  loc,
		Node: nodeKind(e),
		Expr: Render(e),
	}
	for i, c := range children(e) {
		d.Children = append(d.Children, diagnose(c, fmt.Sprintf("%s.%d", loc, i+1)))
	}
	return d
}

func nodeKind(e Expr) string {
	switch e.(type) {
	case nil:
		return "none"
	case *In:
		return "in"
	case *Compare:
		return "compare"
	case *IsNull:
		return "isnull"
	case *Not:
		return "not"
	case *And:
		return "and"
	case *Or:
		return "or"
	case *Group:
		return "group"
	case Raw:
		return "raw"
	}
	return fmt.Sprintf("%T", e)
}

func children(e Expr) []Expr {
	switch v := e.(type) {
	case *Not:
		return []Expr{v.X}
	case *Group:
		return []Expr{v.X}
	case *And:
		return v.Terms
	case *Or:
		return v.Terms
	}
	return nil
}

// String produces a table of the nodes of the tree, in depth-first order.
func (d Diagnostics) String() string {

	tw := table.NewWriter()
	tw.SetTitle("\nFILTER EXPRESSION DIAGNOSTICS\n")
	tw.AppendHeader(table.Row{"Loc", "Node", "Expression"})

	for _, cd := range flattenDiagnostics(d) {
		depth := strings.Count(cd.Loc, ".")
		tw.AppendRow(table.Row{cd.Loc, strings.Repeat("  ", depth) + cd.Node, cd.Expr})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 100},
	})
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func flattenDiagnostics(d Diagnostics) []Diagnostics {
	l := []Diagnostics{d}
	for _, c := range d.Children {
		l = append(l, flattenDiagnostics(c)...)
	}
	return l
}
