package reportfilter_test

import (
	"testing"

	"github.com/ezachrisen/reportfilter"
	"github.com/matryer/is"
)

func TestRender(t *testing.T) {

	q1 := reportfilter.Field{Source: "ds0", Name: "Q1"}
	q2 := reportfilter.Field{Name: "Q2"}

	cases := map[string]struct {
		expr reportfilter.Expr
		want string
	}{
		"nil": {
			expr: nil,
			want: "",
		},
		"in one value": {
			expr: &reportfilter.In{Field: q1, Values: []string{"5"}},
			want: `IN(ds0:Q1, "5")`,
		},
		"in many values": {
			expr: &reportfilter.In{Field: q2, Values: []string{"1", "2", "3"}},
			want: `IN(Q2, "1","2","3")`,
		},
		"in parameter": {
			expr: &reportfilter.Not{X: &reportfilter.In{Field: q2, Param: "p_EndUserSelection"}},
			want: `NOT IN(Q2, PValStrArr("p_EndUserSelection"))`,
		},
		"dates": {
			expr: reportfilter.AndOf(
				&reportfilter.Compare{Field: q2, Op: ">=", Value: reportfilter.Date("2019-03-31")},
				&reportfilter.Compare{Field: q2, Op: "<=", Value: reportfilter.Date("2019-06-30")},
			),
			want: `Q2 >= TODATE("2019-03-31") AND Q2 <= TODATE("2019-06-30")`,
		},
		"or inside and": {
			expr: reportfilter.AndOf(
				reportfilter.OrOf(&reportfilter.In{Field: q2, Values: []string{"1"}}, &reportfilter.In{Field: q2, Values: []string{"2"}}),
				&reportfilter.IsNull{Field: q1},
			),
			want: `(IN(Q2, "1") OR IN(Q2, "2")) AND ISNULL(ds0:Q1)`,
		},
		"and inside or": {
			expr: reportfilter.OrOf(
				reportfilter.AndOf(&reportfilter.IsNull{Field: q1}, &reportfilter.IsNull{Field: q2}),
				&reportfilter.IsNull{Field: q2},
			),
			want: `ISNULL(ds0:Q1) AND ISNULL(Q2) OR ISNULL(Q2)`,
		},
		"not junction": {
			expr: &reportfilter.Not{X: reportfilter.AndOf(&reportfilter.IsNull{Field: q1}, &reportfilter.IsNull{Field: q2})},
			want: `NOT (ISNULL(ds0:Q1) AND ISNULL(Q2))`,
		},
		"group is not wrapped twice": {
			expr: reportfilter.AndOf(
				&reportfilter.Group{X: reportfilter.OrOf(&reportfilter.IsNull{Field: q1}, &reportfilter.IsNull{Field: q2})},
				reportfilter.Raw("hier = 1"),
			),
			want: `(ISNULL(ds0:Q1) OR ISNULL(Q2)) AND hier = 1`,
		},
		"quotes escaped": {
			expr: &reportfilter.Compare{Field: q2, Op: "=", Value: reportfilter.String(`say "hi"`)},
			want: `Q2 = "say \"hi\""`,
		},
	}

	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			is := is.New(t)
			is.Equal(reportfilter.Render(c.expr), c.want)
		})
	}
}

func TestAndOfDropsEmptyTerms(t *testing.T) {
	is := is.New(t)

	is.True(reportfilter.AndOf() == nil)
	is.True(reportfilter.AndOf(nil, reportfilter.Raw("")) == nil)
	is.True(reportfilter.OrOf(nil) == nil)

	single := &reportfilter.IsNull{Field: reportfilter.Field{Name: "q"}}
	is.Equal(reportfilter.AndOf(nil, single, reportfilter.Raw("")), single)

	both := reportfilter.AndOf(single, reportfilter.Raw("x = 1"))
	is.Equal(reportfilter.Render(both), `ISNULL(q) AND x = 1`)
}

func TestParameterName(t *testing.T) {
	is := is.New(t)

	is.Equal(reportfilter.ParameterName(reportfilter.Global, 1), "p_ScriptedFilterPanelParameter1")
	is.Equal(reportfilter.ParameterName(reportfilter.Global, 12), "p_ScriptedFilterPanelParameter12")
	is.Equal(reportfilter.ParameterName(reportfilter.PageSpecific, 3), "p_ScriptedPageFilterPanelParam3")
}

func TestResolveFilterType(t *testing.T) {
	is := is.New(t)

	is.Equal(reportfilter.ResolveFilterType(true), reportfilter.PageSpecific)
	is.Equal(reportfilter.ResolveFilterType(false), reportfilter.Global)
	is.Equal(reportfilter.Global.String(), "global")
	is.Equal(reportfilter.PageSpecific.String(), "pageSpecific")
	is.Equal(reportfilter.FilterType(7).String(), "FilterType(7)")
}
