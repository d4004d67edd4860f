package reportfilter_test

import (
	"strings"
	"testing"

	"github.com/ezachrisen/reportfilter"
	"github.com/matryer/is"
)

func TestResetAllFilters(t *testing.T) {
	is := is.New(t)

	m := newMockHost().globalFilters(list("gender", "region"), list("q1"))
	for i := 1; i <= 3; i++ {
		m.selectCodes(reportfilter.ParameterName(reportfilter.Global, i), "1")
	}
	for i := 1; i <= 10; i++ {
		m.selectCodes(reportfilter.ParameterName(reportfilter.PageSpecific, i), "1")
	}
	m.selectCodes(reportfilter.WaveParameter, "2")

	r := reportfilter.NewResolver(m)
	is.NoErr(r.ResetAllFilters())

	is.Equal(len(m.resetCalls), 1)
	is.Equal(len(m.resetCalls[0]), 13)
	is.Equal(m.resetCalls[0][0], "p_ScriptedFilterPanelParameter1")
	is.Equal(m.resetCalls[0][12], "p_ScriptedPageFilterPanelParam10")

	for i := 1; i <= 3; i++ {
		is.True(m.IsNull(reportfilter.ParameterName(reportfilter.Global, i)))
	}
	for i := 1; i <= 10; i++ {
		is.True(m.IsNull(reportfilter.ParameterName(reportfilter.PageSpecific, i)))
	}
	is.True(!m.IsNull(reportfilter.WaveParameter)) // not a filter panel parameter

	e, err := r.PanelExpression()
	is.NoErr(err)
	is.True(e == nil)
}

func TestResetAllFiltersMaxPageSpecific(t *testing.T) {
	is := is.New(t)

	m := newMockHost()
	r := reportfilter.NewResolver(m, reportfilter.WithMaxPageSpecificFilters(4))
	is.NoErr(r.ResetAllFilters())

	is.Equal(m.resetCalls[0], []string{
		"p_ScriptedPageFilterPanelParam1",
		"p_ScriptedPageFilterPanelParam2",
		"p_ScriptedPageFilterPanelParam3",
		"p_ScriptedPageFilterPanelParam4",
	})
}

func TestResetAllFiltersNegativeMax(t *testing.T) {
	is := is.New(t)

	m := newMockHost().globalFilters(list("gender"), list())
	r := reportfilter.NewResolver(m, reportfilter.WithMaxPageSpecificFilters(-1))
	is.NoErr(r.ResetAllFilters())

	is.Equal(m.resetCalls[0], []string{"p_ScriptedFilterPanelParameter1"})
}

func TestSlotTitleAndOptions(t *testing.T) {
	is := is.New(t)

	m := newMockHost().globalFilters(list("gender"), list("q1"))
	m.titles["gender"] = "Gender"
	m.answers["q1"] = []reportfilter.Answer{{Precode: "1", Text: "Yes"}, {Precode: "2", Text: "No"}}
	r := reportfilter.NewResolver(m)

	title, err := r.SlotTitle(reportfilter.Global, 1)
	is.NoErr(err)
	is.Equal(title, "Gender")

	title, err = r.SlotTitle(reportfilter.Global, 3)
	is.NoErr(err)
	is.Equal(title, "")

	title, err = r.SlotTitle(reportfilter.Global, 0)
	is.NoErr(err)
	is.Equal(title, "")

	answers, err := r.SlotOptions(reportfilter.Global, 2)
	is.NoErr(err)
	is.Equal(len(answers), 2)
	is.Equal(answers[1], reportfilter.Answer{Precode: "2", Text: "No"})

	answers, err = r.SlotOptions(reportfilter.PageSpecific, 1)
	is.NoErr(err)
	is.True(answers == nil)
}

func TestFilterValues(t *testing.T) {
	is := is.New(t)

	m := newMockHost().
		globalFilters(list("gender", "region"), list("q1")).
		selectCodes("p_ScriptedFilterPanelParameter1", "2").
		selectCodes("p_ScriptedFilterPanelParameter3", "1", "3")
	m.titles["gender"] = "Gender"
	m.titles["q1"] = "Satisfaction"

	values, err := reportfilter.NewResolver(m).FilterValues(reportfilter.Global)
	is.NoErr(err)
	is.Equal(len(values), 2)
	is.Equal(values[0].Label, "Gender")
	is.Equal(values[1].SelectedOptions, []reportfilter.Option{{Code: "1", Label: "label 1"}, {Code: "3", Label: "label 3"}})

	is.Equal(values.Labels(), []string{
		"Gender: label 2",
		"Satisfaction: label 1, label 3",
	})

	s := values.String()
	is.True(strings.Contains(s, "APPLIED FILTERS"))
	is.True(strings.Contains(s, "2nd"))
	is.True(strings.Contains(s, "Satisfaction"))
	is.True(strings.Contains(s, "1,3"))
}

func TestFilterValuesLabelFallback(t *testing.T) {
	is := is.New(t)

	v := reportfilter.FilterValues{{Label: "Region", SelectedOptions: []reportfilter.Option{{Code: "north"}}}}
	is.Equal(v.Labels(), []string{"Region: north"})
}
