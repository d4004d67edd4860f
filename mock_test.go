package reportfilter_test

import (
	"github.com/ezachrisen/reportfilter"
)

// -------------------------------------------------- MOCK HOST
// mockHost is used for testing.
// Configuration and selections are plain maps; Reset records which
// parameters it was asked to clear.
type mockHost struct {
	page      string
	pageDS    string
	surveyDS  string
	programDS string
	pulse     bool

	survey map[string]interface{}
	pages  map[string]map[string]interface{}

	params      map[string][]reportfilter.Option
	resetCalls  [][]string
	pageContext map[string]string
	hierarchy   map[string]string
	dates       reportfilter.DateRange
	pulseItems  map[string]bool
	user        reportfilter.User
	features    map[string]bool
	titles      map[string]string
	answers     map[string][]reportfilter.Answer
}

func newMockHost() *mockHost {
	return &mockHost{
		page:        "Page_Results",
		pageDS:      "ds0",
		surveyDS:    "ds0",
		programDS:   "ds0",
		survey:      map[string]interface{}{},
		pages:       map[string]map[string]interface{}{},
		params:      map[string][]reportfilter.Option{},
		pageContext: map[string]string{},
		hierarchy:   map[string]string{},
		pulseItems:  map[string]bool{},
		user:        reportfilter.User{ID: "jdoe", Type: reportfilter.EndUser},
		features:    map[string]bool{},
		titles:      map[string]string{},
		answers:     map[string][]reportfilter.Answer{},
	}
}

// globalFilters configures the survey's filter panel.
func (m *mockHost) globalFilters(bg []interface{}, data []interface{}) *mockHost {
	m.survey["Filters"] = bg
	m.survey["FiltersFromSurveyData"] = data
	return m
}

// pageFilters configures the current page's own filter panel.
func (m *mockHost) pageFilters(bg []interface{}, data []interface{}) *mockHost {
	m.pageProps(m.page)["PageSpecificFilters"] = bg
	m.pageProps(m.page)["PageSpecificFiltersFromSurveyData"] = data
	return m
}

func (m *mockHost) pageProps(page string) map[string]interface{} {
	if m.pages[page] == nil {
		m.pages[page] = map[string]interface{}{}
	}
	return m.pages[page]
}

func (m *mockHost) selectCodes(param string, codes ...string) *mockHost {
	opts := make([]reportfilter.Option, len(codes))
	for i, c := range codes {
		opts[i] = reportfilter.Option{Code: c, Label: "label " + c}
	}
	m.params[param] = opts
	return m
}

func (m *mockHost) SurveyProperty(key string) (interface{}, bool) {
	v, ok := m.survey[key]
	return v, ok
}

func (m *mockHost) PageProperty(pageID, key string) (interface{}, bool) {
	v, ok := m.pages[pageID][key]
	return v, ok
}

func (m *mockHost) IsNull(name string) bool {
	return len(m.params[name]) == 0
}

func (m *mockHost) SelectedCodes(name string) []string {
	codes := []string{}
	for _, o := range m.params[name] {
		codes = append(codes, o.Code)
	}
	return codes
}

func (m *mockHost) SelectedOptions(name string) []reportfilter.Option {
	return m.params[name]
}

func (m *mockHost) Reset(names ...string) {
	m.resetCalls = append(m.resetCalls, names)
	for _, n := range names {
		delete(m.params, n)
	}
}

func (m *mockHost) CurrentPageID() string {
	return m.page
}

func (m *mockHost) PageDataSourceID() string {
	return m.pageDS
}

func (m *mockHost) DataSourceID() string {
	return m.surveyDS
}

func (m *mockHost) ProgramDataSourceID() string {
	return m.programDS
}

func (m *mockHost) ProjectSelectorNotNeeded() bool {
	return !m.pulse
}

func (m *mockHost) PageContextItem(k string) string {
	return m.pageContext[k]
}

func (m *mockHost) HierarchyExpression(node string) string {
	return m.hierarchy[node]
}

func (m *mockHost) DateRange() reportfilter.DateRange {
	return m.dates
}

func (m *mockHost) PulseItemsWithData() map[string]bool {
	return m.pulseItems
}

func (m *mockHost) User() reportfilter.User {
	return m.user
}

func (m *mockHost) FeatureAvailable(feature string) bool {
	return m.features[feature]
}

func (m *mockHost) QuestionTitle(qid string) string {
	return m.titles[qid]
}

func (m *mockHost) QuestionAnswers(qid string) []reportfilter.Answer {
	return m.answers[qid]
}

var _ reportfilter.Host = (*mockHost)(nil)

// list is shorthand for a configured list of question ids.
func list(qids ...string) []interface{} {
	out := make([]interface{}, len(qids))
	for i, q := range qids {
		out[i] = q
	}
	return out
}
