// Package statichost provides an in-memory reportfilter.Host described by a YAML document.
//
// It stands in for the report platform when there is none: in the filterexpr command, in
// examples and in tests. A document looks like this:
//
//	page: Page_Results
//	pageDataSource: ds0
//	dataSource: ds0
//	survey:
//	  Filters: [gender, region]
//	  FiltersFromSurveyData: [q1]
//	  WaveQuestion: wave
//	pages:
//	  Page_KPI:
//	    KPI: [kpi1]
//	    KPIPositiveAnswerCodes: ["4", "5"]
//	user: {id: jdoe, type: enduser, roles: [manager]}
//	features:
//	  ReportLevelAccess: [manager]
//	questions:
//	  gender:
//	    title: Gender
//	    answers: [{precode: "1", text: Male}, {precode: "2", text: Female}]
//	parameters:
//	  p_ScriptedFilterPanelParameter1: ["1"]
//	  p_Wave: [{code: "2", label: Wave 2}]
package statichost

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/ezachrisen/reportfilter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document describes the state of a report render.
type Document struct {
	Page              string `yaml:"page"`
	PageDataSource    string `yaml:"pageDataSource"`
	ProgramDataSource string `yaml:"programDataSource,omitempty"`

	// DataSource is the survey's default data source; pageDataSource if unset.
	DataSource string `yaml:"dataSource,omitempty"`

	// PulseProgram marks the survey as a pulse program, where a project must be selected.
	PulseProgram bool `yaml:"pulseProgram,omitempty"`

	Survey      map[string]interface{}            `yaml:"survey,omitempty"`
	Pages       map[string]map[string]interface{} `yaml:"pages,omitempty"`
	PageContext map[string]string                 `yaml:"pageContext,omitempty"`

	Hierarchy          Hierarchy              `yaml:"hierarchy,omitempty"`
	DateRange          reportfilter.DateRange `yaml:"dateRange,omitempty"`
	PulseItemsWithData []string               `yaml:"pulseItemsWithData,omitempty"`

	User reportfilter.User `yaml:"user"`

	// Features maps a capability to the roles granted it. The role "*" grants it to everyone.
	Features map[string][]string `yaml:"features,omitempty"`

	Questions  map[string]Question  `yaml:"questions,omitempty"`
	Parameters map[string]Selection `yaml:"parameters,omitempty"`
}

// Hierarchy holds precomputed hierarchy filter expressions.
type Hierarchy struct {
	// Current is the expression for the current report base.
	Current string `yaml:"current,omitempty"`
	// Nodes maps node ids to their expressions.
	Nodes map[string]string `yaml:"nodes,omitempty"`
}

// Question is the metadata of a question.
type Question struct {
	Title   string                `yaml:"title"`
	Answers []reportfilter.Answer `yaml:"answers,omitempty"`
}

// Host is a reportfilter.Host backed by a Document.
// Parameter access is safe for concurrent use; everything else is read-only.
type Host struct {
	doc Document

	mu     sync.RWMutex
	params map[string]Selection
}

// New creates a host for the document.
func New(doc Document) *Host {
	h := Host{
		doc:    doc,
		params: make(map[string]Selection, len(doc.Parameters)),
	}
	for k, v := range doc.Parameters {
		h.params[k] = append(Selection(nil), v...)
	}
	return &h
}

// Load reads a YAML document and creates a host for it.
func Load(r io.Reader) (*Host, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding host document")
	}
	if doc.Page == "" {
		return nil, errors.New("host document: page is required")
	}
	return New(doc), nil
}

// LoadFile reads the YAML document at path and creates a host for it.
func LoadFile(path string) (*Host, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening host document")
	}
	defer f.Close()

	h, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return h, nil
}

// Select replaces the selection of a parameter.
func (h *Host) Select(param string, opts ...reportfilter.Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(opts) == 0 {
		delete(h.params, param)
		return
	}
	h.params[param] = append(Selection(nil), opts...)
}

// SelectCodes replaces the selection of a parameter with unlabelled codes.
func (h *Host) SelectCodes(param string, codes ...string) {
	opts := make([]reportfilter.Option, len(codes))
	for i, c := range codes {
		opts[i] = reportfilter.Option{Code: c}
	}
	h.Select(param, opts...)
}

// ParameterNames returns the names of the parameters with a selection, sorted.
func (h *Host) ParameterNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.params))
	for k := range h.params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Config

func (h *Host) SurveyProperty(key string) (interface{}, bool) {
	v, ok := h.doc.Survey[key]
	return v, ok
}

func (h *Host) PageProperty(pageID, key string) (interface{}, bool) {
	props, ok := h.doc.Pages[pageID]
	if !ok {
		return nil, false
	}
	v, ok := props[key]
	return v, ok
}

// Parameters

func (h *Host) IsNull(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.params[name]) == 0
}

func (h *Host) SelectedCodes(name string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sel := h.params[name]
	codes := make([]string, len(sel))
	for i, o := range sel {
		codes[i] = o.Code
	}
	return codes
}

func (h *Host) SelectedOptions(name string) []reportfilter.Option {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]reportfilter.Option{}, h.params[name]...)
}

func (h *Host) Reset(names ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range names {
		delete(h.params, n)
	}
}

// Report

func (h *Host) CurrentPageID() string       { return h.doc.Page }
func (h *Host) PageDataSourceID() string    { return h.doc.PageDataSource }
func (h *Host) ProgramDataSourceID() string { return h.doc.ProgramDataSource }

func (h *Host) DataSourceID() string {
	if h.doc.DataSource == "" {
		return h.doc.PageDataSource
	}
	return h.doc.DataSource
}

func (h *Host) ProjectSelectorNotNeeded() bool { return !h.doc.PulseProgram }

func (h *Host) PageContextItem(key string) string { return h.doc.PageContext[key] }

func (h *Host) HierarchyExpression(node string) string {
	if node == "" {
		return h.doc.Hierarchy.Current
	}
	return h.doc.Hierarchy.Nodes[node]
}

func (h *Host) DateRange() reportfilter.DateRange { return h.doc.DateRange }

func (h *Host) PulseItemsWithData() map[string]bool {
	items := make(map[string]bool, len(h.doc.PulseItemsWithData))
	for _, q := range h.doc.PulseItemsWithData {
		items[q] = true
	}
	return items
}

func (h *Host) User() reportfilter.User { return h.doc.User }

func (h *Host) FeatureAvailable(feature string) bool {
	for _, granted := range h.doc.Features[feature] {
		if granted == "*" {
			return true
		}
		for _, role := range h.doc.User.Roles {
			if role == granted {
				return true
			}
		}
	}
	return false
}

// Questions

func (h *Host) QuestionTitle(qid string) string {
	q, ok := h.doc.Questions[qid]
	if !ok || q.Title == "" {
		return qid
	}
	return q.Title
}

func (h *Host) QuestionAnswers(qid string) []reportfilter.Answer {
	return append([]reportfilter.Answer{}, h.doc.Questions[qid].Answers...)
}

var _ reportfilter.Host = (*Host)(nil)
