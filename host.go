package reportfilter

// Host is the set of collaborators the Resolver needs from the hosting report platform.
// A Host is scoped to a single page render.
type Host interface {
	Config
	Parameters
	Report
	Questions
}

// Config gives access to the survey and page configuration.
// Values are returned as stored; the Resolver decodes them into the types it expects.
// The boolean result reports whether the property is configured at all.
type Config interface {
	SurveyProperty(key string) (interface{}, bool)
	PageProperty(pageID, key string) (interface{}, bool)
}

// Parameters is the host's parameter store.
type Parameters interface {
	// IsNull reports whether the parameter has no selection.
	IsNull(name string) bool

	// SelectedCodes returns the answer codes selected for the parameter, in selection order.
	SelectedCodes(name string) []string

	// SelectedOptions returns the selected codes together with their display labels.
	SelectedOptions(name string) []Option

	// Reset clears the named parameters. Clearing a parameter that does not exist is a no-op.
	Reset(names ...string)
}

// Report exposes the render context: current page, data sources, user and the
// host-computed pieces (hierarchy, date range, pulse program content) that filters are built from.
type Report interface {
	CurrentPageID() string

	// PageDataSourceID is the data source of the current page.
	PageDataSourceID() string

	// DataSourceID is the survey's default data source.
	DataSourceID() string

	// ProgramDataSourceID is the data source of the pulse program.
	ProgramDataSourceID() string

	// ProjectSelectorNotNeeded reports whether the survey is a regular (non-pulse) survey,
	// in which case no project selection applies.
	ProjectSelectorNotNeeded() bool

	// PageContextItem returns an item set on the host's page context, or "".
	PageContextItem(key string) string

	// HierarchyExpression returns the host's filter expression for a hierarchy node.
	// An empty node means the current report base. Returns "" if no hierarchy is defined.
	HierarchyExpression(node string) string

	// DateRange is the date range implied by the current time period selections.
	DateRange() DateRange

	// PulseItemsWithData is the set of question ids that have data in the active pulse survey.
	PulseItemsWithData() map[string]bool

	User() User

	// FeatureAvailable reports whether the current user's role grants the named capability.
	FeatureAvailable(feature string) bool
}

// Questions gives access to question metadata.
type Questions interface {
	QuestionTitle(qid string) string
	QuestionAnswers(qid string) []Answer
}

// Option is a selected parameter value.
type Option struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// Answer is an answer of a question, as used to populate a filter.
type Answer struct {
	Precode string `json:"precode" yaml:"precode"`
	Text    string `json:"text" yaml:"text"`
}

// User is the end user viewing the report.
type User struct {
	ID    string   `json:"id" yaml:"id"`
	Type  UserType `json:"type" yaml:"type"`
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// UserType distinguishes report end users from the platform's own users.
type UserType string

const (
	// EndUser is a regular report viewer.
	EndUser UserType = "enduser"

	// InternalUser is a platform user viewing the report for testing. Internal users
	// don't own records, so anything keyed by end user name is matched against "".
	InternalUser UserType = "internal"
)

// DateRange is a time period in ISO date format (2006-01-02). Either bound may be empty.
type DateRange struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}
