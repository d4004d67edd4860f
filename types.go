package reportfilter

import "fmt"

// FilterType identifies the filter panel a slot belongs to.
type FilterType int

const (
	// Global filters are configured per survey and shown on every page without its own filters.
	Global FilterType = iota + 1

	// PageSpecific filters are configured per page.
	PageSpecific
)

func (t FilterType) String() string {
	switch t {
	case Global:
		return "global"
	case PageSpecific:
		return "pageSpecific"
	default:
		return fmt.Sprintf("FilterType(%d)", int(t))
	}
}

// VariableClass restricts panel composition to one part of the filter list.
type VariableClass int

const (
	// AllVariables uses the full filter list.
	AllVariables VariableClass = iota

	// Background uses only the filters based on background variables.
	Background

	// Survey uses only the filters based on survey data.
	Survey
)

func (c VariableClass) String() string {
	switch c {
	case Background:
		return "background"
	case Survey:
		return "survey"
	default:
		return "all"
	}
}

// FilterSlot is one filter placeholder of a panel.
type FilterSlot struct {
	Index      int    // 1-based, matches the parameter name suffix
	QuestionID string // the question the filter is based on
}

// Parameter name prefixes. The slot index is appended without a separator.
const (
	GlobalParameterPrefix       = "p_ScriptedFilterPanelParameter"
	PageSpecificParameterPrefix = "p_ScriptedPageFilterPanelParam"
)

// Names of other parameters read by the composers.
const (
	WaveParameter             = "p_Wave"
	KPIQuestionsParameter     = "p_QsToFilterBy"
	OnlyOwnActionsParameter   = "p_OnlyOwnActions"
	EndUserSelectionParameter = "p_EndUserSelection"
	ProjectSelectorParameter  = "p_projectSelector"
	ShowAllPulseParameter     = "p_ShowAllPulseSurveys"
)

// Configuration keys.
const (
	surveyFiltersKey            = "Filters"
	surveyDataFiltersKey        = "FiltersFromSurveyData"
	pageFiltersKey              = "PageSpecificFilters"
	pageDataFiltersKey          = "PageSpecificFiltersFromSurveyData"
	timePeriodHiddenKey         = "IsTimePeriodFilterHidden"
	waveQuestionKey             = "WaveQuestion"
	kpiQuestionsKey             = "KPI"
	endUserSelectionQuestionKey = "EndUserSelection"
)

// Page ids with special filter handling.
const (
	DefaultResponseRatePage = "Page_Response_Rate"
	KPIPage                 = "Page_KPI"
	ActionsPage             = "Page_Actions"
)

// KPI answer code groups, as named in the KPI page configuration.
const (
	KPIPositiveAnswerCodes = "KPIPositiveAnswerCodes"
	KPINegativeAnswerCodes = "KPINegativeAnswerCodes"
)

// Capabilities checked with Report.FeatureAvailable.
const (
	ReportLevelAccess         = "ReportLevelAccess"
	EditOrDeleteOthersActions = "EditOrDeleteOthersActions"
)

// Fields of the actions and pulse survey data sources.
const (
	actionOwnerField       = "actionowner"
	registrationDateField  = "regDate"
	sourceProjectField     = "source_projectid"
	createdByEndUserField  = "CreatedByEndUserName"
	defaultMaxPageSpecific = 10
)

// ParameterName returns the name of the parameter backing the slot with the given
// 1-based index.
func ParameterName(t FilterType, index int) string {
	if t == PageSpecific {
		return fmt.Sprintf("%s%d", PageSpecificParameterPrefix, index)
	}
	return fmt.Sprintf("%s%d", GlobalParameterPrefix, index)
}

// ResolveFilterType returns the filter type for a render context: PageSpecific if the
// slot being rendered belongs to the page-specific panel, Global otherwise.
func ResolveFilterType(pageSpecific bool) FilterType {
	if pageSpecific {
		return PageSpecific
	}
	return Global
}
