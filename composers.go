package reportfilter

import (
	"strings"

	"github.com/pkg/errors"
)

// NormalizeQuestionID converts a question id to the form used in expressions:
// dots (as in grid question ids like q1.row2) become underscores.
func NormalizeQuestionID(qid string) string {
	return strings.ReplaceAll(qid, ".", "_")
}

// AnswerRange returns an expression matching records whose answer to qid is one of codes,
// or nil if codes is empty.
func AnswerRange(qid string, codes []string) (Expr, error) {
	if strings.TrimSpace(qid) == "" {
		return nil, errors.Wrapf(ErrInvalidArgument, "answer range filter for codes %v: missing question id", codes)
	}
	if len(codes) == 0 {
		return nil, nil
	}
	values := make([]string, len(codes))
	copy(values, codes)
	return &In{Field: Field{Name: NormalizeQuestionID(qid)}, Values: values}, nil
}

// IsTimePeriodFilterHidden reports whether the survey hides the time period filter,
// as pulse programs do.
func (r *Resolver) IsTimePeriodFilterHidden() (bool, error) {
	return r.surveyBool(timePeriodHiddenKey)
}

// IsWaveFilterHidden reports whether the survey has no wave question.
func (r *Resolver) IsWaveFilterHidden() (bool, error) {
	q, err := r.surveyString(waveQuestionKey)
	return q == "", err
}

// TimePeriodFilter returns an expression restricting the date question qid to the
// selected time period. Missing bounds are left open. It returns nil if the survey
// hides the time period filter or no bound is selected.
func (r *Resolver) TimePeriodFilter(qid string) (Expr, error) {
	hidden, err := r.IsTimePeriodFilterHidden()
	if err != nil {
		return nil, err
	}
	if hidden {
		r.log().Debug("time period filter hidden")
		return nil, nil
	}

	period := r.host.DateRange()
	field := Field{Name: qid}
	var terms []Expr
	if period.Start != "" {
		terms = append(terms, &Compare{Field: field, Op: ">=", Value: Date(period.Start)})
	}
	if period.End != "" {
		terms = append(terms, &Compare{Field: field, Op: "<=", Value: Date(period.End)})
	}
	return AndOf(terms...), nil
}

// CurrentWaveExpression returns an expression restricting the wave question to the
// selected wave, or nil if the survey has no wave question or no wave is selected.
// Only the first selected wave is used; the wave filter is single-select.
func (r *Resolver) CurrentWaveExpression() (Expr, error) {
	qid, err := r.surveyString(waveQuestionKey)
	if err != nil || qid == "" {
		return nil, err
	}
	selected := r.host.SelectedCodes(WaveParameter)
	if len(selected) == 0 {
		return nil, nil
	}
	return AnswerRange(qid, selected[:1])
}

// FilterByKPIGroup returns an expression matching records whose KPI answer is in the named
// group of answer codes (KPIPositiveAnswerCodes or KPINegativeAnswerCodes), as configured
// for the KPI page.
//
// If the KPI page has exactly one KPI question, that question is used. Otherwise it's the
// question the end user picked in p_QsToFilterBy; nil is returned if they picked none.
func (r *Resolver) FilterByKPIGroup(group string) (Expr, error) {
	configured, _, err := r.pageStrings(KPIPage, kpiQuestionsKey)
	if err != nil {
		return nil, err
	}

	var qid string
	if len(configured) == 1 {
		qid = configured[0]
	} else if picked := r.host.SelectedCodes(KPIQuestionsParameter); len(picked) > 0 {
		qid = picked[0]
	} else {
		r.log().WithField("group", group).Debug("no KPI question to filter by")
		return nil, nil
	}

	codes, _, err := r.pageStrings(KPIPage, group)
	if err != nil {
		return nil, err
	}
	return AnswerRange(qid, codes)
}

// ownRecords matches the actions owned by the current user.
func (r *Resolver) ownRecords() Expr {
	return &In{Field: Field{Name: actionOwnerField}, Values: []string{r.host.User().ID}}
}

// OnlyOwnActionsExpression restricts the actions page to the current user's own actions.
// Users with the ReportLevelAccess capability see everyone's actions unless they ticked
// the "only own actions" box.
func (r *Resolver) OnlyOwnActionsExpression() Expr {
	if !r.host.IsNull(OnlyOwnActionsParameter) || !r.host.FeatureAvailable(ReportLevelAccess) {
		return r.ownRecords()
	}
	return nil
}

// OnlyOwnActionsInHitlistExpression restricts the actions hitlist, where actions can be
// edited or deleted, to the current user's own actions unless their role may edit others'.
func (r *Resolver) OnlyOwnActionsInHitlistExpression() Expr {
	if !r.host.FeatureAvailable(EditOrDeleteOthersActions) {
		return r.ownRecords()
	}
	return nil
}

// ExcludeNotRegisteredActions hides actions that were started but never saved.
// Actions are registered when saved; until then they have no registration date.
func (r *Resolver) ExcludeNotRegisteredActions() Expr {
	return &Not{X: &IsNull{Field: Field{Source: r.host.DataSourceID(), Name: registrationDateField}}}
}

// SelectedEndUsersExpression restricts end user statistics to the end users picked in
// p_EndUserSelection. Without a selection it excludes the parameter's own (empty) values.
func (r *Resolver) SelectedEndUsersExpression() (Expr, error) {
	qid, err := r.pageString(ActionsPage, endUserSelectionQuestionKey)
	if err != nil || qid == "" {
		return nil, err
	}
	if selected := r.host.SelectedCodes(EndUserSelectionParameter); len(selected) > 0 {
		return AnswerRange(qid, selected)
	}
	// TODO: an empty exclusion set matches every record; confirm with report owners whether
	// the default should hide all end users instead.
	return &Not{X: &In{Field: Field{Name: qid}, Param: EndUserSelectionParameter}}, nil
}

// ProjectExpression restricts pulse program data to one project.
func (r *Resolver) ProjectExpression(projectID string) Expr {
	return &Compare{
		Field: Field{Source: r.host.ProgramDataSourceID(), Name: sourceProjectField},
		Op:    "=",
		Value: String(projectID),
	}
}

// ProjectSelectorInPulseProgram restricts pulse program data to the selected project.
// The project set on the page context takes precedence over the p_projectSelector
// parameter. It returns nil for regular surveys, for pages not based on the program data
// source and when no project is selected.
func (r *Resolver) ProjectSelectorInPulseProgram() Expr {
	ds := r.host.ProgramDataSourceID()
	if r.host.ProjectSelectorNotNeeded() || ds != r.host.PageDataSourceID() {
		return nil
	}

	if pid := r.host.PageContextItem(ProjectSelectorParameter); pid != "" {
		return r.ProjectExpression(pid)
	}

	selected := r.host.SelectedCodes(ProjectSelectorParameter)
	if len(selected) == 0 {
		return nil
	}
	return r.ProjectExpression(selected[0])
}

// HierarchyAndWaveFilter combines the project, hierarchy and wave filters. Each argument, when
// set, overrides the current selection for its part: hierNode selects a hierarchy node instead
// of the current report base, waveID a wave instead of the selected one and projectID a
// project instead of the selected one.
//
// Benchmark tables exclude references to other waves and upper hierarchy levels, but their
// bases still need them; this is the filter used for those base calculations.
func (r *Resolver) HierarchyAndWaveFilter(hierNode, waveID, projectID string) (Expr, error) {
	var project Expr
	if projectID != "" {
		project = r.ProjectExpression(projectID)
	} else {
		project = r.ProjectSelectorInPulseProgram()
	}

	var hierarchy Expr
	if h := r.host.HierarchyExpression(hierNode); h != "" {
		hierarchy = Raw(h)
	}

	var wave Expr
	var err error
	if waveID != "" {
		var qid string
		qid, err = r.surveyString(waveQuestionKey)
		if err != nil {
			return nil, err
		}
		if qid != "" {
			wave, err = AnswerRange(qid, []string{waveID})
		}
	} else {
		wave, err = r.CurrentWaveExpression()
	}
	if err != nil {
		return nil, err
	}

	return AndOf(project, hierarchy, wave), nil
}

// PulseSurveyListFilter restricts the pulse survey selector to the surveys created by the
// current user, unless they chose to see all surveys.
func (r *Resolver) PulseSurveyListFilter() Expr {
	if len(r.host.SelectedCodes(ShowAllPulseParameter)) > 0 {
		return nil
	}
	user := r.host.User()
	creator := user.ID
	if user.Type == InternalUser {
		creator = ""
	}
	return &Compare{Field: Field{Name: createdByEndUserField}, Op: "=", Value: String(creator)}
}

// NotEmptyCommentsFilter matches records where at least one of the open-text questions has
// a comment that isn't blank.
func NotEmptyCommentsFilter(qids []string) Expr {
	terms := make([]Expr, 0, len(qids))
	for _, q := range qids {
		f := Field{Name: NormalizeQuestionID(q)}
		terms = append(terms, &And{Terms: []Expr{
			&Not{X: &IsNull{Field: f}},
			&Compare{Field: f, Op: "!=", Value: String("")},
			&Compare{Field: f, Op: "!=", Value: String(" ")},
		}})
	}
	return OrOf(terms...)
}
