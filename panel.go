package reportfilter

// IndividualExpression returns the filter expression for one filter parameter based on
// question qid, or nil if the parameter has no selection.
//
// Each selected code becomes an IN clause over the page's data source; the clauses are
// OR-ed and the result is parenthesised, so a single-select parameter yields a
// one-clause group. Multi-select needs no special handling.
func (r *Resolver) IndividualExpression(param, qid string) Expr {
	if r.host.IsNull(param) {
		return nil
	}

	field := Field{Source: r.host.PageDataSourceID(), Name: qid}
	codes := r.host.SelectedCodes(param)
	terms := make([]Expr, 0, len(codes))
	for _, c := range codes {
		terms = append(terms, &In{Field: field, Values: []string{c}})
	}
	if len(terms) == 0 {
		return nil
	}
	return &Group{X: &Or{Terms: terms}}
}

// PanelOptions controls which part of a filter panel PanelExpression uses.
type PanelOptions struct {
	FilterType    FilterType
	VariableClass VariableClass
}

type PanelOption func(o *PanelOptions)

// WithFilterType composes the panel of the given type instead of the one the current
// page shows.
func WithFilterType(t FilterType) PanelOption {
	return func(o *PanelOptions) {
		o.FilterType = t
	}
}

// WithVariableClass restricts composition to filters based on background variables
// or to filters based on survey data.
// Default: AllVariables
func WithVariableClass(c VariableClass) PanelOption {
	return func(o *PanelOptions) {
		o.VariableClass = c
	}
}

// PanelExpression composes the expressions of all filters of a panel with a selection,
// AND-ed in panel order. It returns nil if no filter has a selection.
//
// On the response rate page only the filters based on background variables are used,
// because survey data filters aren't valid for its records.
func (r *Resolver) PanelExpression(opts ...PanelOption) (Expr, error) {
	var o PanelOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.FilterType == 0 {
		t, err := r.pageFilterType()
		if err != nil {
			return nil, err
		}
		o.FilterType = t
	}

	list, err := r.ListFilterQuestions(o.FilterType)
	if err != nil {
		return nil, err
	}

	start, last := 0, len(list)
	if r.onResponseRatePage() || o.VariableClass != AllVariables {
		bg, err := r.CountBackgroundFilters(o.FilterType)
		if err != nil {
			return nil, err
		}
		if bg > len(list) {
			bg = len(list)
		}
		if r.onResponseRatePage() || o.VariableClass == Background {
			last = bg
		}
		if o.VariableClass == Survey {
			start = bg
		}
	}

	terms := make([]Expr, 0, len(list))
	for i := start; i < last; i++ {
		if e := r.IndividualExpression(ParameterName(o.FilterType, i+1), list[i]); e != nil {
			terms = append(terms, e)
		}
	}

	r.log().WithField("type", o.FilterType).
		WithField("class", o.VariableClass).
		Debugf("composed %d of %d filters", len(terms), last-start)

	return AndOf(terms...), nil
}
