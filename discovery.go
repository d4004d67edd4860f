package reportfilter

// filterListKeys returns the configuration keys of the background and survey data filter
// lists for the filter type.
func filterListKeys(t FilterType) (bg, data string, err error) {
	switch t {
	case Global:
		return surveyFiltersKey, surveyDataFiltersKey, nil
	case PageSpecific:
		return pageFiltersKey, pageDataFiltersKey, nil
	}
	return "", "", unknownFilterType("filter list", t)
}

// filterList reads one of the two filter lists of the filter type.
func (r *Resolver) filterList(t FilterType, key string) ([]string, bool, error) {
	if t == PageSpecific {
		return r.pageStrings(r.host.CurrentPageID(), key)
	}
	return r.surveyStrings(key)
}

// ListFilterQuestions returns the questions of the filter panel of the given type:
// the filters based on background variables followed by the filters based on survey data.
// Page-specific filters are read from the current page's configuration, global filters from
// the survey's. If either list isn't configured there are no filters.
func (r *Resolver) ListFilterQuestions(t FilterType) ([]string, error) {
	bgKey, dataKey, err := filterListKeys(t)
	if err != nil {
		return nil, err
	}

	bg, bgOK, err := r.filterList(t, bgKey)
	if err != nil {
		return nil, err
	}

	data, dataOK, err := r.filterList(t, dataKey)
	if err != nil {
		return nil, err
	}

	if !bgOK || !dataOK {
		r.log().WithField("type", t).Debug("filter lists not configured")
		return []string{}, nil
	}

	list := make([]string, 0, len(bg)+len(data))
	list = append(list, bg...)
	return append(list, data...), nil
}

// CountBackgroundFilters returns the number of filters of the given type that are based on
// background variables. Their indexes precede those of the filters based on survey data.
// Like ListFilterQuestions, it's 0 unless both lists are configured.
func (r *Resolver) CountBackgroundFilters(t FilterType) (int, error) {
	bgKey, dataKey, err := filterListKeys(t)
	if err != nil {
		return 0, err
	}
	bg, bgOK, err := r.filterList(t, bgKey)
	if err != nil {
		return 0, err
	}
	_, dataOK, err := r.filterList(t, dataKey)
	if err != nil {
		return 0, err
	}
	if !bgOK || !dataOK {
		return 0, nil
	}
	return len(bg), nil
}

// PageHasSpecificFilters reports whether the current page declares its own filter panel.
func (r *Resolver) PageHasSpecificFilters() (bool, error) {
	page := r.host.CurrentPageID()
	for _, key := range []string{pageFiltersKey, pageDataFiltersKey} {
		list, _, err := r.pageStrings(page, key)
		if err != nil {
			return false, err
		}
		if len(list) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// pageFilterType is the type of the panel the current page shows.
func (r *Resolver) pageFilterType() (FilterType, error) {
	specific, err := r.PageHasSpecificFilters()
	if err != nil {
		return 0, err
	}
	return ResolveFilterType(specific), nil
}

// FilterSlots returns the slots of the filter panel of the given type, in panel order.
func (r *Resolver) FilterSlots(t FilterType) ([]FilterSlot, error) {
	list, err := r.ListFilterQuestions(t)
	if err != nil {
		return nil, err
	}
	slots := make([]FilterSlot, len(list))
	for i, qid := range list {
		slots[i] = FilterSlot{Index: i + 1, QuestionID: qid}
	}
	return slots, nil
}
