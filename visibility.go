package reportfilter

// IsFilterSlotHidden reports whether the filter placeholder with the given 1-based index,
// belonging to the panel of type t, should be hidden on the current page.
//
// A page shows either its page-specific panel or the global one, so slots of the other type
// are always hidden. Slots beyond the number of configured filters are hidden. On the response
// rate page, global slots beyond the filters based on background variables are hidden too.
func (r *Resolver) IsFilterSlotHidden(t FilterType, slot int) (bool, error) {
	specific, err := r.PageHasSpecificFilters()
	if err != nil {
		return false, err
	}

	switch t {
	case Global:
		if specific {
			return true, nil
		}
		list, err := r.ListFilterQuestions(Global)
		if err != nil {
			return false, err
		}
		if slot > len(list) {
			return true, nil
		}
		if r.onResponseRatePage() {
			bg, err := r.CountBackgroundFilters(Global)
			if err != nil {
				return false, err
			}
			if slot > bg {
				r.log().WithField("slot", slot).Debug("hiding global filter: survey data filters don't apply")
				return true, nil
			}
		}
		return false, nil

	case PageSpecific:
		if !specific {
			return true, nil
		}
		list, err := r.ListFilterQuestions(PageSpecific)
		if err != nil {
			return false, err
		}
		return slot > len(list), nil
	}

	return false, unknownFilterType("hide filter slot", t)
}

// HiddenFilterIndexes returns the 1-based indexes of the global filters to hide in a pulse
// program: filters based on survey data whose question has no data in the active pulse survey.
// It returns an empty list for regular surveys and for pages with page-specific filters.
func (r *Resolver) HiddenFilterIndexes() ([]int, error) {
	hidden := []int{}

	if r.host.ProjectSelectorNotNeeded() {
		return hidden, nil
	}
	specific, err := r.PageHasSpecificFilters()
	if err != nil || specific {
		return hidden, err
	}

	active := r.host.PulseItemsWithData()
	filters, err := r.ListFilterQuestions(Global)
	if err != nil {
		return nil, err
	}
	start, err := r.CountBackgroundFilters(Global)
	if err != nil {
		return nil, err
	}

	for i := start; i < len(filters); i++ {
		if !active[filters[i]] {
			hidden = append(hidden, i+1)
		}
	}
	return hidden, nil
}
