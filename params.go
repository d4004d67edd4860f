package reportfilter

// ResetAllFilters clears the parameters of every global filter and of the first
// MaxPageSpecificFilters page-specific filters.
func (r *Resolver) ResetAllFilters() error {
	global, err := r.ListFilterQuestions(Global)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(global)+r.opts.MaxPageSpecificFilters)
	for i := range global {
		names = append(names, ParameterName(Global, i+1))
	}
	for i := 0; i < r.opts.MaxPageSpecificFilters; i++ {
		names = append(names, ParameterName(PageSpecific, i+1))
	}

	r.log().WithField("parameters", len(names)).Debug("resetting filters")
	r.host.Reset(names...)
	return nil
}

// slotQuestion returns the question of the slot, or false if the panel has no such slot.
func (r *Resolver) slotQuestion(t FilterType, slot int) (string, bool, error) {
	list, err := r.ListFilterQuestions(t)
	if err != nil {
		return "", false, err
	}
	if slot < 1 || slot > len(list) {
		return "", false, nil
	}
	return list[slot-1], true, nil
}

// SlotTitle returns the title of the question behind the slot, or "" if there is no such slot.
func (r *Resolver) SlotTitle(t FilterType, slot int) (string, error) {
	qid, ok, err := r.slotQuestion(t, slot)
	if err != nil || !ok {
		return "", err
	}
	return r.host.QuestionTitle(qid), nil
}

// SlotOptions returns the answers the host should offer in the slot's parameter,
// or nil if there is no such slot.
func (r *Resolver) SlotOptions(t FilterType, slot int) ([]Answer, error) {
	qid, ok, err := r.slotQuestion(t, slot)
	if err != nil || !ok {
		return nil, err
	}
	return r.host.QuestionAnswers(qid), nil
}

// FilterValue is a filter with a selection, labelled with its question title.
type FilterValue struct {
	Label           string
	SelectedOptions []Option
}

// FilterValues returns the filters of the panel of type t that have a selection, in panel order.
func (r *Resolver) FilterValues(t FilterType) (FilterValues, error) {
	list, err := r.ListFilterQuestions(t)
	if err != nil {
		return nil, err
	}

	values := FilterValues{}
	for i, qid := range list {
		selected := r.host.SelectedOptions(ParameterName(t, i+1))
		if len(selected) == 0 {
			continue
		}
		values = append(values, FilterValue{
			Label:           r.host.QuestionTitle(qid),
			SelectedOptions: selected,
		})
	}
	return values, nil
}
