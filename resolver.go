package reportfilter

import (
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Resolver determines the filters that apply to the current page and composes
// filter expressions from the end user's selections.
//
// A Resolver is bound to a Host for one page render. It holds no state of its own
// beyond its options; every operation reads the host afresh.
type Resolver struct {
	host Host
	opts ResolverOptions
}

// ResolverOptions holds the options used by the Resolver.
// See the functional definitions below for the meaning.
type ResolverOptions struct {
	Logger                 logrus.FieldLogger
	MaxPageSpecificFilters int
	ResponseRatePage       string
}

type ResolverOption func(o *ResolverOptions)

// NewResolver creates a resolver reading from the host.
func NewResolver(host Host, opts ...ResolverOption) *Resolver {
	r := Resolver{
		host: host,
		opts: ResolverOptions{
			MaxPageSpecificFilters: defaultMaxPageSpecific,
			ResponseRatePage:       DefaultResponseRatePage,
		},
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.MaxPageSpecificFilters < 0 {
		r.opts.MaxPageSpecificFilters = 0
	}
	if r.opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.opts.Logger = l
	}
	return &r
}

// WithLogger sets the logger used for debug output.
// Default: a logger that discards everything.
func WithLogger(l logrus.FieldLogger) ResolverOption {
	return func(o *ResolverOptions) {
		o.Logger = l
	}
}

// WithMaxPageSpecificFilters sets how many page-specific parameters ResetAllFilters
// clears. Pages differ in how many page-specific filters they have, and the number
// isn't known when resetting, so this is an upper bound across all pages.
// Negative values are treated as 0.
// Default: 10
func WithMaxPageSpecificFilters(n int) ResolverOption {
	return func(o *ResolverOptions) {
		o.MaxPageSpecificFilters = n
	}
}

// WithResponseRatePage sets the id of the page whose data only supports
// filters based on background variables.
// Default: Page_Response_Rate
func WithResponseRatePage(pageID string) ResolverOption {
	return func(o *ResolverOptions) {
		o.ResponseRatePage = pageID
	}
}

// Host returns the host the resolver reads from.
func (r *Resolver) Host() Host {
	return r.host
}

func (r *Resolver) log() logrus.FieldLogger {
	return r.opts.Logger.WithField("page", r.host.CurrentPageID())
}

func (r *Resolver) onResponseRatePage() bool {
	return r.host.CurrentPageID() == r.opts.ResponseRatePage
}

// surveyStrings decodes a survey property holding a list of strings.
func (r *Resolver) surveyStrings(key string) ([]string, bool, error) {
	v, ok := r.host.SurveyProperty(key)
	if !ok || v == nil {
		return nil, false, nil
	}
	var out []string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return nil, false, errors.Wrapf(ErrInvalidArgument, "survey property %s: %v", key, err)
	}
	return out, true, nil
}

// pageStrings decodes a page property holding a list of strings.
func (r *Resolver) pageStrings(pageID, key string) ([]string, bool, error) {
	v, ok := r.host.PageProperty(pageID, key)
	if !ok || v == nil {
		return nil, false, nil
	}
	var out []string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return nil, false, errors.Wrapf(ErrInvalidArgument, "page %s property %s: %v", pageID, key, err)
	}
	return out, true, nil
}

func (r *Resolver) pageString(pageID, key string) (string, error) {
	v, ok := r.host.PageProperty(pageID, key)
	if !ok || v == nil {
		return "", nil
	}
	var out string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return "", errors.Wrapf(ErrInvalidArgument, "page %s property %s: %v", pageID, key, err)
	}
	return out, nil
}

func (r *Resolver) surveyString(key string) (string, error) {
	v, ok := r.host.SurveyProperty(key)
	if !ok || v == nil {
		return "", nil
	}
	var out string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return "", errors.Wrapf(ErrInvalidArgument, "survey property %s: %v", key, err)
	}
	return out, nil
}

func (r *Resolver) surveyBool(key string) (bool, error) {
	v, ok := r.host.SurveyProperty(key)
	if !ok || v == nil {
		return false, nil
	}
	var out bool
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return false, errors.Wrapf(ErrInvalidArgument, "survey property %s: %v", key, err)
	}
	return out, nil
}
