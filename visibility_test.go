package reportfilter_test

import (
	"testing"

	"github.com/ezachrisen/reportfilter"
	"github.com/matryer/is"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestIsFilterSlotHidden(t *testing.T) {

	cases := map[string]struct {
		host *mockHost
		typ  reportfilter.FilterType
		want []bool // hidden state of slots 1..len(want)
	}{
		"global panel on a page without its own filters": {
			host: newMockHost().globalFilters(list("gender", "region"), list("q1")),
			typ:  reportfilter.Global,
			want: []bool{false, false, false, true, true},
		},
		"page-specific slots on a page without its own filters": {
			host: newMockHost().globalFilters(list("gender", "region"), list("q1")),
			typ:  reportfilter.PageSpecific,
			want: []bool{true, true, true},
		},
		"global slots on a page with its own filters": {
			host: newMockHost().globalFilters(list("gender", "region"), list("q1")).pageFilters(list("dept"), list("q9")),
			typ:  reportfilter.Global,
			want: []bool{true, true, true},
		},
		"page-specific panel": {
			host: newMockHost().globalFilters(list("gender", "region"), list("q1")).pageFilters(list("dept"), list("q9")),
			typ:  reportfilter.PageSpecific,
			want: []bool{false, false, true},
		},
		"response rate page hides survey data filters": {
			host: func() *mockHost {
				m := newMockHost().globalFilters(list("gender", "region"), list("q1", "q2"))
				m.page = reportfilter.DefaultResponseRatePage
				return m
			}(),
			typ:  reportfilter.Global,
			want: []bool{false, false, true, true, true},
		},
	}

	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			is := is.New(t)
			r := reportfilter.NewResolver(c.host)
			for i, want := range c.want {
				hidden, err := r.IsFilterSlotHidden(c.typ, i+1)
				is.NoErr(err)
				is.Equal(hidden, want) // slot i+1
			}
		})
	}
}

// Once a slot is past the end of the list, every later slot is hidden too.
func TestIsFilterSlotHiddenMonotone(t *testing.T) {
	is := is.New(t)

	m := newMockHost().globalFilters(list("a", "b", "c"), list("d", "e"))
	r := reportfilter.NewResolver(m)

	n := 5
	for slot := 1; slot <= 20; slot++ {
		hidden, err := r.IsFilterSlotHidden(reportfilter.Global, slot)
		is.NoErr(err)
		is.Equal(hidden, slot > n)
	}
}

func TestResponseRatePageOption(t *testing.T) {
	is := is.New(t)

	m := newMockHost().globalFilters(list("a"), list("b"))
	m.page = "Page_RR"

	hidden, err := reportfilter.NewResolver(m).IsFilterSlotHidden(reportfilter.Global, 2)
	is.NoErr(err)
	is.True(!hidden)

	hidden, err = reportfilter.NewResolver(m, reportfilter.WithResponseRatePage("Page_RR")).IsFilterSlotHidden(reportfilter.Global, 2)
	is.NoErr(err)
	is.True(hidden)
}

func TestResponseRatePageLogsHiddenSlot(t *testing.T) {
	is := is.New(t)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m := newMockHost().globalFilters(list("a"), list("b"))
	m.page = reportfilter.DefaultResponseRatePage
	r := reportfilter.NewResolver(m, reportfilter.WithLogger(logger))

	hidden, err := r.IsFilterSlotHidden(reportfilter.Global, 2)
	is.NoErr(err)
	is.True(hidden)

	entry := hook.LastEntry()
	is.True(entry != nil)
	is.Equal(entry.Level, logrus.DebugLevel)
	is.Equal(entry.Data["slot"], 2)
	is.Equal(entry.Data["page"], reportfilter.DefaultResponseRatePage)
}

func TestHiddenFilterIndexes(t *testing.T) {

	t.Run("regular survey", func(t *testing.T) {
		is := is.New(t)
		m := newMockHost().globalFilters(list("gender"), list("q1", "q2"))
		idx, err := reportfilter.NewResolver(m).HiddenFilterIndexes()
		is.NoErr(err)
		is.Equal(idx, []int{})
	})

	t.Run("page with its own filters", func(t *testing.T) {
		is := is.New(t)
		m := newMockHost().globalFilters(list("gender"), list("q1", "q2")).pageFilters(list("dept"), list())
		m.pulse = true
		idx, err := reportfilter.NewResolver(m).HiddenFilterIndexes()
		is.NoErr(err)
		is.Equal(idx, []int{})
	})

	t.Run("pulse program", func(t *testing.T) {
		is := is.New(t)
		m := newMockHost().globalFilters(list("gender", "region"), list("q1", "q2", "q3"))
		m.pulse = true
		m.pulseItems = map[string]bool{"q2": true, "gender": false}
		idx, err := reportfilter.NewResolver(m).HiddenFilterIndexes()
		is.NoErr(err)
		is.Equal(idx, []int{3, 5}) // q1 and q3; background filters are never hidden
	})
}
