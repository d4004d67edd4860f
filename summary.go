package reportfilter

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FilterValues is the list of filters with a selection, as shown in the
// "applied filters" summary of a report.
type FilterValues []FilterValue

// String produces a table of the filters and their selected options.
func (v FilterValues) String() string {

	tw := table.NewWriter()
	tw.SetTitle("\nAPPLIED FILTERS\n")
	tw.AppendHeader(table.Row{"\n#", "\nFilter", "\nSelected", "Sel-\nected\nCodes"})

	for i, f := range v {
		tw.AppendRow(table.Row{
			humanize.Ordinal(i + 1),
			f.Label,
			strings.Join(labels(f.SelectedOptions), ", "),
			strings.Join(codes(f.SelectedOptions), ","),
		})
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

// Labels returns one "title: option, option" line per filter.
func (v FilterValues) Labels() []string {
	out := make([]string, len(v))
	for i, f := range v {
		out[i] = f.Label + ": " + strings.Join(labels(f.SelectedOptions), ", ")
	}
	return out
}

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
		if out[i] == "" {
			out[i] = o.Code
		}
	}
	return out
}

func codes(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Code
	}
	return out
}
