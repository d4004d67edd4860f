package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ezachrisen/reportfilter"
	"github.com/ezachrisen/reportfilter/cel"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var recordsFile string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Apply the filter panel expression to a file of records",
	Long: `Apply the filter panel expression to a JSON file holding a list of records
and print the records it selects.

Each record maps question ids to answers. String values in ISO date format
(2006-01-02) are treated as dates.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&recordsFile, "records", "", "JSON file with a list of records")
	_ = previewCmd.MarkFlagRequired("records")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	h, r, err := load()
	if err != nil {
		return err
	}
	opts, err := panelOptions()
	if err != nil {
		return err
	}
	e, err := r.PanelExpression(opts...)
	if err != nil {
		return err
	}

	records, err := readRecords(recordsFile)
	if err != nil {
		return err
	}

	params := map[string][]string{}
	for _, name := range h.ParameterNames() {
		params[name] = h.SelectedCodes(name)
	}
	ev, err := cel.NewEvaluator(cel.ParameterValues(params))
	if err != nil {
		return err
	}

	matched, err := ev.Filter(e, records)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "filter: %s\n", reportfilter.Render(e))
	fmt.Fprintf(out, "matched %d of %d records\n", len(matched), len(records))
	enc := json.NewEncoder(out)
	for _, rec := range matched {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func readRecords(path string) ([]cel.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading records")
	}
	var records []cel.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	for _, rec := range records {
		for k, v := range rec {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if t, err := time.Parse("2006-01-02", s); err == nil {
				rec[k] = t
			}
		}
	}
	return records, nil
}
