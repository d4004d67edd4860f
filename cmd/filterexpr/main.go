// Command filterexpr resolves the filter panel of a report page described by a host document
// and prints the filter expressions the report engine would receive.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ezachrisen/reportfilter"
	"github.com/ezachrisen/reportfilter/statichost"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	hostFile     string
	logLevel     string
	pageSpecific bool

	// Panel flags
	panelType    string
	panelClass   string
	panelExplain bool

	log = logrus.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "filterexpr",
	Short: "Resolve report filter panels and print filter expressions",
	Long: `filterexpr reads a host document (YAML) describing a report page render:
survey and page configuration, the end user and their parameter selections.
It prints the filter slots of the page and the filter expressions composed from
the selections.

Examples:
  # Show the filter slots of the page
  filterexpr slots --host page.yaml

  # Print the filter panel expression
  filterexpr panel --host page.yaml

  # Only filters based on background variables
  filterexpr panel --host page.yaml --class background

  # Preview which records the panel expression selects
  filterexpr preview --host page.yaml --records records.json`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		log.SetOutput(os.Stderr)
		return nil
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List the filter slots of the page and whether they are hidden",
	RunE:  runSlots,
}

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Print the filter panel expression",
	Long: `Print the expression composed from all filter panel selections.

Flags:
  --type    global or pageSpecific; default is the panel the page shows
  --class   all, background or survey
  --explain print the expression tree as a table`,
	RunE: runPanel,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the applied filters",
	RunE:  runSummary,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all filter parameters and print the parameters left with a selection",
	RunE:  runReset,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostFile, "host", "", "Host document (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().BoolVar(&pageSpecific, "page-specific", false, "Render context is the page-specific panel")
	_ = rootCmd.MarkPersistentFlagRequired("host")

	panelCmd.Flags().StringVar(&panelType, "type", "", "Filter type: global or pageSpecific")
	panelCmd.Flags().StringVar(&panelClass, "class", "all", "Variable class: all, background or survey")
	panelCmd.Flags().BoolVar(&panelExplain, "explain", false, "Print the expression tree")
	previewCmd.Flags().StringVar(&panelType, "type", "", "Filter type: global or pageSpecific")
	previewCmd.Flags().StringVar(&panelClass, "class", "all", "Variable class: all, background or survey")

	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(previewCmd)
}

// load reads the host document and creates a resolver for it.
func load() (*statichost.Host, *reportfilter.Resolver, error) {
	h, err := statichost.LoadFile(hostFile)
	if err != nil {
		return nil, nil, err
	}
	return h, reportfilter.NewResolver(h, reportfilter.WithLogger(log)), nil
}

func runSlots(cmd *cobra.Command, _ []string) error {
	_, r, err := load()
	if err != nil {
		return err
	}

	t := reportfilter.ResolveFilterType(pageSpecific)
	slots, err := r.FilterSlots(t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s filters: %d\n", t, len(slots))
	for _, s := range slots {
		hidden, err := r.IsFilterSlotHidden(t, s.Index)
		if err != nil {
			return err
		}
		title, err := r.SlotTitle(t, s.Index)
		if err != nil {
			return err
		}
		state := "shown"
		if hidden {
			state = "hidden"
		}
		fmt.Fprintf(out, "  %-4s %-40s %-24s %s\n",
			humanize.Ordinal(s.Index), reportfilter.ParameterName(t, s.Index), title, state)
	}

	pulseHidden, err := r.HiddenFilterIndexes()
	if err != nil {
		return err
	}
	if len(pulseHidden) > 0 {
		fmt.Fprintf(out, "hidden in pulse survey: %v\n", pulseHidden)
	}
	return nil
}

// panelOptions converts the --type and --class flags.
func panelOptions() ([]reportfilter.PanelOption, error) {
	var opts []reportfilter.PanelOption

	switch panelType {
	case "":
	case reportfilter.Global.String():
		opts = append(opts, reportfilter.WithFilterType(reportfilter.Global))
	case reportfilter.PageSpecific.String():
		opts = append(opts, reportfilter.WithFilterType(reportfilter.PageSpecific))
	default:
		return nil, errors.Errorf("unknown filter type %q", panelType)
	}

	switch strings.ToLower(panelClass) {
	case "", "all":
	case "background":
		opts = append(opts, reportfilter.WithVariableClass(reportfilter.Background))
	case "survey":
		opts = append(opts, reportfilter.WithVariableClass(reportfilter.Survey))
	default:
		return nil, errors.Errorf("unknown variable class %q", panelClass)
	}
	return opts, nil
}

func runPanel(cmd *cobra.Command, _ []string) error {
	_, r, err := load()
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
	if panelExplain {
		fmt.Fprintln(cmd.OutOrStdout(), reportfilter.Diagnose(e).String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), reportfilter.Render(e))
	return nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	_, r, err := load()
	if err != nil {
		return err
	}
	values, err := r.FilterValues(reportfilter.ResolveFilterType(pageSpecific))
	if err != nil {
		return err
	}
	if len(values) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no filters applied")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), values.String())
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	h, r, err := load()
	if err != nil {
		return err
	}
	if err := r.ResetAllFilters(); err != nil {
		return err
	}
	for _, name := range h.ParameterNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
