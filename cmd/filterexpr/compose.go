package main

import (
	"fmt"

	"github.com/ezachrisen/reportfilter"
	"github.com/spf13/cobra"
)

var (
	hierNode  string
	waveID    string
	projectID string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print one of the specialised filter expressions",
	Long: `Print one of the specialised filter expressions.

An empty line means the filter doesn't apply (no constraint).

Examples:
  filterexpr compose wave --host page.yaml
  filterexpr compose time interview_start --host page.yaml
  filterexpr compose kpi KPIPositiveAnswerCodes --host page.yaml
  filterexpr compose hierarchy --node 1001 --host page.yaml`,
}

// composer builds an expression with a resolver and the command arguments.
type composer func(r *reportfilter.Resolver, args []string) (reportfilter.Expr, error)

func composeCommand(use, short string, args cobra.PositionalArgs, c composer) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, a []string) error {
			_, r, err := load()
			if err != nil {
				return err
			}
			e, err := c(r, a)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reportfilter.Render(e))
			return nil
		},
	}
}

func noError(e reportfilter.Expr) (reportfilter.Expr, error) { return e, nil }

func init() {
	composeCmd.AddCommand(
		composeCommand("wave", "Selected wave", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return r.CurrentWaveExpression()
			}),
		composeCommand("time <date-question>", "Selected time period", cobra.ExactArgs(1),
			func(r *reportfilter.Resolver, a []string) (reportfilter.Expr, error) {
				return r.TimePeriodFilter(a[0])
			}),
		composeCommand("kpi <group>", "KPI answer group (KPIPositiveAnswerCodes, KPINegativeAnswerCodes)", cobra.ExactArgs(1),
			func(r *reportfilter.Resolver, a []string) (reportfilter.Expr, error) {
				return r.FilterByKPIGroup(a[0])
			}),
		composeCommand("own-actions", "Only the user's own actions", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return noError(r.OnlyOwnActionsExpression())
			}),
		composeCommand("hitlist", "Only the user's own actions in the actions hitlist", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return noError(r.OnlyOwnActionsInHitlistExpression())
			}),
		composeCommand("registered", "Only registered actions", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return noError(r.ExcludeNotRegisteredActions())
			}),
		composeCommand("end-users", "Selected end users", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return r.SelectedEndUsersExpression()
			}),
		composeCommand("project", "Selected pulse project", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return noError(r.ProjectSelectorInPulseProgram())
			}),
		composeCommand("pulse-list", "Pulse surveys visible to the user", cobra.NoArgs,
			func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
				return noError(r.PulseSurveyListFilter())
			}),
		composeCommand("comments <question>...", "Records with a non-blank comment", cobra.MinimumNArgs(1),
			func(_ *reportfilter.Resolver, a []string) (reportfilter.Expr, error) {
				return noError(reportfilter.NotEmptyCommentsFilter(a))
			}),
	)

	hierarchyCmd := composeCommand("hierarchy", "Project, hierarchy and wave", cobra.NoArgs,
		func(r *reportfilter.Resolver, _ []string) (reportfilter.Expr, error) {
			return r.HierarchyAndWaveFilter(hierNode, waveID, projectID)
		})
	hierarchyCmd.Flags().StringVar(&hierNode, "node", "", "Hierarchy node (default: current report base)")
	hierarchyCmd.Flags().StringVar(&waveID, "wave", "", "Wave code (default: selected wave)")
	hierarchyCmd.Flags().StringVar(&projectID, "project", "", "Project id (default: selected project)")
	composeCmd.AddCommand(hierarchyCmd)
}
