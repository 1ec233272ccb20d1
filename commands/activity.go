package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio-dashboard/internal/activity"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

var timeRange string

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Print the contribution activity chart",
	Long: `Print the monthly commit and pull request bars for a time range.

Ranges: week (current month), month (last two months), year (every active month).
Bars are scaled against the busiest month of the whole year and never drop below 5%.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		d, err := activity.NewDataset(portfolio.Activity, cfg.CurrentMonth)
		if err != nil {
			return fmt.Errorf("failed to load activity data: %w", err)
		}
		writeActivity(cmd.OutOrStdout(), d, activity.ParseRange(timeRange))
		return nil
	},
}

func init() {
	activityCmd.Flags().StringVarP(&timeRange, "range", "r", string(activity.RangeMonth),
		"Time range: week, month or year")
}

func writeActivity(w io.Writer, d *activity.Dataset, r activity.Range) {
	fmt.Fprintf(w, "%s\n%s\n\n", d.Label(r), d.Caption(r))
	for _, b := range d.Chart(r) {
		fmt.Fprintf(w, "%s commits %s %4d\n", pad(b.Month.Month, 5), bar(b.CommitWidth), b.Commits)
		fmt.Fprintf(w, "%s PRs     %s %4d\n", pad("", 5), bar(b.PRWidth), b.PullRequests)
	}

	s := d.Summarize()
	fmt.Fprintf(w, "\nTotal: %d commits, %d pull requests across %d active months (avg %.1f commits)\n",
		s.TotalCommits, s.TotalPullRequests, s.ActiveMonths, s.AvgCommits)
}
