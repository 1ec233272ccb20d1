package commands

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skill levels and per-category averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		writeSkills(cmd.OutOrStdout(), portfolio.DefaultCatalog())
		return nil
	},
}

func writeSkills(w io.Writer, c *portfolio.Catalog) {
	nameWidth := 0
	for _, s := range c.Skills {
		nameWidth = max(nameWidth, runewidth.StringWidth(s.Name))
	}

	for _, s := range c.Skills {
		fmt.Fprintf(w, "%s %s %3d%%  %s\n", pad(s.Name, nameWidth), bar(float64(s.Level)), s.Level, s.Category)
	}

	fmt.Fprintln(w, "\nDistribution")
	for _, avg := range portfolio.Distribution(c.Skills, c.Categories) {
		fmt.Fprintf(w, "%s %s %5.1f%%  (%d skills)\n", pad(avg.Category, nameWidth), bar(avg.Average), avg.Average, avg.Count)
	}
}
