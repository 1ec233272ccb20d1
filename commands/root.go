package commands

import (
	"github.com/spf13/cobra"
)

var (
	port         string
	currentMonth string

	rootCmd = &cobra.Command{
		Use:   "portfolio [flags]",
		Short: "Personal portfolio dashboard",
		Long: `portfolio serves a single-page developer dashboard: profile, animated stat counters,
project gallery, skills breakdown, activity chart and a contact form.

Settings come from the environment or a .env file (PORT, PREFERENCE_DB, CONTACT_EMAIL, ...).

Examples:
  portfolio                            # Serve on $PORT (default 8080)
  portfolio serve --port 9000          # Serve on another port
  portfolio activity --range year      # Print the activity chart
  portfolio skills                     # Print the skill distribution`,
		RunE: runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&currentMonth, "current-month", "",
		"Label of the current activity month (overrides ACTIVITY_CURRENT_MONTH)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")

	rootCmd.AddCommand(serveCmd, activityCmd, skillsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
