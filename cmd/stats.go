package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show roadmap progress and mentor usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session := loadSession(cmd, st)

		role := session.SelectedRole()
		if role == nil {
			fmt.Println("No career path selected yet.")
		} else {
			fmt.Printf("Path: %s\n", role.Name)
			if stats, ok := session.Stats(); ok {
				fmt.Printf("Topics: %d/%d complete (%d%%)\n",
					stats.CompletedTopics, stats.TotalTopics, stats.CompletionPercent)
				fmt.Printf("Hours logged: %g\n", stats.TotalHoursLogged)
			}
			if next, ok := session.NextTopic(); ok {
				fmt.Printf("Up next: %s (%dh)\n", next.Title, next.EstimatedHours)
			}
		}

		usage, err := st.MentorEventRepo().Usage(cmd.Context())
		if err != nil {
			return fmt.Errorf("mentor usage: %w", err)
		}
		fmt.Printf("Mentor requests: %d (%d failed)\n", usage.Requests, usage.Failures)
		return nil
	},
}
