package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the top career matches from your saved answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session := loadSession(cmd, st)
		if !session.Answers().Answered("q1") {
			fmt.Println("No answers yet. Run `cyberpath` and take the career quiz first.")
			return nil
		}

		for i, rec := range session.Recommendations() {
			fmt.Printf("#%d  %-38s %3d%% match\n", i+1, rec.Role.Name, rec.MatchPercent)
			fmt.Printf("    %s\n", rec.Role.Description)
			fmt.Printf("    Salary: %s\n", rec.Role.SalaryRange)
			fmt.Printf("    Skills: %s\n\n", strings.Join(rec.Role.KeySkills, ", "))
		}
		return nil
	},
}
