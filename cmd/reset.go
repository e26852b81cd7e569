package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all saved answers, progress, and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This permanently deletes your saved state. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.StateRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}

		fmt.Println("All saved state deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
