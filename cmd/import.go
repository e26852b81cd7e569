package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace local state with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm("This overwrites your local answers and progress. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session := loadSession(cmd, st)
		if err := session.Import(cmd.Context(), data); err != nil {
			return err
		}

		fmt.Println("Imported", args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

// confirm prompts on stdin for a yes/no answer.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
