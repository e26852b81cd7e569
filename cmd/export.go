package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/cyberpath/internal/snapshot"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write your answers, path, and progress to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session := loadSession(cmd, st)

		path := snapshot.DefaultExportName(time.Now())
		if len(args) == 1 {
			path = args[0]
		}
		if err := snapshot.WriteFile(path, session.Snapshot(), time.Now()); err != nil {
			return fmt.Errorf("write export: %w", err)
		}

		fmt.Println("Exported to", path)
		return nil
	},
}
