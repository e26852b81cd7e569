package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/store"
	"github.com/spf13/cobra"
)

// loadSession restores the saved session for headless commands.
func loadSession(cmd *cobra.Command, st *store.Store) *state.Session {
	repo := st.StateRepo()

	var data []byte
	if persisted, err := repo.Latest(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load saved state: %v\n", err)
	} else if persisted != nil {
		data = persisted.Data
	}

	return state.Restore(data, repo)
}
