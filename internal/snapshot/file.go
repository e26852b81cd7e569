package snapshot

import (
	"fmt"
	"os"
	"time"
)

// DefaultExportName returns the conventional export file name for the
// given day, e.g. "cyber-roadmap-2025-06-01.json".
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("cyber-roadmap-%s.json", now.Format("2006-01-02"))
}

// WriteFile encodes the state and writes it to path.
func WriteFile(path string, state State, now time.Time) error {
	data, err := Encode(state, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

// ReadFile reads and decodes a snapshot file. Decode failures carry
// ErrMalformed so callers can reject the import without state change.
func ReadFile(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read snapshot file: %w", err)
	}
	return Decode(data)
}
