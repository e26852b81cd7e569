// Package snapshot serializes the full application state into a
// versioned JSON envelope. The same codec backs the local persistence
// path and the export/import path, so nothing here may depend on the
// transport.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/mod/semver"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/progress"
	"github.com/abhisek/cyberpath/internal/settings"
)

// Version is the envelope format version written by this codec.
// Envelopes with a different major version are rejected on decode.
const Version = "1.0"

// ErrMalformed marks an envelope that cannot be applied: invalid JSON,
// a missing version tag or answers slice, a failing schema check, or
// an incompatible version. Nothing is partially applied on this error.
var ErrMalformed = errors.New("malformed snapshot")

// State is the full tuple the envelope carries.
type State struct {
	Answers      *answers.Set
	SelectedRole *catalog.Role
	Progress     progress.Log
	Settings     settings.Settings
}

// Envelope is the wire form of a snapshot.
type Envelope struct {
	ExportVersion string             `json:"exportVersion"`
	ExportDate    time.Time          `json:"exportDate"`
	Answers       *answers.Set       `json:"answers"`
	SelectedRole  *catalog.Role      `json:"selectedRole"`
	Progress      progress.Log       `json:"progress"`
	Settings      *settings.Settings `json:"settings"`
}

// Encode wraps the state into an envelope stamped with the codec
// version and the given export time, and renders it as indented JSON.
func Encode(state State, now time.Time) ([]byte, error) {
	st := state.Settings
	env := Envelope{
		ExportVersion: Version,
		ExportDate:    now.UTC(),
		Answers:       state.Answers,
		SelectedRole:  state.SelectedRole,
		Progress:      state.Progress,
		Settings:      &st,
	}
	if env.Progress == nil {
		env.Progress = progress.Log{}
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode validates the raw envelope and unpacks it into a State.
// Missing optional slices are replaced by their defaults: nil selected
// role, empty progress log, default settings. A missing exportVersion
// or answers slice fails with ErrMalformed and no partial result.
func Decode(data []byte) (State, error) {
	if err := validateEnvelope(data); err != nil {
		return State{}, err
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !compatibleVersion(env.ExportVersion) {
		return State{}, fmt.Errorf("%w: unsupported export version %q", ErrMalformed, env.ExportVersion)
	}

	state := State{
		Answers:      env.Answers,
		SelectedRole: env.SelectedRole,
		Progress:     env.Progress,
		Settings:     settings.Default(),
	}
	if state.Progress == nil {
		state.Progress = progress.Log{}
	}
	if env.Settings != nil {
		state.Settings = env.Settings.Normalize()
	}
	return state, nil
}

// compatibleVersion accepts any envelope sharing this codec's major
// version. Versions are the bare "1.0" style, so they are prefixed
// for semver comparison.
func compatibleVersion(v string) bool {
	canonical := "v" + v
	if !semver.IsValid(canonical) {
		return false
	}
	return semver.Major(canonical) == semver.Major("v"+Version)
}
