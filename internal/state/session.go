// Package state owns the process-wide user session: questionnaire
// answers, the chosen role, roadmap progress, and UI settings. Every
// accepted mutation is followed by an explicit write-through sync so
// the on-disk snapshot never lags user intent.
package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/progress"
	"github.com/abhisek/cyberpath/internal/scoring"
	"github.com/abhisek/cyberpath/internal/settings"
	"github.com/abhisek/cyberpath/internal/snapshot"
)

// Saver persists an encoded session snapshot.
type Saver interface {
	Save(ctx context.Context, data []byte) error
}

// Session is the single mutable holder of user state. It is not safe
// for concurrent use; the TUI drives it from one goroutine.
type Session struct {
	answers  *answers.Set
	role     *catalog.Role
	progress progress.Log
	settings settings.Settings

	saver Saver
	now   func() time.Time
}

// NewSession creates an empty session backed by the given saver.
func NewSession(saver Saver) *Session {
	return &Session{
		answers:  answers.New(catalog.Questions()),
		progress: progress.Log{},
		settings: settings.Default(),
		saver:    saver,
		now:      time.Now,
	}
}

// Restore builds a session from a previously persisted snapshot. A
// snapshot that fails to decode is discarded with a warning and a
// fresh session is returned; stored state is never allowed to wedge
// startup.
func Restore(data []byte, saver Saver) *Session {
	s := NewSession(saver)
	if len(data) == 0 {
		return s
	}

	restored, err := snapshot.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding saved state: %v\n", err)
		return s
	}

	s.apply(restored)
	return s
}

// apply replaces the session contents with a decoded snapshot state.
func (s *Session) apply(st snapshot.State) {
	if st.Answers != nil {
		s.answers = st.Answers
	} else {
		s.answers = answers.New(catalog.Questions())
	}
	s.role = st.SelectedRole
	s.progress = st.Progress
	if s.progress == nil {
		s.progress = progress.Log{}
	}
	s.settings = st.Settings.Normalize()
}

// snapshotState captures the current session as a codec state.
func (s *Session) snapshotState() snapshot.State {
	return snapshot.State{
		Answers:      s.answers,
		SelectedRole: s.role,
		Progress:     s.progress,
		Settings:     s.settings,
	}
}

// sync writes the current state through the saver. Persistence
// failures are reported on stderr but never fail the mutation; the
// in-memory session stays authoritative.
func (s *Session) sync(ctx context.Context) {
	if s.saver == nil {
		return
	}
	data, err := snapshot.Encode(s.snapshotState(), s.now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode state: %v\n", err)
		return
	}
	if err := s.saver.Save(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save state: %v\n", err)
	}
}

// Answers returns the live answer set. Mutate it only through the
// session methods so changes are persisted.
func (s *Session) Answers() *answers.Set { return s.answers }

// SelectedRole returns the chosen role, or nil before selection.
func (s *Session) SelectedRole() *catalog.Role { return s.role }

// Progress returns the roadmap progress log.
func (s *Session) Progress() progress.Log { return s.progress }

// Settings returns the current UI settings.
func (s *Session) Settings() settings.Settings { return s.settings }

// Roadmap returns the roadmap for the selected role, if any.
func (s *Session) Roadmap() (catalog.Roadmap, bool) {
	if s.role == nil {
		return catalog.Roadmap{}, false
	}
	roadmap, err := catalog.RoadmapForRole(*s.role)
	if err != nil {
		return catalog.Roadmap{}, false
	}
	return roadmap, true
}

// Snapshot captures the session as a codec state, for export.
func (s *Session) Snapshot() snapshot.State {
	return s.snapshotState()
}

// AnswerSingle records a single-choice answer.
func (s *Session) AnswerSingle(ctx context.Context, questionID, value string) {
	s.answers.Select(questionID, value)
	s.sync(ctx)
}

// ToggleMulti toggles a value in a multi-choice answer.
func (s *Session) ToggleMulti(ctx context.Context, questionID, value string) {
	s.answers.Toggle(questionID, value)
	s.sync(ctx)
}

// ClearAnswer removes any answer for the question.
func (s *Session) ClearAnswer(ctx context.Context, questionID string) {
	s.answers.Clear(questionID)
	s.sync(ctx)
}

// Recommendations ranks roles against the current answers.
func (s *Session) Recommendations() []scoring.Recommendation {
	return scoring.Rank(s.answers)
}

// SelectRole commits to a role. Progress is kept: re-selecting the
// same role after a detour must not lose completed topics.
func (s *Session) SelectRole(ctx context.Context, role catalog.Role) {
	s.role = &role
	s.sync(ctx)
}

// ClearRole returns the session to the undecided state.
func (s *Session) ClearRole(ctx context.Context) {
	s.role = nil
	s.sync(ctx)
}

// ToggleTopic marks a topic complete or not.
func (s *Session) ToggleTopic(ctx context.Context, topicID string, completed bool) {
	s.progress = s.progress.ToggleComplete(topicID, completed, s.now())
	s.sync(ctx)
}

// LogHours records study hours against a topic.
func (s *Session) LogHours(ctx context.Context, topicID string, hours float64) {
	s.progress = s.progress.LogHours(topicID, hours)
	s.sync(ctx)
}

// SaveNotes stores free-form notes on a topic.
func (s *Session) SaveNotes(ctx context.Context, topicID, notes string) {
	s.progress = s.progress.SaveNotes(topicID, notes)
	s.sync(ctx)
}

// NextTopic suggests the next unlocked, incomplete topic on the
// selected role's roadmap.
func (s *Session) NextTopic() (catalog.Topic, bool) {
	roadmap, ok := s.Roadmap()
	if !ok {
		return catalog.Topic{}, false
	}
	return progress.NextTopic(roadmap, s.progress)
}

// Stats aggregates progress over the selected role's roadmap.
func (s *Session) Stats() (progress.Stats, bool) {
	roadmap, ok := s.Roadmap()
	if !ok {
		return progress.Stats{}, false
	}
	return progress.Aggregate(roadmap, s.progress), true
}

// UpdateSettings replaces the UI settings, normalizing unknown values.
func (s *Session) UpdateSettings(ctx context.Context, cfg settings.Settings) {
	s.settings = cfg.Normalize()
	s.sync(ctx)
}

// Export encodes the session for sharing as a JSON file.
func (s *Session) Export() ([]byte, error) {
	return snapshot.Encode(s.snapshotState(), s.now())
}

// ErrImport wraps a failed import so callers can distinguish it from
// persistence errors.
var ErrImport = errors.New("import failed")

// Import replaces the whole session from an exported snapshot. On
// decode failure the current state is left untouched.
func (s *Session) Import(ctx context.Context, data []byte) error {
	restored, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	s.apply(restored)
	s.sync(ctx)
	return nil
}

// Reset discards all user state and persists the empty session.
func (s *Session) Reset(ctx context.Context) {
	s.answers = answers.New(catalog.Questions())
	s.role = nil
	s.progress = progress.Log{}
	s.settings = settings.Default()
	s.sync(ctx)
}
