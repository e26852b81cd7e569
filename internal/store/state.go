package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cyberpath/ent"
	"github.com/abhisek/cyberpath/ent/statesnapshot"
)

// keepSnapshots is how many snapshot rows survive a prune. The latest
// row is what restore uses; the rest are short-lived insurance.
const keepSnapshots = 10

// PersistedState is one stored snapshot envelope.
type PersistedState struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// StateRepo persists the application snapshot envelope.
type StateRepo interface {
	// Save stores a new snapshot envelope and prunes old rows.
	Save(ctx context.Context, data []byte) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*PersistedState, error)

	// Reset deletes all stored snapshots.
	Reset(ctx context.Context) error
}

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Save(ctx context.Context, data []byte) error {
	seq, err := r.nextSequence(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.StateSnapshot.Create().
		SetSequence(seq).
		SetTimestamp(time.Now()).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save state snapshot: %w", err)
	}

	return r.prune(ctx, keepSnapshots)
}

func (r *stateRepo) Latest(ctx context.Context) (*PersistedState, error) {
	s, err := r.client.StateSnapshot.Query().
		Order(ent.Desc(statesnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest state snapshot: %w", err)
	}
	return &PersistedState{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *stateRepo) Reset(ctx context.Context) error {
	if _, err := r.client.StateSnapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset state snapshots: %w", err)
	}
	return nil
}

func (r *stateRepo) nextSequence(ctx context.Context) (int64, error) {
	last, err := r.client.StateSnapshot.Query().
		Order(ent.Desc(statesnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("query last sequence: %w", err)
	}
	return last.Sequence + 1, nil
}

// prune deletes all but the keep most recent snapshots.
func (r *stateRepo) prune(ctx context.Context, keep int) error {
	old, err := r.client.StateSnapshot.Query().
		Order(ent.Desc(statesnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(old) == 0 {
		return nil
	}

	_, err = r.client.StateSnapshot.Delete().
		Where(statesnapshot.SequenceLTE(old[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
