package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cyberpath/ent"
	"github.com/abhisek/cyberpath/ent/mentorevent"
)

// MentorEventData captures one mentor request for usage statistics.
type MentorEventData struct {
	Provider     string
	Model        string
	Tier         string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// MentorUsage summarizes recorded mentor requests.
type MentorUsage struct {
	Requests int
	Failures int
}

// MentorEventRepo records mentor requests.
type MentorEventRepo interface {
	// Append records a mentor request event.
	Append(ctx context.Context, data MentorEventData) error

	// Usage returns aggregate counts over all recorded events.
	Usage(ctx context.Context) (MentorUsage, error)
}

// mentorEventRepo implements MentorEventRepo using the ent client.
type mentorEventRepo struct {
	client *ent.Client
}

func (r *mentorEventRepo) Append(ctx context.Context, data MentorEventData) error {
	_, err := r.client.MentorEvent.Create().
		SetTimestamp(time.Now()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetTier(data.Tier).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append mentor event: %w", err)
	}
	return nil
}

func (r *mentorEventRepo) Usage(ctx context.Context) (MentorUsage, error) {
	total, err := r.client.MentorEvent.Query().Count(ctx)
	if err != nil {
		return MentorUsage{}, fmt.Errorf("count mentor events: %w", err)
	}
	failed, err := r.client.MentorEvent.Query().
		Where(mentorevent.Success(false)).
		Count(ctx)
	if err != nil {
		return MentorUsage{}, fmt.Errorf("count failed mentor events: %w", err)
	}
	return MentorUsage{Requests: total, Failures: failed}, nil
}
