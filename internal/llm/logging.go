package llm

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/abhisek/cyberpath/internal/store"
)

// LoggingProvider is a decorator that records every mentor request as
// an event once its stream finishes.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.MentorEventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.MentorEventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) ModelID(tier Tier) string {
	return l.inner.ModelID(tier)
}

func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	start := time.Now()

	stream, err := l.inner.GenerateStream(ctx, req)
	if err != nil {
		l.record(req, start, err)
		return nil, err
	}

	return &loggingStream{inner: stream, provider: l, req: req, start: start}, nil
}

func (l *LoggingProvider) record(req Request, start time.Time, err error) {
	data := store.MentorEventData{
		Provider:  l.inner.Name(),
		Model:     l.inner.ModelID(req.Tier),
		Tier:      string(resolveTier(req.Tier)),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.Append(context.Background(), data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log mentor event: %v\n", logErr)
	}
}

// loggingStream records one event when the stream terminates, whether
// by io.EOF, an error, or an early Close.
type loggingStream struct {
	inner    Stream
	provider *LoggingProvider
	req      Request
	start    time.Time
	once     sync.Once
}

func (s *loggingStream) Recv() (Fragment, error) {
	frag, err := s.inner.Recv()
	if err != nil {
		s.once.Do(func() {
			if err == io.EOF {
				s.provider.record(s.req, s.start, nil)
			} else {
				s.provider.record(s.req, s.start, err)
			}
		})
	}
	return frag, err
}

func (s *loggingStream) Close() error {
	s.once.Do(func() {
		s.provider.record(s.req, s.start, nil)
	})
	return s.inner.Close()
}
