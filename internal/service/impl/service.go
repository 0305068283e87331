// Package impl is a simulated implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/metrics"
	"github.com/Decentr-net/calliope/internal/service"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// Config contains simulated latencies of calls.
type Config struct {
	IdeasLatency        time.Duration
	HashtagsLatency     time.Duration
	PostingTimesLatency time.Duration

	// Now is used for suggestion dates and ids, time.Now if nil.
	Now func() time.Time
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		IdeasLatency:        1500 * time.Millisecond,
		HashtagsLatency:     500 * time.Millisecond,
		PostingTimesLatency: 300 * time.Millisecond,
	}
}

type srv struct {
	c Config
}

// New creates new instance of service.
func New(c Config) service.Service {
	if c.Now == nil {
		c.Now = time.Now
	}

	return srv{
		c: c,
	}
}

func (s srv) GenerateContentIdeas(ctx context.Context, p service.IdeasParams) (_ []entities.AIContentSuggestion, err error) {
	defer func(start time.Time) { metrics.ObserveAI("ideas", start, err) }(time.Now())

	p.Topic, p.TargetAudience = strings.TrimSpace(p.Topic), strings.TrimSpace(p.TargetAudience)
	if p.Topic == "" || p.TargetAudience == "" || !p.Platform.Valid() {
		return nil, fmt.Errorf("%w: topic, audience and valid platform are required", service.ErrInvalidParams)
	}

	if err := wait(ctx, s.c.IdeasLatency); err != nil {
		return nil, err
	}

	out := ideas(p, s.c.Now())
	log.WithField("topic", p.Topic).WithField("platform", p.Platform).Debugf("generated %d ideas", len(out))

	return out, nil
}

func (s srv) GenerateHashtags(ctx context.Context, topic string, platform entities.Platform) (_ []string, err error) {
	defer func(start time.Time) { metrics.ObserveAI("hashtags", start, err) }(time.Now())

	topic = strings.TrimSpace(topic)
	if topic == "" || !platform.Valid() {
		return nil, fmt.Errorf("%w: topic and valid platform are required", service.ErrInvalidParams)
	}

	if err := wait(ctx, s.c.HashtagsLatency); err != nil {
		return nil, err
	}

	return []string{
		"#" + strings.ToLower(slug(topic)),
		"#viral",
		"#trending",
		"#fyp",
		"#content",
	}, nil
}

func (s srv) GetOptimalPostingTimes(ctx context.Context, platform entities.Platform) (_ []entities.PostingTime, err error) {
	defer func(start time.Time) { metrics.ObserveAI("posting_times", start, err) }(time.Now())

	times, ok := postingTimes[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownPlatform, platform)
	}

	if err := wait(ctx, s.c.PostingTimesLatency); err != nil {
		return nil, err
	}

	return append([]entities.PostingTime{}, times...), nil
}

func (s srv) Name() string {
	return "ai"
}

// Ping checks the assistant without simulated latency, calls are not observed.
func (s srv) Ping(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return map[string]int{"platforms": len(postingTimes)}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
