// Package service contains interface of the AI content assistant.
package service

import (
	"context"
	"errors"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/health"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrInvalidParams is returned when topic or audience is empty, or platform is invalid.
	ErrInvalidParams = errors.New("invalid params")
	// ErrUnknownPlatform ...
	ErrUnknownPlatform = errors.New("unknown platform")
)

// IdeasParams ...
type IdeasParams struct {
	Topic          string
	TargetAudience string
	Platform       entities.Platform
}

// Service is an AI content assistant.
// Every call blocks until the result is ready or ctx is done, in which case ctx.Err() is returned.
type Service interface {
	health.Pinger

	// GenerateContentIdeas returns 5 content suggestions for the topic.
	GenerateContentIdeas(ctx context.Context, p IdeasParams) ([]entities.AIContentSuggestion, error)
	GenerateHashtags(ctx context.Context, topic string, platform entities.Platform) ([]string, error)
	// GetOptimalPostingTimes returns 3 best posting slots of the platform.
	GetOptimalPostingTimes(ctx context.Context, platform entities.Platform) ([]entities.PostingTime, error)
}
