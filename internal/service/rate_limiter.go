package service

import (
	"context"
	"time"

	"github.com/folio/backend/internal/model"
)

// SubmissionHistory is the slice of the store the rate limiter depends on.
type SubmissionHistory interface {
	CountSince(ctx context.Context, sourceAddress string, since time.Time) (int, error)
}

// RateLimiter decides whether a source address may submit again, by counting
// prior persisted submissions inside a trailing window. The window slides with
// "now"; nothing is bucketed or cached, so the decision always reflects the
// latest committed history and survives process restarts.
//
// The empty source address is a real key: every unknown-origin submission
// draws from one shared quota. That mirrors how submissions are stored and is
// a known denial surface when many clients present without an address.
type RateLimiter struct {
	history SubmissionHistory
	policy  model.RateLimitPolicy
}

// NewRateLimiter creates a RateLimiter over the given history. Non-positive
// policy values fall back to the defaults.
func NewRateLimiter(history SubmissionHistory, policy model.RateLimitPolicy) *RateLimiter {
	if policy.MaxRequests <= 0 {
		policy.MaxRequests = model.DefaultRateLimitMax
	}
	if policy.Window <= 0 {
		policy.Window = model.DefaultRateLimitWindow
	}
	return &RateLimiter{history: history, policy: policy}
}

// Policy returns the effective quota policy.
func (l *RateLimiter) Policy() model.RateLimitPolicy {
	return l.policy
}

// Allow reports whether a submission from sourceAddress may proceed at "now".
// It denies once the window already holds MaxRequests submissions, so with the
// default policy the 6th request inside 5 minutes is rejected.
func (l *RateLimiter) Allow(ctx context.Context, sourceAddress string, now time.Time) (bool, error) {
	count, err := l.history.CountSince(ctx, sourceAddress, now.Add(-l.policy.Window))
	if err != nil {
		return false, err
	}
	return count < l.policy.MaxRequests, nil
}
