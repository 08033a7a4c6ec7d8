package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/folio/backend/internal/metrics"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/notify"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/validation"
)

const lockReapInterval = 2 * time.Minute

// contactServiceImpl is the production implementation of ContactService.
// It coordinates the ingestion pipeline:
//
//	validate → lock source → quota check → insert → unlock → notify (async)
//
// The per-source lock makes the quota check and the insert atomic with respect
// to other submissions from the same address.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	limiter  *RateLimiter
	locks    *sourceLocks
	notifier notify.Notifier

	// now is a seam for tests; production uses time.Now.
	now func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil, in which case the notification step is skipped.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier, policy model.RateLimitPolicy) ContactService {
	s := &contactServiceImpl{
		repo:     repo,
		limiter:  NewRateLimiter(repo, policy),
		locks:    newSourceLocks(10 * time.Minute),
		notifier: notifier,
		now:      time.Now,
	}
	go s.locks.janitor(lockReapInterval)
	return s
}

// Submit runs one submission through the pipeline. See ContactService for the
// error contract.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput, sourceAddress string) (*model.ContactSubmission, error) {
	metrics.SubmissionsReceivedTotal.Inc()

	if errs := validation.ValidateContactInput(in); errs != nil {
		metrics.SubmissionsRejectedInvalidTotal.Inc()
		return nil, errs
	}
	in = validation.NormalizeContactInput(in)

	release := s.locks.Acquire(sourceAddress)
	defer release()

	allowed, err := s.limiter.Allow(ctx, sourceAddress, s.now().UTC())
	if err != nil {
		metrics.SubmissionStoreFailuresTotal.Inc()
		return nil, fmt.Errorf("check submission quota: %w", err)
	}
	if !allowed {
		metrics.SubmissionsRejectedRateLimitedTotal.Inc()
		slog.Warn("contact submission rate limited",
			"source_address", sourceAddress,
			"at", s.now().UTC(),
		)
		return nil, ErrRateLimited
	}

	sub := &model.ContactSubmission{
		Name:          in.Name,
		Email:         in.Email,
		Message:       in.Message,
		SourceAddress: sourceAddress,
		Status:        model.StatusPending,
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		metrics.SubmissionStoreFailuresTotal.Inc()
		return nil, fmt.Errorf("persist submission: %w", err)
	}
	metrics.SubmissionsAcceptedTotal.Inc()

	if s.notifier != nil {
		// The submission is durable at this point; notification must survive
		// request cancellation and its failure never reaches the caller.
		notifyCtx := context.WithoutCancel(ctx)
		sub := *sub
		go func() {
			_ = s.notifier.Notify(notifyCtx, &sub)
		}()
	}

	return sub, nil
}

// List returns submissions for triage according to the given options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus transitions a submission's triage status.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.ValidSubmissionStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
