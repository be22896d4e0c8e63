package commands

import (
	"context"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/patch"
	"lease-engine/internal/usecase/shared"
)

// Outcome labels reported to the recorder.
const (
	outcomeOK          = "ok"
	outcomeConflict    = "conflict"
	outcomeUnavailable = "unavailable"
	outcomeDenied      = "denied"
	outcomeInvalid     = "invalid"
	outcomeError       = "error"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errs.Is(err, errs.ErrResourceTimeConflict):
		return outcomeConflict
	case errs.Is(err, errs.ErrOfferNoTimeAvailabilities):
		return outcomeUnavailable
	case errs.Is(err, errs.ErrNotResourceAdmin),
		errs.Is(err, errs.ErrForbidden),
		errs.Is(err, errs.ErrOfferNotClaimable):
		return outcomeDenied
	case errs.Is(err, errs.ErrInvalidTimeRange),
		errs.Is(err, errs.ErrInvalidStatus),
		errs.Is(err, errs.ErrInvalidProperties):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

// notFoundAs marks a repository miss with the entity specific sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// requestedSlot fills missing bounds: start defaults to now, end to Forever.
func requestedSlot(start, end *time.Time, now time.Time) (interval.Interval, error) {
	return interval.New(patch.Coalesce(start, now), patch.Coalesce(end, interval.Forever))
}

func canonicalProject(ctx context.Context, projects shared.ProjectResolver, ident *string) (*string, error) {
	if ident == nil {
		return nil, nil
	}
	id, err := projects.Canonical(ctx, *ident)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
