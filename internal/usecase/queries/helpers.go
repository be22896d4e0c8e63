package queries

import (
	"context"
	"strings"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"
)

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// window validates a start/end pair: both or neither, and start before end.
func (w TimeWindow) window() (*interval.Interval, error) {
	if w.Start == nil && w.End == nil {
		return nil, nil
	}
	if w.Start == nil || w.End == nil {
		return nil, errs.Mark(errs.New("start_time and end_time must be given together"), errs.ErrInvalidTimeRange)
	}
	iv, err := interval.New(*w.Start, *w.End)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func timeFilter(w TimeWindow, mode *string) (*shared.TimeFilter, error) {
	iv, err := w.window()
	if err != nil || iv == nil {
		return nil, err
	}
	m := shared.TimeModeCovers
	if mode != nil && *mode != "" {
		m = shared.TimeMode(*mode)
		if !m.IsValid() {
			return nil, errs.Mark(errs.Newf("unknown time filter mode %q", *mode), errs.ErrInvalidTimeRange)
		}
	}
	return &shared.TimeFilter{Start: iv.Start(), End: iv.End(), Mode: m}, nil
}

// parseStatuses reads a comma separated status list. nil selects defaults
// and "any" disables the filter.
func parseStatuses[S ~string](raw *string, defaults []S, valid func(S) bool) ([]S, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return defaults, nil
	}
	if strings.TrimSpace(*raw) == StatusAny {
		return nil, nil
	}
	var out []S
	for _, part := range strings.Split(*raw, ",") {
		s := S(strings.TrimSpace(part))
		if !valid(s) {
			return nil, errs.Mark(errs.Newf("unknown status %q", part), errs.ErrInvalidStatus)
		}
		out = append(out, s)
	}
	return out, nil
}

func resolveRef(ctx context.Context, resources shared.ResourceResolver, resourceType, resourceID *string) (*resource.Ref, error) {
	if resourceID == nil {
		return nil, nil
	}
	t := resource.DefaultType
	if resourceType != nil && *resourceType != "" {
		t = *resourceType
	}
	res, err := resources.Resolve(ctx, t, *resourceID)
	if err != nil {
		return nil, err
	}
	ref := res.Ref()
	return &ref, nil
}
