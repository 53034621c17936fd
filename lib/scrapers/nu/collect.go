package nu

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"nuresults/lib/results"
)

const defaultDelay = time.Second * 2

// CollectRequest describes an inclusive, contiguous registration-number
// range to acquire, Start <= End.
type CollectRequest struct {
	Start uint64
	End   uint64
	Group string
	Year  string
	// minimum pause between consecutive lookups, the portal does not
	// tolerate being hammered. Defaults to 2s.
	Delay  time.Duration
	Policy RetryPolicy
}

// Collect walks the range in ascending order, one acquisition at a time on
// the same client, and accumulates every outcome including the non-success
// ones. If the run dies mid-range the outcomes gathered so far are
// returned alongside the error; nothing already obtained is discarded.
// onOutcome, if non-nil, is invoked once per terminal outcome.
func (c *Client) Collect(ctx context.Context, req CollectRequest, onOutcome func(results.Outcome)) ([]results.Outcome, error) {
	ctx, span := tracer.Start(ctx, "client:Collect")
	defer span.End()

	delay := req.Delay
	if delay == 0 {
		delay = defaultDelay
	}

	var outcomes []results.Outcome
	for reg := req.Start; reg <= req.End; reg++ {
		q := Query{
			RegistrationNo: strconv.FormatUint(reg, 10),
			Group:          req.Group,
			Year:           req.Year,
		}

		outcome, err := c.Acquire(ctx, q, req.Policy)
		if err != nil {
			slog.ErrorContext(
				ctx, "stopping collection",
				"registration_no", q.RegistrationNo,
				"collected", len(outcomes),
				"err", err,
			)
			return outcomes, err
		}

		outcomes = append(outcomes, outcome)
		slog.InfoContext(
			ctx, "collected",
			"registration_no", q.RegistrationNo,
			"outcome", outcome.Kind.String(),
		)
		if onOutcome != nil {
			onOutcome(outcome)
		}

		if reg < req.End {
			err = sleepCtx(ctx, delay)
			if err != nil {
				return outcomes, err
			}
		}
	}
	return outcomes, nil
}
