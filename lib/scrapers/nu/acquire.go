package nu

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"nuresults/lib/htmlutil"
	"nuresults/lib/results"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// Query identifies one lookup on the portal form.
type Query struct {
	RegistrationNo string
	Group          string
	Year           string
}

// RetryPolicy bounds the acquisition loop. Zero MaxAttempts opts into
// retrying until a definitive outcome, which is explicitly not the
// default: unbounded retry is a deployment decision.
type RetryPolicy struct {
	MaxAttempts int
	// cooldown after a plain await timeout
	Cooldown time.Duration
	// cooldown after a transport level fault, longer than Cooldown since
	// those tend to need more breathing room
	FaultCooldown time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		Cooldown:      time.Second * 3,
		FaultCooldown: time.Second * 10,
	}
}

var errNoResultPage = errors.New("submission did not land on the result page")

// Acquire drives a single registration number to a definitive outcome:
// submit the form, await the result page, classify what landed, retrying
// transient failures under the given policy. The error return is reserved
// for context cancellation; every classification, including retry
// exhaustion, is a terminal outcome rather than an error.
func (c *Client) Acquire(ctx context.Context, q Query, policy RetryPolicy) (results.Outcome, error) {
	ctx, span := tracer.Start(ctx, "client:Acquire")
	defer span.End()

	attempts := 0
	for {
		attempts++

		res, err := c.submit(ctx, q)
		if err == nil && !landedOnResult(res) {
			err = errNoResultPage
		}
		if err == nil {
			outcome := c.classify(ctx, res, q)
			c.audit(ctx, q.RegistrationNo, attempts, outcome.Kind.String(), "")
			return outcome, nil
		}
		if ctx.Err() != nil {
			return results.Outcome{}, ctx.Err()
		}

		cooldown := policy.Cooldown
		state := "retry_timeout"
		if !isTimeout(err) {
			cooldown = policy.FaultCooldown
			state = "retry_fault"
		}
		c.audit(ctx, q.RegistrationNo, attempts, state, err.Error())
		slog.WarnContext(
			ctx, "acquisition attempt failed",
			"registration_no", q.RegistrationNo,
			"attempt", attempts,
			"err", err,
		)

		if policy.MaxAttempts > 0 && attempts >= policy.MaxAttempts {
			span.SetStatus(codes.Error, "retry budget exhausted")
			slog.WarnContext(
				ctx, "giving up after retries",
				"registration_no", q.RegistrationNo,
				"attempts", attempts,
			)
			c.audit(ctx, q.RegistrationNo, attempts, results.RetryExhausted.String(), "")
			return results.Outcome{
				RegistrationNo: q.RegistrationNo,
				Kind:           results.RetryExhausted,
				Record:         baseRecord(q),
			}, nil
		}
		err = sleepCtx(ctx, cooldown)
		if err != nil {
			return results.Outcome{}, err
		}
	}
}

// submit re-navigates to the form page from scratch and posts the four
// lookup fields. Never reuses a previous attempt's form state.
func (c *Client) submit(ctx context.Context, q Query) (*resty.Response, error) {
	_, err := c.Http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return nil, err
	}

	return c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"exm_code": c.ExamLevel,
			"course":   q.Group,
			"reg_no":   q.RegistrationNo,
			"exm_year": q.Year,
		}).
		Post("/")
}

// the submission is awaited by the transport itself (bounded by the client
// timeout); landing is detected by the final location after redirects
func landedOnResult(res *resty.Response) bool {
	if res == nil || res.RawResponse == nil || res.RawResponse.Request == nil {
		return false
	}
	return strings.Contains(res.RawResponse.Request.URL.Path, resultPath)
}

func (c *Client) classify(ctx context.Context, res *resty.Response, q Query) results.Outcome {
	ctx, span := tracer.Start(ctx, "client:classify")
	defer span.End()

	// the wrong information phrase wins over anything else on the page
	if strings.Contains(res.String(), wrongInfoPhrase) {
		return results.Outcome{
			RegistrationNo: q.RegistrationNo,
			Kind:           results.NotRegistered,
			Record:         baseRecord(q),
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse landed page html")
		return results.Outcome{
			RegistrationNo: q.RegistrationNo,
			Kind:           results.FormatUnrecognized,
			Record:         baseRecord(q),
		}
	}

	region := doc.Find("div.result, div#result").First()
	if region.Length() == 0 {
		if doc.Find("table").Length() == 0 {
			span.SetStatus(codes.Error, "no result region on landed page")
			return results.Outcome{
				RegistrationNo: q.RegistrationNo,
				Kind:           results.FormatUnrecognized,
				Record:         baseRecord(q),
			}
		}
		region = doc.Find("body").First()
	}

	rec := ParseResult(htmlutil.GetText(region.Nodes[0]), q.RegistrationNo)
	rec.Group = q.Group
	rec.Year = q.Year
	return results.Outcome{
		RegistrationNo: q.RegistrationNo,
		Kind:           results.Success,
		Record:         rec,
	}
}

// baseRecord carries the identity fields every outcome keeps for audit.
func baseRecord(q Query) results.StudentRecord {
	return results.StudentRecord{
		RegistrationNo: q.RegistrationNo,
		Group:          q.Group,
		Year:           q.Year,
	}
}

func (c *Client) audit(ctx context.Context, registrationNo string, attempt int, state, detail string) {
	if c.Audit == nil {
		return
	}
	err := c.Audit.Record(ctx, registrationNo, attempt, state, detail)
	if err != nil {
		slog.WarnContext(ctx, "failed to journal attempt", "registration_no", registrationNo, "err", err)
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errNoResultPage)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
