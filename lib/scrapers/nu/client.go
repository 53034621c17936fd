package nu

import (
	"context"
	"net/http/cookiejar"
	"net/url"
	"time"

	"nuresults/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// path of the result display page the portal redirects to after a
// successful form submission
const resultPath = "result_show.php"

// fixed error phrase the portal renders when a registration number does
// not exist for the selected exam
const wrongInfoPhrase = "ERROR ! YOU'VE PROVIDED WRONG INFORMATION"

const defaultExamLevel = "Bachelor Degree (Honours) 1st Year"
const defaultTimeout = time.Second * 30

// AttemptRecorder persists a journal entry for every acquisition attempt.
type AttemptRecorder interface {
	Record(ctx context.Context, registrationNo string, attempt int, state, detail string) error
}

type Client struct {
	BaseUrl   *url.URL
	Http      *resty.Client
	ExamLevel string
	Audit     AttemptRecorder
}

type ClientOptions struct {
	BaseUrl string
	// form value for the exam level field, defaults to the bachelor
	// honours first year exam
	ExamLevel string
	// bound on a single submit/await round trip, defaults to 30s
	Timeout time.Duration
	// optional, attempts are only logged when nil
	Audit AttemptRecorder
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	client.SetTimeout(timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	examLevel := opts.ExamLevel
	if examLevel == "" {
		examLevel = defaultExamLevel
	}

	c := &Client{
		BaseUrl:   baseUrl,
		Http:      client,
		ExamLevel: examLevel,
		Audit:     opts.Audit,
	}
	return c, nil
}
