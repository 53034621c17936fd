package restyutil

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentOutput receives the full text of every HTTP exchange a scraper
// client performs. Useful when a portal changes its markup and the scrape
// has to be replayed by eye.
type InstrumentOutput interface {
	Write(id string, contents string)
}

type FilesystemOutput struct {
	directory string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	os.RemoveAll(dir)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic(err)
	}
	return FilesystemOutput{directory: dir}
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write exchange dump", "id", id, "err", err)
	}
}

type instrumentCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// InstrumentClient attaches tracing, debug logging and optionally an
// exchange dump output to a resty client. `tracer` can be nil, it will
// default to a library name of "resty". `output` can be nil to skip dumps.
func InstrumentClient(client *resty.Client, tracer trace.Tracer, output InstrumentOutput) {
	if tracer == nil {
		tracer = otel.Tracer("resty")
	}

	var idcounter uint64
	i := instrumentCtx{output: output, idcounter: &idcounter}

	client.OnBeforeRequest(func(cli *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

func (i instrumentCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	// request attributes are set here since res.Request.RawRequest is nil
	// in OnBeforeRequest
	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
	span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)

	if i.output != nil {
		id := strconv.FormatUint(atomic.AddUint64(i.idcounter, 1), 10)
		i.output.Write(id, formatExchange(res))
	}
	slog.DebugContext(
		ctx, "request done",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
	)
	return nil
}

func (i instrumentCtx) onError(req *resty.Request, err error) {
	ctx := req.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
	span.SetName(fmt.Sprintf("http %s", req.Method))
	if req.RawRequest != nil {
		span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
	}

	slog.ErrorContext(
		ctx, "request failed",
		"method", req.Method,
		"url", req.URL,
		"err", err,
	)
}

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			fmt.Fprintf(&out, "%s: %s\n", k, v)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

func formatExchange(res *resty.Response) string {
	var out strings.Builder

	fmt.Fprintf(&out, "---- REQUEST ----\n\n%s %s\n\n", res.Request.Method, res.Request.URL)
	if res.Request.RawRequest != nil {
		out.WriteString(formatHeaders(res.Request.RawRequest.Header))
		out.WriteString("\n\n")
	}

	finalUrl := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalUrl = res.RawResponse.Request.URL.String()
	}
	fmt.Fprintf(&out, "---- RESPONSE ----\n\n%d %s\n\n", res.StatusCode(), finalUrl)
	out.WriteString(formatHeaders(res.Header()))
	out.WriteString("\n\n")
	out.WriteString(res.String())

	return out.String()
}
