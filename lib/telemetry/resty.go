package telemetry

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentResty opens a span for every request made by client.
func InstrumentResty(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(onBeforeRequest(tracer))
	client.OnAfterResponse(onAfterResponse)
	client.OnError(onError)
}

func onBeforeRequest(tracer trace.Tracer) resty.RequestMiddleware {
	return func(cli *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), fmt.Sprintf("http %s", req.Method))
		req.SetContext(ctx)
		return nil
	}
}

func headerAttributes(prefix string, headers http.Header) []attribute.KeyValue {
	var out []attribute.KeyValue
	for header, values := range headers {
		out = append(out, attribute.StringSlice(fmt.Sprintf("%s.%s", prefix, header), values))
	}
	return out
}

func onAfterResponse(_ *resty.Client, res *resty.Response) error {
	span := trace.SpanFromContext(res.Request.Context())
	defer span.End()

	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(res.Request.Method),
		semconv.URLFull(res.Request.URL),
		semconv.HTTPResponseStatusCode(res.StatusCode()),
	)
	span.SetAttributes(headerAttributes("http.request.header", res.Request.Header)...)
	span.SetAttributes(headerAttributes("http.response.header", res.Header())...)

	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
	}
	return nil
}

func onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(req.Method),
		semconv.URLFull(req.URL),
	)
}
