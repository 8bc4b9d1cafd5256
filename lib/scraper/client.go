package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"algorecall-scraper/lib/htmlutil"
	"algorecall-scraper/lib/restyutil"
	"algorecall-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/net/html/charset"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultTimeout   = 10 * time.Second
)

var tracer = otel.Tracer("algorecall/lib/scraper")
var meter = otel.Meter("algorecall/lib/scraper")
var fetchCounter metric.Int64Counter

func init() {
	var err error
	fetchCounter, err = meter.Int64Counter("scraper.fetches")
	if err != nil {
		slog.Warn("failed to create fetch counter, fetches will not be counted", "err", err)
		fetchCounter = noop.Int64Counter{}
	}
}

type ClientOptions struct {
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to DefaultTimeout
	Timeout time.Duration
	// where failures are reported, defaults to slog.Default()
	Logger *slog.Logger
	// wraps the transport with cloudflare-bp-go
	CloudflareBypass bool
	// if set, every exchange is dumped here while debug logging is on
	InstrumentOutput restyutil.InstrumentOutput
}

// Client fetches pages over a single reused resty client. It is not safe
// for concurrent use.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func NewClient(opts ClientOptions) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	client := resty.New()
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	telemetry.InstrumentResty(client, "algorecall/lib/scraper/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &Client{
		http:   client,
		logger: opts.Logger,
	}
}

// fetch performs a GET on url and parses the body, a status of 400 or
// above counts as a failure.
func (c *Client) fetch(ctx context.Context, url string) (*resty.Response, *goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, nil, err
	}
	if res.IsError() {
		return res, nil, fmt.Errorf("%s for url: %s", res.Status(), url)
	}

	body, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return res, nil, fmt.Errorf("decode body: %w", err)
	}
	doc, err := htmlutil.ParseDocument(body)
	if err != nil {
		return res, nil, fmt.Errorf("parse body: %w", err)
	}
	return res, doc, nil
}

func (c *Client) record(ctx context.Context, operation string, err error) {
	fetchCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("ok", err == nil),
	))
}
