package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/displaycard/internal/errors"
)

// DefaultBaseURL is the public catalog the demo reads from.
const DefaultBaseURL = "https://dummyjson.com"

// Config configures a Client.
type Config struct {
	// BaseURL is the API root; "/products" is appended.
	BaseURL string

	// Timeout bounds a single request. 0 means no timeout beyond ctx.
	Timeout time.Duration

	// HTTPClient defaults to a client with Timeout.
	HTTPClient *http.Client

	// Metrics may be nil.
	Metrics *Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client fetches products. It does not retry.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Client.
func New(config Config) *Client {
	base := strings.TrimRight(config.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := config.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: config.Timeout}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: base,
		http:    hc,
		metrics: config.Metrics,
		logger:  logger.With("component", "catalog"),
		tracer:  otel.Tracer("github.com/vango-dev/displaycard/pkg/catalog"),
	}
}

// Products returns up to limit products in catalog order.
func (c *Client) Products(ctx context.Context, limit int) ([]Product, error) {
	ctx, span := c.tracer.Start(ctx, "catalog.products",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("catalog.limit", limit)),
	)
	defer span.End()

	start := time.Now()
	products, status, err := c.fetch(ctx, limit)
	c.record(status, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("catalog request failed", "limit", limit, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.count", len(products)))
	span.SetStatus(codes.Ok, "")
	c.logger.Debug("catalog request", "limit", limit, "count", len(products), "duration", time.Since(start))
	return products, nil
}

// Previews fetches limit products and maps them to card previews.
func (c *Client) Previews(ctx context.Context, limit int) ([]Preview, error) {
	products, err := c.Products(ctx, limit)
	if err != nil {
		return nil, err
	}
	return Previews(products), nil
}

// fetch performs the request and returns the status label for metrics.
func (c *Client) fetch(ctx context.Context, limit int) ([]Product, string, error) {
	u := c.baseURL + "/products"
	if limit > 0 {
		u += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "error", errors.New(errors.CodeCatalogRequest).Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "error", errors.New(errors.CodeCatalogRequest).WithDetail(u).Wrap(err)
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, status, errors.New(errors.CodeCatalogStatus).
			WithDetailf("%s returned %d: %s", u, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var listing ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, status, errors.New(errors.CodeCatalogDecode).Wrap(err)
	}
	return listing.Products, status, nil
}

func (c *Client) record(status string, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(status).Inc()
	c.metrics.Duration.Observe(elapsed.Seconds())
}
