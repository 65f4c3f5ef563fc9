// Package api is the read-only client for the attendance backend.
//
// All three endpoints are GET requests returning JSON. Transport errors,
// non-2xx statuses and undecodable bodies are all reported as errors; the
// caller decides how to degrade.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eventperf/internal/trace"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

// Client talks to the backend at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	tracer     oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. hc itself is never
// modified; WithTimeout applies to a copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets a per-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracer overrides the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client. An empty baseURL produces relative request
// paths, mirroring a same-origin deployment.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
		tracer:     trace.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RollNumbers lists the roll numbers registered for a year and branch.
// A response without roll_numbers yields an empty list.
func (c *Client) RollNumbers(ctx context.Context, academicYear, branch string) ([]string, error) {
	q := url.Values{}
	q.Set("academic_year", academicYear)
	q.Set("branch", branch)

	var resp rollNumbersResponse
	if err := c.getJSON(ctx, "roll-numbers", "/roll-numbers", q, &resp); err != nil {
		return nil, fmt.Errorf("list roll numbers for %s %s: %w", branch, academicYear, err)
	}
	return resp.RollNumbers, nil
}

// Student fetches one student's profile. A null body yields a nil Student
// and no error.
func (c *Client) Student(ctx context.Context, rollNumber string) (*Student, error) {
	var s *Student
	path := "/students/" + url.PathEscape(rollNumber)
	if err := c.getJSON(ctx, "students", path, nil, &s); err != nil {
		return nil, fmt.Errorf("get student %s: %w", rollNumber, err)
	}
	return s, nil
}

// EventStats fetches the per-event summary for a student. academicYear is
// sent as a query qualifier only when non-empty.
func (c *Client) EventStats(ctx context.Context, rollNumber, academicYear string) ([]EventStatRow, error) {
	var q url.Values
	if academicYear != "" {
		q = url.Values{}
		q.Set("academic_year", academicYear)
	}

	var resp statsResponse
	path := "/stats/" + url.PathEscape(rollNumber)
	if err := c.getJSON(ctx, "stats", path, q, &resp); err != nil {
		return nil, fmt.Errorf("get event stats for %s: %w", rollNumber, err)
	}
	return resp.Summary, nil
}

// getJSON issues a GET to baseURL+path and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, v any) (err error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, "eventperf.api "+endpoint,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if ctx.Err() == nil {
				c.logger.Warn("api request failed", "endpoint", endpoint, "path", path, "err", err)
			}
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("api request", "endpoint", endpoint, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
