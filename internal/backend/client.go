// Package backend is the HTTP client for the word backend: object detection,
// text-to-speech playback and pronunciation checking.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lexicam/internal/observe"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Endpoint paths, relative to the backend origin.
const (
	PathDetect             = "/detect"
	PathSpeak              = "/speak"
	PathCheckPronunciation = "/check_pronunciation"
)

// Operation names used in spans, metrics and logs.
const (
	OpDetect = "detect"
	OpSpeak  = "speak"
	OpCheck  = "check_pronunciation"
)

// maxBody caps how much of a response body is read.
const maxBody = 1 << 20

// ErrMissingObject is returned when a detect response has no object field.
var ErrMissingObject = errors.New("backend: detect response has no object")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s: unexpected status %d", e.Op, e.StatusCode)
}

// Detection is the response of GET /detect.
type Detection struct {
	Object string
}

// Check is the response of GET /check_pronunciation.
type Check struct {
	// Error is set when the backend could not assess the utterance.
	Error string `json:"error,omitempty"`

	// SpokenText is what the backend heard.
	SpokenText string `json:"spoken_text,omitempty"`

	// Feedback is opaque; it is rendered verbatim.
	Feedback json.RawMessage `json:"feedback,omitempty"`
}

// Failed reports whether the backend returned an error message.
func (c Check) Failed() bool { return c.Error != "" }

// Client talks to one backend origin. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	metrics *observe.Metrics
}

// Option configures a [Client].
type Option func(*Client)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMetrics records each request on m.
func WithMetrics(m *observe.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New returns a client for the backend at baseURL, e.g. "http://127.0.0.1:8000".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: base url %q must be absolute", baseURL)
	}
	c := &Client{base: u}
	for _, o := range opts {
		o(c)
	}
	c.http = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   c.timeout,
	}
	return c, nil
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string { return c.base.String() }

// Detect asks the backend to name the object in front of the camera.
func (c *Client) Detect(ctx context.Context) (_ Detection, err error) {
	ctx, done := c.track(ctx, OpDetect, "")
	defer func() { done(err) }()

	var body struct {
		Object *string `json:"object"`
	}
	resp, err := c.get(ctx, OpDetect, PathDetect, "")
	if err != nil {
		return Detection{}, err
	}
	defer resp.Body.Close()

	// A non-2xx detect fails even if the body names an object, so a stale
	// or partial answer never replaces the label.
	if err := checkStatus(OpDetect, resp); err != nil {
		return Detection{}, err
	}
	if err := decode(resp.Body, &body); err != nil {
		return Detection{}, fmt.Errorf("backend: %s: %w", OpDetect, err)
	}
	if body.Object == nil {
		return Detection{}, ErrMissingObject
	}
	return Detection{Object: *body.Object}, nil
}

// Speak asks the backend to say word aloud. Playback happens on the backend;
// the response body is discarded.
func (c *Client) Speak(ctx context.Context, word string) (err error) {
	ctx, done := c.track(ctx, OpSpeak, word)
	defer func() { done(err) }()

	resp, err := c.get(ctx, OpSpeak, PathSpeak, word)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
	return checkStatus(OpSpeak, resp)
}

// CheckPronunciation asks the backend to listen for word and score it.
// A non-2xx response that still carries an error message is returned as a
// [Check] so the message can be shown.
func (c *Client) CheckPronunciation(ctx context.Context, word string) (_ Check, err error) {
	ctx, done := c.track(ctx, OpCheck, word)
	defer func() { done(err) }()

	resp, err := c.get(ctx, OpCheck, PathCheckPronunciation, word)
	if err != nil {
		return Check{}, err
	}
	defer resp.Body.Close()

	var check Check
	decErr := decode(resp.Body, &check)
	if statusErr := checkStatus(OpCheck, resp); statusErr != nil {
		if decErr == nil && check.Failed() {
			return check, nil
		}
		return Check{}, statusErr
	}
	if decErr != nil {
		return Check{}, fmt.Errorf("backend: %s: %w", OpCheck, decErr)
	}
	return check, nil
}

// track starts the span for one call. The returned func records the outcome
// on the span and in the request metrics.
func (c *Client) track(ctx context.Context, op, word string) (context.Context, func(error)) {
	ctx, span := observe.StartSpan(ctx, "backend."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("lexicam.word", word)),
	)
	start := time.Now()
	return ctx, func(err error) {
		c.metrics.RecordRequest(ctx, op, time.Since(start), err)
		observe.EndSpan(span, err)
	}
}

// get issues GET path, with ?word= when word is non-empty.
func (c *Client) get(ctx context.Context, op, path, word string) (*http.Response, error) {
	u := c.base.JoinPath(path)
	if word != "" {
		u.RawQuery = url.Values{"word": {word}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("backend: %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: %s: %w", op, err)
	}
	return resp, nil
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	return nil
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(io.LimitReader(r, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
