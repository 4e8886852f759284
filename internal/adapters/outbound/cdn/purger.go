package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// Payload is the purge request body.
type Payload struct {
	Assets      []string `json:"assets"`
	RequestedAt string   `json:"requestedAt"`
}

// Result describes what Purge did.
type Result struct {
	Skipped bool    `json:"skipped"`
	Reason  string  `json:"reason,omitempty"`
	Status  int     `json:"status,omitempty"`
	Payload Payload `json:"payload"`
}

// Purger sends theme purge requests with retries.
type Purger struct {
	client *retryablehttp.Client
	log    logrus.FieldLogger
	now    func() time.Time
	settle time.Duration
}

// Option tunes a Purger.
type Option func(*Purger)

// WithRetry sets the retry budget and the backoff bounds.
func WithRetry(max int, waitMin, waitMax time.Duration) Option {
	return func(p *Purger) {
		p.client.RetryMax = max
		p.client.RetryWaitMin = waitMin
		p.client.RetryWaitMax = waitMax
	}
}

// WithSettle sets how long Purge waits after a successful request so edge
// caches can drop the assets before follow-up automation runs.
func WithSettle(d time.Duration) Option {
	return func(p *Purger) { p.settle = d }
}

// WithClock replaces time.Now for the requestedAt stamp.
func WithClock(now func() time.Time) Option {
	return func(p *Purger) { p.now = now }
}

func NewPurger(log logrus.FieldLogger, opts ...Option) *Purger {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = leveledLogger{log.WithField("component", "cdn")}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	p := &Purger{client: client, log: log, now: time.Now, settle: 250 * time.Millisecond}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Purge invalidates s.Assets on the CDN. Without a token, or in dry-run, the
// payload is logged and nothing is sent. A non-2xx answer wraps
// domain.ErrPurgeFailed with the status and body.
func (p *Purger) Purge(ctx context.Context, s Settings) (Result, error) {
	payload := Payload{Assets: s.Assets, RequestedAt: p.now().UTC().Format(time.RFC3339Nano)}
	if payload.Assets == nil {
		payload.Assets = []string{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}

	if s.DryRun || s.Token == "" {
		reason := "dry-run enabled"
		if !s.DryRun {
			reason = "missing HERMES_CDN_PURGE_TOKEN"
		}
		p.log.WithField("reason", reason).Infof("[cdn] skipping purge, payload: %s", body)
		return Result{Skipped: true, Reason: reason, Payload: payload}, nil
	}

	p.log.Infof("[cdn] purging %d theme asset(s) via %s", len(payload.Assets), s.Endpoint)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: building request: %v", domain.ErrPurgeFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrPurgeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{Status: resp.StatusCode, Payload: payload},
			fmt.Errorf("%w: %s: %s", domain.ErrPurgeFailed, resp.Status, text)
	}

	if p.settle > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-time.After(p.settle):
		}
	}

	p.log.WithField("status", "success").Info("[cdn] theme purge completed")
	return Result{Status: resp.StatusCode, Payload: payload}, nil
}

// leveledLogger routes retryablehttp diagnostics to logrus at debug level,
// except errors and warnings.
type leveledLogger struct {
	log logrus.FieldLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.with(kv).Error(msg) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.with(kv).Warn(msg) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.with(kv).Debug(msg) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.with(kv).Debug(msg) }

func (l leveledLogger) with(kv []interface{}) logrus.FieldLogger {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return l.log.WithFields(fields)
}
