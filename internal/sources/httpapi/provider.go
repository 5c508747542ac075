// Package httpapi adapts a JSON-over-HTTP reporting backend to the
// sources interfaces. Transient failures are retried here with
// exponential backoff; callers see only the final outcome.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"ads-insights-lab/internal/domain"
)

// Provider fetches reporting rows from an HTTP backend.
// Implements sources.Provider.
type Provider struct {
	baseURL string
	client  *http.Client
	maxWait time.Duration
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

// WithMaxRetryWait bounds the total time spent retrying one fetch.
func WithMaxRetryWait(d time.Duration) Option {
	return func(p *Provider) { p.maxWait = d }
}

// New creates a Provider rooted at baseURL.
func New(baseURL string, opts ...Option) *Provider {
	p := &Provider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		maxWait: 10 * time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// FetchCampaigns retrieves campaign rows.
func (p *Provider) FetchCampaigns(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawCampaign, error) {
	var rows []domain.RawCampaign
	err := p.getJSON(ctx, "/campaigns", accountID, r, &rows)
	return rows, err
}

// FetchKeywords retrieves keyword rows.
func (p *Provider) FetchKeywords(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawKeyword, error) {
	var rows []domain.RawKeyword
	err := p.getJSON(ctx, "/keywords", accountID, r, &rows)
	return rows, err
}

// FetchGeo retrieves geographic rows.
func (p *Provider) FetchGeo(ctx context.Context, accountID string, r domain.DateRange) ([]domain.RawGeo, error) {
	var rows []domain.RawGeo
	err := p.getJSON(ctx, "/geo", accountID, r, &rows)
	return rows, err
}

// FetchTimeseries retrieves the daily series sorted ascending by date.
func (p *Provider) FetchTimeseries(ctx context.Context, accountID string, r domain.DateRange) ([]domain.TimeSeriesPoint, error) {
	var rows []domain.TimeSeriesPoint
	if err := p.getJSON(ctx, "/timeseries", accountID, r, &rows); err != nil {
		return nil, err
	}
	domain.SortTimeSeries(rows)
	return rows, nil
}

// FetchConversionActions retrieves conversion-action rows.
func (p *Provider) FetchConversionActions(ctx context.Context, accountID string, r domain.DateRange) ([]domain.ConversionAction, error) {
	var rows []domain.ConversionAction
	err := p.getJSON(ctx, "/conversion_actions", accountID, r, &rows)
	return rows, err
}

// FetchCalls retrieves call-interaction rows.
func (p *Provider) FetchCalls(ctx context.Context, accountID string, r domain.DateRange) ([]domain.CallInteraction, error) {
	var rows []domain.CallInteraction
	err := p.getJSON(ctx, "/calls", accountID, r, &rows)
	return rows, err
}

// getJSON performs one GET with retry. 4xx responses are permanent;
// network errors and 5xx responses are retried until maxWait elapses.
func (p *Provider) getJSON(ctx context.Context, path, accountID string, r domain.DateRange, dst any) error {
	q := url.Values{}
	q.Set("account", accountID)
	q.Set("from", r.StartString())
	q.Set("to", r.EndString())
	u := p.baseURL + path + "?" + q.Encode()

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = p.maxWait

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("%s: %s", path, resp.Status)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return backoff.Permanent(fmt.Errorf("%s: %s body=%s", path, resp.Status, b))
		}
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s: %w", path, err))
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}
