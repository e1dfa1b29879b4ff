package loader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

const (
	KindHTTP = "http"

	// DefaultDatasetURL is the public copy of the historical automobile sales dataset.
	DefaultDatasetURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBMDeveloperSkillsNetwork-DV0101EN-SkillsNetwork/Data%20Files/historical_automobile_sales.csv"

	defaultHTTPRetries = 3
	defaultHTTPTimeout = 30 * time.Second
)

type httpLoader struct {
	url    string
	client *retryablehttp.Client
}

func NewHTTPLoader(_ context.Context, cfg SourceConfig) (Loader, error) {
	url := cfg.URL
	if url == "" {
		url = DefaultDatasetURL
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = defaultHTTPRetries
	if cfg.Retries > 0 {
		client.RetryMax = cfg.Retries
	}
	client.HTTPClient.Timeout = defaultHTTPTimeout
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}

	return &httpLoader{url: url, client: client}, nil
}

func (l *httpLoader) Load(ctx context.Context) ([]domain.SalesRecord, LoadReport, error) {
	logger := zerolog.Ctx(ctx)
	l.client.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.Warn().Str("url", req.URL.String()).Int("attempt", attempt).Msg("retrying dataset download")
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to fetch %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, LoadReport{}, fmt.Errorf("failed to fetch %s: unexpected status %s", l.url, resp.Status)
	}
	return DecodeCSV(ctx, resp.Body)
}
