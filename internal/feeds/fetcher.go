// Package feeds downloads the external datasets the design pipeline is built
// from: GTFS feed archives from transit.land and LODES origin-destination
// employment data from the census bureau. None of this touches the
// evaluation engine; it only fills the local data directory.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

const (
	transitlandBaseURL = "https://transit.land/api/v2/rest"
	lodesBaseURL       = "https://lehd.ces.census.gov/data/lodes/LODES8"
)

type FetchConfig struct {
	RateLimit      rate.Limit
	BurstSize      int
	BackoffInitial time.Duration
	BackoffMax     time.Duration
	MaxRetries     int

	// Base URL overrides, empty means the public endpoints.
	TransitlandBaseURL string
	LodesBaseURL       string
}

func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		RateLimit:      2,
		BurstSize:      4,
		BackoffInitial: 1 * time.Second,
		BackoffMax:     30 * time.Second,
		MaxRetries:     3,
	}
}

// Fetcher downloads feed archives and OD data into a local data directory.
type Fetcher struct {
	apiKey  string
	dataDir string
	client  *http.Client
	limiter *rate.Limiter
	cfg     FetchConfig
}

// NewFetcher requires the transit.land API key; an empty key fails at call
// time, not construction, so the scheduler can be wired unconditionally.
func NewFetcher(apiKey, dataDir string, cfg FetchConfig) *Fetcher {
	if cfg.TransitlandBaseURL == "" {
		cfg.TransitlandBaseURL = transitlandBaseURL
	}
	if cfg.LodesBaseURL == "" {
		cfg.LodesBaseURL = lodesBaseURL
	}
	return &Fetcher{
		apiKey:  apiKey,
		dataDir: dataDir,
		client:  &http.Client{Timeout: 5 * time.Minute},
		limiter: rate.NewLimiter(cfg.RateLimit, cfg.BurstSize),
		cfg:     cfg,
	}
}

type feedVersionsResponse struct {
	FeedVersions []struct {
		SHA1      string `json:"sha1"`
		FetchedAt string `json:"fetched_at"`
	} `json:"feed_versions"`
}

// FetchGTFS downloads a feed version archive for the feed key. latest picks
// the most recent version; otherwise the oldest archived one is taken.
func (f *Fetcher) FetchGTFS(ctx context.Context, feedID string, latest bool) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("TRANSITLAND_API_KEY is not set")
	}

	listURL := fmt.Sprintf("%s/feed_versions?feed_key=%s&apikey=%s", f.cfg.TransitlandBaseURL, feedID, f.apiKey)
	body, err := f.get(ctx, listURL)
	if err != nil {
		return "", fmt.Errorf("list feed versions: %w", err)
	}

	var versions feedVersionsResponse
	if err := json.Unmarshal(body, &versions); err != nil {
		return "", fmt.Errorf("parse feed versions: %w", err)
	}
	if len(versions.FeedVersions) == 0 {
		return "", fmt.Errorf("no feed versions found for feed key %s", feedID)
	}

	idx := 0
	if !latest {
		idx = len(versions.FeedVersions) - 1
	}
	sha1 := versions.FeedVersions[idx].SHA1

	downloadURL := fmt.Sprintf("%s/feed_versions/%s/download?apikey=%s", f.cfg.TransitlandBaseURL, sha1, f.apiKey)
	archive, err := f.get(ctx, downloadURL)
	if err != nil {
		return "", fmt.Errorf("download feed version %s: %w", sha1, err)
	}

	suffix := "latest"
	if !latest {
		suffix = "archived"
	}
	outPath := filepath.Join(f.dataDir, fmt.Sprintf("gtfs_%s_%s.zip", feedID, suffix))
	if err := f.writeFile(outPath, archive); err != nil {
		return "", err
	}
	return outPath, nil
}

// FetchLODES downloads the state's OD main JT00 table for the given year.
func (f *Fetcher) FetchLODES(ctx context.Context, state string, year int) (string, error) {
	name := fmt.Sprintf("%s_od_main_JT00_%d.csv.gz", state, year)
	url := fmt.Sprintf("%s/%s/od/%s", f.cfg.LodesBaseURL, state, name)

	body, err := f.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download LODES %s: %w", name, err)
	}

	outPath := filepath.Join(f.dataDir, name)
	if err := f.writeFile(outPath, body); err != nil {
		return "", err
	}
	return outPath, nil
}

// get performs a rate-limited GET with exponential backoff on failure.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	backoff := f.cfg.BackoffInitial
	var lastErr error

	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := f.client.Do(req)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr == nil && resp.StatusCode == http.StatusOK {
				return body, nil
			}
			if readErr != nil {
				lastErr = readErr
			} else {
				lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
			// Client errors other than rate limiting will not recover on retry.
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return nil, lastErr
			}
		} else {
			lastErr = err
		}

		if attempt < f.cfg.MaxRetries {
			log.Printf("fetch %s failed (attempt %d): %v, retrying in %s", url, attempt+1, lastErr, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
			if backoff > f.cfg.BackoffMax {
				backoff = f.cfg.BackoffMax
			}
		}
	}
	return nil, lastErr
}

func (f *Fetcher) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir data dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
