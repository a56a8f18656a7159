package fetch

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/andybalholm/brotli"
	"golang.org/x/time/rate"
)

// File names written into the data directory. The analyzer reads these back.
const (
	QualityFile   = "poedb_quality.html"
	GemPricesFile = "gem_prices.json"
	CurrencyFile  = "currency.json"
)

const (
	defaultPoedbBaseURL    = "https://poedb.tw"
	defaultPoeNinjaBaseURL = "https://poe.ninja"

	userAgent = "poegemgap/1.0"
)

// Config holds fetcher settings. Base URLs are overridable for tests.
type Config struct {
	DataDir         string
	League          string
	PoedbBaseURL    string
	PoeNinjaBaseURL string
	RequestTimeout  time.Duration
	RequestsPerSec  float64
}

// Fetcher downloads the three upstream snapshot files into the data directory.
// Downloads run strictly in order and the first failure aborts the run.
type Fetcher struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// target is one downloadable resource: the file it lands in and its URL.
type target struct {
	label string
	url   string
}

// New creates a Fetcher, filling in defaults for unset config fields.
func New(cfg Config) *Fetcher {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.League == "" {
		cfg.League = "Ancestor"
	}
	if cfg.PoedbBaseURL == "" {
		cfg.PoedbBaseURL = defaultPoedbBaseURL
	}
	if cfg.PoeNinjaBaseURL == "" {
		cfg.PoeNinjaBaseURL = defaultPoeNinjaBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.RequestsPerSec == 0 {
		cfg.RequestsPerSec = 2
	}

	return &Fetcher{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
	}
}

// targets lists the three downloads in fetch order. The league goes into the
// URLs verbatim: league names are plain identifiers ("Ancestor",
// "Hardcore Ancestor") and poe.ninja accepts them as-is.
func (f *Fetcher) targets() []target {
	return []target{
		{
			label: QualityFile,
			url:   f.cfg.PoedbBaseURL + "/us/Quality",
		},
		{
			label: GemPricesFile,
			url: fmt.Sprintf("%s/api/data/itemoverview?league=%s&type=SkillGem",
				f.cfg.PoeNinjaBaseURL, f.cfg.League),
		},
		{
			label: CurrencyFile,
			url: fmt.Sprintf("%s/api/data/currencyoverview?league=%s&type=Currency&language=en",
				f.cfg.PoeNinjaBaseURL, f.cfg.League),
		},
	}
}

// Run ensures the data directory exists, then downloads the quality page, the
// gem price overview and the currency overview, in that order. It stops at
// the first failure; files already written stay on disk.
func (f *Fetcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(f.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	for _, t := range f.targets() {
		if err := f.download(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", t.label, err)
		}
	}

	return nil
}

// download performs a single GET and writes the response body verbatim to
// <DataDir>/<label>, overwriting any previous snapshot.
func (f *Fetcher) download(ctx context.Context, t target) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	reader, err := decodeReader(resp)
	if err != nil {
		return fmt.Errorf("failed to create reader: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	path := filepath.Join(f.cfg.DataDir, t.label)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// decodeReader unwraps the transfer compression poe.ninja and poedb answer
// with when offered gzip/brotli.
func decodeReader(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "br":
		return brotli.NewReader(resp.Body), nil
	default:
		return resp.Body, nil
	}
}
