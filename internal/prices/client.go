// Package prices provides a client for fetching stock and crypto quotes
// used to value market-priced asset buckets.
package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
)

const (
	defaultStockBaseURL  = "https://financialmodelingprep.com/api/v3"
	defaultCryptoBaseURL = "https://api.coingecko.com/api/v3"
	requestTimeout       = 10 * time.Second
	maxBodySize          = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the API key is missing, expired, or invalid.
	ErrUnauthorized = errors.New("prices: unauthorized (check the quotes API key)")
	// ErrRateLimited indicates the quote API rate limit was hit.
	ErrRateLimited = errors.New("prices: rate limited")
	// ErrNotFound indicates the ticker is unknown to the quote API.
	ErrNotFound = errors.New("prices: ticker not found")
)

// Quote is a single fetched price.
type Quote struct {
	Ticker    string
	PriceUSD  float64
	FetchedAt time.Time
}

// Client fetches quotes from the configured stock and crypto APIs.
type Client struct {
	stockBaseURL  string
	cryptoBaseURL string
	apiKey        string
	http          *http.Client
}

// NewClient creates a quote client. Empty base URLs fall back to the
// defaults; the API key is only required for stock quotes.
func NewClient(stockBaseURL, cryptoBaseURL, apiKey string) *Client {
	if stockBaseURL == "" {
		stockBaseURL = defaultStockBaseURL
	}
	if cryptoBaseURL == "" {
		cryptoBaseURL = defaultCryptoBaseURL
	}
	return &Client{
		stockBaseURL:  strings.TrimSuffix(stockBaseURL, "/"),
		cryptoBaseURL: strings.TrimSuffix(cryptoBaseURL, "/"),
		apiKey:        strings.TrimSpace(apiKey),
		http:          &http.Client{},
	}
}

// Lookup fetches the quote for a bucket's ticker based on its kind.
func (c *Client) Lookup(ctx context.Context, kind model.BucketKind, ticker string) (Quote, error) {
	switch kind {
	case model.KindStock:
		return c.StockQuote(ctx, ticker)
	case model.KindCrypto:
		return c.CryptoQuote(ctx, ticker)
	}
	return Quote{}, fmt.Errorf("prices: bucket kind %q has no market price", kind)
}

// StockQuote fetches the latest share price for a ticker symbol.
func (c *Client) StockQuote(ctx context.Context, ticker string) (Quote, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return Quote{}, errors.New("prices: empty ticker")
	}
	if c.apiKey == "" {
		return Quote{}, ErrUnauthorized
	}

	u := fmt.Sprintf("%s/quote-short/%s?apikey=%s",
		c.stockBaseURL, url.PathEscape(ticker), url.QueryEscape(c.apiKey))
	body, err := c.get(ctx, u)
	if err != nil {
		return Quote{}, err
	}

	var raw []struct {
		Symbol string          `json:"symbol"`
		Price  json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Quote{}, fmt.Errorf("prices: parsing stock quote: %w", err)
	}
	if len(raw) == 0 {
		return Quote{}, ErrNotFound
	}

	price, ok := parsePrice(raw[0].Price)
	if !ok {
		return Quote{}, fmt.Errorf("prices: no usable price for %s", ticker)
	}
	return Quote{Ticker: ticker, PriceUSD: price, FetchedAt: time.Now()}, nil
}

// CryptoQuote fetches the latest USD spot price for a coin ID
// (e.g. "bitcoin").
func (c *Client) CryptoQuote(ctx context.Context, coinID string) (Quote, error) {
	coinID = strings.ToLower(strings.TrimSpace(coinID))
	if coinID == "" {
		return Quote{}, errors.New("prices: empty coin id")
	}

	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		c.cryptoBaseURL, url.QueryEscape(coinID))
	body, err := c.get(ctx, u)
	if err != nil {
		return Quote{}, err
	}

	var raw map[string]struct {
		USD json.RawMessage `json:"usd"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Quote{}, fmt.Errorf("prices: parsing crypto quote: %w", err)
	}
	entry, ok := raw[coinID]
	if !ok {
		return Quote{}, ErrNotFound
	}

	price, ok := parsePrice(entry.USD)
	if !ok {
		return Quote{}, fmt.Errorf("prices: no usable price for %s", coinID)
	}
	return Quote{Ticker: coinID, PriceUSD: price, FetchedAt: time.Now()}, nil
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("prices: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/finfree-dev/finfree/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prices: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("prices: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("prices: reading response: %w", err)
	}
	return body, nil
}

// parsePrice defensively parses a polymorphic price field. Handles JSON
// numbers and strings ("280.40"). Returns false for zero, negative, or
// unparseable values.
func parsePrice(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, f > 0
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v, v > 0
		}
	}

	return 0, false
}
