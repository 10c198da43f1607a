package prices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finfree-dev/finfree/internal/model"
)

func TestStockQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote-short/VTI" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"symbol":"VTI","price":280.40,"volume":123}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "k")
	q, err := c.StockQuote(context.Background(), "vti")
	if err != nil {
		t.Fatalf("StockQuote() error: %v", err)
	}
	if q.Ticker != "VTI" {
		t.Fatalf("ticker = %q, want VTI", q.Ticker)
	}
	if q.PriceUSD != 280.40 {
		t.Fatalf("price = %v, want 280.40", q.PriceUSD)
	}
	if q.FetchedAt.IsZero() {
		t.Fatal("FetchedAt not stamped")
	}
}

func TestStockQuoteNoKey(t *testing.T) {
	c := NewClient("http://unused", "", "")
	if _, err := c.StockQuote(context.Background(), "VTI"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("StockQuote() error = %v, want ErrUnauthorized", err)
	}
}

func TestStockQuoteEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "k")
	if _, err := c.StockQuote(context.Background(), "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("StockQuote() error = %v, want ErrNotFound", err)
	}
}

func TestCryptoQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "bitcoin" {
			t.Errorf("ids = %q, want bitcoin", got)
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":60000}}`))
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "")
	q, err := c.CryptoQuote(context.Background(), "Bitcoin")
	if err != nil {
		t.Fatalf("CryptoQuote() error: %v", err)
	}
	if q.PriceUSD != 60000 {
		t.Fatalf("price = %v, want 60000", q.PriceUSD)
	}
}

func TestCryptoQuoteMissingCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "")
	if _, err := c.CryptoQuote(context.Background(), "dogecoin"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CryptoQuote() error = %v, want ErrNotFound", err)
	}
}

func TestLookupDispatch(t *testing.T) {
	c := NewClient("http://unused", "http://unused", "")
	if _, err := c.Lookup(context.Background(), model.KindFlat, "x"); err == nil {
		t.Fatal("Lookup(flat) should error")
	}
}

func TestRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "k")
	if _, err := c.StockQuote(context.Background(), "VTI"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("StockQuote() error = %v, want ErrRateLimited", err)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{`280.4`, 280.4, true},
		{`"280.40"`, 280.4, true},
		{`0`, 0, false},
		{`-5`, 0, false},
		{`null`, 0, false},
		{`"n/a"`, 0, false},
	}
	for _, c := range cases {
		got, ok := parsePrice(json.RawMessage(c.in))
		if ok != c.wantOK || (ok && got != c.want) {
			t.Fatalf("parsePrice(%s) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
