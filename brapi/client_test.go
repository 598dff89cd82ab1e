package brapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient starts a server answering fixed routes and returns a client
// pointed at it.
func newTestClient(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL))
}

func TestQuote(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote/PETR4": `{"results":[{"symbol":"PETR4","regularMarketPrice":38.52,"currency":"BRL"}]}`,
	})

	price, err := c.Quote(context.Background(), "PETR4")
	if err != nil {
		t.Fatal(err)
	}
	if price != 38.52 {
		t.Errorf("Quote = %v, want 38.52", price)
	}
}

func TestQuoteErrors(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote/EMPTY": `{"results":[]}`,
		"/quote/BAD":   `{"results":[{"symbol":"BAD","regularMarketPrice":0}]}`,
	})
	ctx := context.Background()

	if _, err := c.Quote(ctx, "NOPE"); err == nil {
		t.Error("a 404 did not fail the quote")
	}
	if _, err := c.Quote(ctx, "EMPTY"); !errors.Is(err, ErrNoQuote) {
		t.Errorf("empty results: err = %v, want ErrNoQuote", err)
	}
	if _, err := c.Quote(ctx, "BAD"); !errors.Is(err, ErrNoQuote) {
		t.Errorf("zero price: err = %v, want ErrNoQuote", err)
	}
}

func TestQuoteSendsToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"results":[{"regularMarketPrice":10.0}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("secret"))
	if _, err := c.Quote(context.Background(), "PETR4"); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer secret" {
		t.Errorf("Authorization header = %q, want Bearer secret", got)
	}
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote/list": `{"stocks":[
			{"stock":"PETR4","name":"Petrobras PN","type":"stock","close":38.52},
			{"stock":"PETR3","name":"Petrobras ON","type":"stock","close":41.10}
		]}`,
	})

	results, err := c.Search(context.Background(), "petr")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}
	if results[0].Symbol != "PETR4" || results[0].Close != 38.52 {
		t.Errorf("first result = %+v", results[0])
	}
}

func TestSearchShortTermSkipsAPI(t *testing.T) {
	// No server at all: a short term must not reach the network.
	c := New(WithBaseURL("http://127.0.0.1:0"))
	results, err := c.Search(context.Background(), "p")
	if err != nil || results != nil {
		t.Errorf("Search(short term) = (%v, %v), want (nil, nil)", results, err)
	}
}

func TestHistory(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote/PETR4": `{"results":[{"historicalDataPrice":[
			{"date":1735689600,"close":36.10},
			{"date":1735776000,"close":0},
			{"date":1735862400,"close":37.25}
		]}]}`,
	})

	candles, err := c.History(context.Background(), "PETR4", "1mo", "1d")
	if err != nil {
		t.Fatal(err)
	}
	// The zero-close point is dropped.
	if len(candles) != 2 {
		t.Fatalf("History returned %d candles, want 2", len(candles))
	}
	if candles[0].Close != 36.10 || candles[1].Close != 37.25 {
		t.Errorf("candles = %+v", candles)
	}
	if candles[0].Date.Year() != 2025 {
		t.Errorf("candle date = %s, want a 2025 date", candles[0].Date)
	}
}

func TestHistoryEmpty(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"/quote/GHOST": `{"results":[]}`,
	})
	if _, err := c.History(context.Background(), "GHOST", "1mo", "1d"); !errors.Is(err, ErrNoQuote) {
		t.Errorf("empty history: err = %v, want ErrNoQuote", err)
	}
}
