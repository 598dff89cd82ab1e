package brapi

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Candle is one point of a historical price series.
type Candle struct {
	Date  time.Time
	Close float64
}

// historyResponse matches the /quote payload when range and interval
// parameters are set.
type historyResponse struct {
	Results []struct {
		HistoricalDataPrice []struct {
			Date  int64   `json:"date"` // unix seconds
			Close float64 `json:"close"`
		} `json:"historicalDataPrice"`
	} `json:"results"`
}

// History returns the close-price series for a ticker over a range
// (e.g. "1mo", "3mo", "1y") at a given interval (e.g. "1d").
func (c *Client) History(ctx context.Context, ticker, rng, interval string) ([]Candle, error) {
	q := url.Values{}
	q.Set("range", rng)
	q.Set("interval", interval)
	addr := fmt.Sprintf("%s/quote/%s?%s", c.baseURL, url.PathEscape(ticker), q.Encode())

	var resp historyResponse
	if err := c.getJSON(ctx, addr, &resp); err != nil {
		return nil, fmt.Errorf("could not fetch history for %q: %w", ticker, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w for %q: empty history", ErrNoQuote, ticker)
	}

	series := resp.Results[0].HistoricalDataPrice
	candles := make([]Candle, 0, len(series))
	for _, p := range series {
		if p.Close <= 0 {
			continue
		}
		candles = append(candles, Candle{Date: time.Unix(p.Date, 0).UTC(), Close: p.Close})
	}
	return candles, nil
}
