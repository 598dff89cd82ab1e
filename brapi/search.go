package brapi

import (
	"context"
	"fmt"
	"net/url"
)

// SearchResult is one candidate asset returned by the list endpoint.
type SearchResult struct {
	Symbol string  // exchange symbol, e.g. PETR4, IVVB11
	Name   string  // display name
	Type   string  // brapi's own classification (stock, fund, bdr)
	Close  float64 // last close price in BRL, 0 when unknown
}

// searchResponse matches the /quote/list payload.
type searchResponse struct {
	Stocks []struct {
		Stock string  `json:"stock"`
		Name  string  `json:"name"`
		Type  string  `json:"type"`
		Close float64 `json:"close"`
	} `json:"stocks"`
}

// Search looks up tradable assets matching a term. Terms shorter than two
// characters return no results without hitting the API, as the original
// app's search box did.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	if len(term) < 2 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("search", term)
	q.Set("limit", "10")
	q.Set("sortBy", "volume")
	q.Set("sortOrder", "desc")
	addr := fmt.Sprintf("%s/quote/list?%s", c.baseURL, q.Encode())

	var resp searchResponse
	if err := c.getJSON(ctx, addr, &resp); err != nil {
		return nil, fmt.Errorf("could not search %q: %w", term, err)
	}

	results := make([]SearchResult, 0, len(resp.Stocks))
	for _, s := range resp.Stocks {
		results = append(results, SearchResult{
			Symbol: s.Stock,
			Name:   s.Name,
			Type:   s.Type,
			Close:  s.Close,
		})
	}
	return results, nil
}
