package brapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// ErrNoQuote means the API answered but carried no usable price for the
// ticker (unknown symbol, suspended listing).
var ErrNoQuote = errors.New("no quote available")

// Quote returns the current market price for a ticker, in BRL.
//
// The /quote payload nests the price deep in a results array whose shape
// varies with the asset class, so the price is plucked with a jsonpath
// instead of a full struct mapping.
func (c *Client) Quote(ctx context.Context, ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/quote/%s", c.baseURL, url.PathEscape(ticker))

	var jobj any
	if err := c.getJSON(ctx, addr, &jobj); err != nil {
		return 0, fmt.Errorf("could not fetch quote for %q: %w", ticker, err)
	}

	const path = "$.results[0].regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%w for %q: %v", ErrNoQuote, ticker, err)
	}
	// jsonpath may wrap a single answer in a list.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return 0, fmt.Errorf("%w for %q: price is %v", ErrNoQuote, ticker, jval)
	}
	return val, nil
}
