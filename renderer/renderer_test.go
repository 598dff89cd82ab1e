package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/dmaia/carteira"
	"github.com/dmaia/carteira/brapi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func position(ticker string, at carteira.AssetType, qty, avg, price float64) carteira.Position {
	return carteira.Position{
		Ticker:       ticker,
		AssetType:    at,
		Quantity:     carteira.Q(qty),
		AverageCost:  carteira.M(avg),
		CurrentPrice: carteira.M(price),
	}
}

// headings parses markdown and returns its heading texts, validating the
// report is well-formed markdown along the way.
func headings(t *testing.T, md string) []string {
	t.Helper()
	content := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(content))
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func TestPositions(t *testing.T) {
	positions := map[string]carteira.Position{
		"VALE3": position("VALE3", carteira.Stock, 5, 60, 65),
		"PETR4": position("PETR4", carteira.Stock, 10, 25, 30),
	}

	md := Positions(positions, Options{})
	if got := headings(t, md); len(got) != 1 || got[0] != "Posições" {
		t.Errorf("headings = %v, want [Posições]", got)
	}
	// Sorted by ticker.
	if strings.Index(md, "PETR4") > strings.Index(md, "VALE3") {
		t.Error("positions are not sorted by ticker")
	}
	for _, want := range []string{"AÇÃO", "R$25,00", "R$300,00", "R$325,00"} {
		if !strings.Contains(md, want) {
			t.Errorf("report is missing %q:\n%s", want, md)
		}
	}
}

func TestPositionsEmpty(t *testing.T) {
	md := Positions(nil, Options{})
	if !strings.Contains(md, "No open positions.") {
		t.Errorf("empty report:\n%s", md)
	}
}

func TestSummary(t *testing.T) {
	s := carteira.Snapshot{
		TotalCostBasis: carteira.M(500),
		CurrentValue:   carteira.M(600),
		Allocation: []carteira.Allocation{
			{AssetType: carteira.Stock, Value: carteira.M(360), Percent: 60},
			{AssetType: carteira.ETF, Value: carteira.M(240), Percent: 40},
		},
	}

	md := Summary(s, Options{})
	if got := headings(t, md); len(got) != 2 || got[0] != "Carteira" || got[1] != "Alocação" {
		t.Errorf("headings = %v, want [Carteira Alocação]", got)
	}
	for _, want := range []string{"R$500,00", "R$600,00", "+R$100,00", "+20.00%", "ETF", "60.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary is missing %q:\n%s", want, md)
		}
	}
}

func TestPrivacyMasksEverything(t *testing.T) {
	positions := map[string]carteira.Position{
		"PETR4": position("PETR4", carteira.Stock, 10, 25, 30),
	}
	s := carteira.SnapshotAtCost(positions)
	txs := []carteira.Transaction{
		carteira.NewBuy(carteira.MustParseDate("2025-01-10"), "PETR4", carteira.Stock, carteira.Q(10), carteira.M(25)),
	}

	opts := Options{Privacy: true}
	for name, md := range map[string]string{
		"positions":    Positions(positions, opts),
		"summary":      Summary(s, opts),
		"transactions": Transactions(txs, opts),
	} {
		if strings.Contains(md, "R$2") || strings.Contains(md, "R$3") {
			t.Errorf("%s report leaks amounts under privacy mode:\n%s", name, md)
		}
		if !strings.Contains(md, maskedMoney) {
			t.Errorf("%s report has no masked amounts:\n%s", name, md)
		}
	}
	if md := Summary(s, opts); strings.Contains(md, "0.00%") {
		t.Errorf("summary leaks percentages under privacy mode:\n%s", md)
	}
	// Quantities and tickers stay visible.
	if md := Positions(positions, opts); !strings.Contains(md, "PETR4") || !strings.Contains(md, "10") {
		t.Errorf("privacy mode hid non-monetary fields:\n%s", md)
	}
}

func TestTransactions(t *testing.T) {
	txs := []carteira.Transaction{
		carteira.NewBuy(carteira.MustParseDate("2025-01-10"), "PETR4", carteira.Stock, carteira.Q(10), carteira.M(25)),
		carteira.NewSell(carteira.MustParseDate("2025-02-10"), "PETR4", carteira.Stock, carteira.Q(4), carteira.M(30)),
	}
	md := Transactions(txs, Options{})
	for _, want := range []string{"2025-01-10", "BUY", "SELL", "R$250,00", "R$120,00"} {
		if !strings.Contains(md, want) {
			t.Errorf("transactions report is missing %q:\n%s", want, md)
		}
	}
}

func TestSearchResultsIgnorePrivacy(t *testing.T) {
	results := []brapi.SearchResult{
		{Symbol: "PETR4", Name: "Petrobras PN", Type: "stock", Close: 38.52},
		{Symbol: "PETR3", Name: "Petrobras ON", Type: "stock"},
	}
	md := SearchResults("petr", results)
	// Market prices are public data, never masked.
	if !strings.Contains(md, "R$38,52") {
		t.Errorf("search report is missing the close price:\n%s", md)
	}
	// A missing close renders as a dash.
	if !strings.Contains(md, "| - |") {
		t.Errorf("search report does not dash out a missing close:\n%s", md)
	}
}

func TestHistory(t *testing.T) {
	md := History("PETR4", "1mo", []brapi.Candle{
		{Date: mustTime(t, "2025-01-02"), Close: 36.10},
	})
	for _, want := range []string{"Histórico: PETR4 (1mo)", "2025-01-02", "R$36,10"} {
		if !strings.Contains(md, want) {
			t.Errorf("history report is missing %q:\n%s", want, md)
		}
	}
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	out, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
