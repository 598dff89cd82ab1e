// Package renderer renders wallet reports as markdown. Privacy masking
// lives here, at the presentation boundary: the wallet always computes real
// values, and this package decides whether to show them.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmaia/carteira"
	"github.com/dmaia/carteira/brapi"
)

// Masked placeholders, as the original app displayed them.
const (
	maskedMoney   = "R$ ****"
	maskedPercent = "**%"
)

// Options control report rendering.
type Options struct {
	// Privacy replaces every currency and percent output with a masked
	// placeholder.
	Privacy bool
}

func (o Options) money(m carteira.Money) string {
	if o.Privacy {
		return maskedMoney
	}
	return m.String()
}

func (o Options) signedMoney(m carteira.Money) string {
	if o.Privacy {
		return maskedMoney
	}
	return m.SignedString()
}

func (o Options) percent(p carteira.Percent) string {
	if o.Privacy {
		return maskedPercent
	}
	return p.String()
}

func (o Options) signedPercent(p carteira.Percent) string {
	if o.Privacy {
		return maskedPercent
	}
	return p.SignedString()
}

// Positions renders the open positions as a markdown table, sorted by ticker.
func Positions(positions map[string]carteira.Position, opts Options) string {
	tickers := make([]string, 0, len(positions))
	for t := range positions {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	var b strings.Builder
	fmt.Fprintf(&b, "# Posições\n\n")
	if len(tickers) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Ticker | Tipo | Quantidade | Preço Médio | Preço Atual | Investido | Valor Atual |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, t := range tickers {
		p := positions[t]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			p.Ticker,
			p.AssetType.Label(),
			p.Quantity,
			opts.money(p.AverageCost),
			opts.money(p.CurrentPrice),
			opts.money(p.CostBasis()),
			opts.money(p.MarketValue()),
		)
	}
	return b.String()
}

// Summary renders the portfolio snapshot: totals, profit and the per-type
// allocation breakdown.
func Summary(s carteira.Snapshot, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Carteira\n\n")
	fmt.Fprintf(&b, "- Investido: %s\n", opts.money(s.TotalCostBasis))
	fmt.Fprintf(&b, "- Valor atual: %s\n", opts.money(s.CurrentValue))
	fmt.Fprintf(&b, "- Resultado: %s (%s)\n", opts.signedMoney(s.ProfitAbsolute()), opts.signedPercent(s.ProfitPercent()))

	if len(s.Allocation) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n## Alocação\n\n")
	fmt.Fprintln(&b, "| Tipo | Valor | % |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, a := range s.Allocation {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", a.AssetType.Label(), opts.money(a.Value), opts.percent(a.Percent))
	}
	return b.String()
}

// Transactions renders the transaction log as a markdown table.
func Transactions(txs []carteira.Transaction, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transações\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Data | Operação | Ticker | Tipo | Quantidade | Preço | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Operation,
			tx.Ticker,
			tx.AssetType.Label(),
			tx.Quantity,
			opts.money(tx.Price),
			opts.money(tx.Total()),
		)
	}
	return b.String()
}

// SearchResults renders asset search candidates. Prices here are public
// market data, not portfolio amounts, so privacy masking does not apply.
func SearchResults(term string, results []brapi.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Busca: %s\n\n", term)
	if len(results) == 0 {
		fmt.Fprintln(&b, "No results.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Símbolo | Nome | Tipo | Último Preço |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, r := range results {
		price := "-"
		if r.Close > 0 {
			price = carteira.M(r.Close).String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Symbol, r.Name, r.Type, price)
	}
	return b.String()
}

// History renders a close-price series for one ticker.
func History(ticker, rng string, candles []brapi.Candle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Histórico: %s (%s)\n\n", ticker, rng)
	if len(candles) == 0 {
		fmt.Fprintln(&b, "No data.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Data | Fechamento |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, c := range candles {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Date.Format("2006-01-02"), carteira.M(c.Close))
	}
	return b.String()
}
