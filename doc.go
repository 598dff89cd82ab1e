// Package carteira provides the core types and functions for tracking a
// personal investment portfolio on the Brazilian market (B3 stocks, BDRs,
// ETFs and crypto), with every amount in BRL.
//
// The core functionalities include:
//   - Ledger Management: recording buys and sells in an immutable,
//     chronological transaction log, the single source of truth from which
//     everything else is recomputed.
//   - Position Accounting: folding the log into the current position set
//     using weighted-average-cost accounting.
//   - Valuation: aggregating positions into point-in-time snapshots (total
//     invested, current value, profit, allocation by asset type), with or
//     without live market quotes.
//   - Entry Validation: rejecting bad quantities, bad prices, unknown
//     tickers and oversized sells before they ever reach the ledger.
//   - Data Persistence: a small key-value persistence boundary, so the
//     transaction log and settings survive restarts.
//
// This package serves as the foundational logic for the `carteira`
// command-line tool; market data comes from the brapi subpackage.
package carteira
