// Package pod implements a single-user purchase-order document editor: a
// free-text header, a variable-length line-item table, a positionally aligned
// sales list, and the derived totals reconciling ordered against sold
// quantities.
//
// The package is organised around three pieces:
//
//   - the Document state model and its mutators, which keep the item and
//     sales lists consistent after every edit,
//   - a Store that persists the Document as one atomic JSON value under a
//     versioned key, migrating two older on-disk shapes on load,
//   - pure derived-value functions (line totals, grand total, sold and
//     remaining quantities, franco-date classification) recomputed on every
//     read.
//
// Numeric fields are free text on purpose: a quantity of "10 pcs" or a price
// of "KWD 12.50" is preserved verbatim in storage and parsed on demand by
// ParseNumber. Storage and clock are injected capabilities so the whole core
// is testable without touching the real filesystem or wall clock.
package pod
