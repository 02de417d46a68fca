// Package geo holds the static geography reference data used to price
// deliveries: the region table with per-region home and pickup-point fees,
// and the region-scoped city lists.
//
// The table is read-only at order time. An order looks a region's fees up
// once when the region is selected and caches them, so later edits to the
// table never retroactively change historical orders.
package geo
