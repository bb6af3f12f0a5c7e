package catalog

// Package catalog implements the remote catalog client and the
// concurrent enrichment pipeline: a search produces placeholder entries,
// and one goroutine per entry fetches detail plus icon and hands the
// finished record to the rendering sink.
