// Package ncbitax imports NCBI Taxonomy records into a tag store and
// enriches imported objects with LinkOut cross-references.
package ncbitax

import (
	"context"
	"time"
)

// Importer copies taxa found by a search term into a tag store.
type Importer interface {
	// Import runs the whole search, projecting and writing every accepted
	// record. It stops on the first fatal error.
	Import(ctx context.Context) (ImportSummary, error)
}

// Enricher adds LinkOut cross-references to objects already imported.
type Enricher interface {
	Enrich(ctx context.Context) (LinkOutSummary, error)
}

// ImportSummary keeps the results of an import run.
type ImportSummary struct {
	// Matched is the number of records NCBI reported for the search term.
	Matched int

	// Imported is the number of records written to the store.
	Imported int

	// Rejected is the number of records skipped by the name filter.
	Rejected int

	// Duration of the run.
	Duration time.Duration
}

// LinkOutSummary keeps the results of an enrichment run.
type LinkOutSummary struct {
	// Objects is the number of store objects with an NCBI TaxId.
	Objects int

	// Enriched is the number of objects that received at least one link.
	Enriched int

	// Links is the total number of links written.
	Links int

	// Failed is the number of objects whose links could not be
	// retrieved.
	Failed int

	// Duration of the run.
	Duration time.Duration
}
