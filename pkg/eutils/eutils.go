// Package eutils defines contracts for NCBI E-utilities used by ncbitax:
// ESearch for identifiers, EFetch for records, and ELink for LinkOut
// providers. Implementations live in internal/ioeutils.
package eutils

import (
	"context"

	"github.com/gnames/ncbitax/pkg/taxon"
)

// SearchResult is one page of ESearch results.
type SearchResult struct {
	// Count is the total number of records matching the term.
	Count int

	// IDs are record identifiers of the page, in NCBI order.
	IDs []int
}

// Searcher finds record identifiers that match a search term.
type Searcher interface {
	// Search returns up to max identifiers starting at offset start.
	// An empty IDs slice means there are no more results.
	Search(ctx context.Context, term string, start, max int) (SearchResult, error)
}

// Fetcher hydrates record identifiers into full records.
type Fetcher interface {
	// Fetch returns exactly one record per id, in the order NCBI returns
	// them. Anything else is a malformed response.
	Fetch(ctx context.Context, ids []int) ([]taxon.Record, error)
}

// SearchFetcher is a data source for pager.Pager.
type SearchFetcher interface {
	Searcher
	Fetcher
}

// Link is a LinkOut reference of a record to an external resource.
type Link struct {
	// Provider is the full name of the LinkOut provider.
	Provider string

	// ProviderAbbr is the short name of the provider.
	ProviderAbbr string

	// LinkName is an optional label of the link set by the provider.
	LinkName string

	// URL of the external resource.
	URL string

	// Category is the LinkOut category, for example "Education".
	Category string
}

// Linker lists LinkOut references of a record.
type Linker interface {
	LinkOut(ctx context.Context, id int) ([]Link, error)
}
