// Package pager provides a lazy pull iterator over NCBI search results.
// Pagination and hydration are fused: each page of ids from ESearch is
// immediately fetched with EFetch, so callers only see full records.
package pager

import (
	"context"

	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/taxon"
)

// DefaultPageSize is used when a query has no positive page size.
const DefaultPageSize = 20

// State of the pager.
type State int

const (
	// Fresh pager did not request anything yet, or was restarted.
	Fresh State = iota

	// Paging pager serves records from its buffer.
	Paging

	// Refilling pager has an empty buffer and will query the next page.
	Refilling

	// Exhausted pager received an empty page. It stays exhausted until
	// Restart.
	Exhausted
)

var stateNames = map[State]string{
	Fresh:     "fresh",
	Paging:    "paging",
	Refilling: "refilling",
	Exhausted: "exhausted",
}

func (s State) String() string {
	if res, ok := stateNames[s]; ok {
		return res
	}
	return "unknown"
}

// Query is an immutable search request.
type Query struct {
	// Term is an Entrez search term, for example
	// "species[Rank] AND PRI[TXDV]".
	Term string

	// PageSize is the number of ids requested per search call.
	PageSize int
}

// NewQuery creates a query, non-positive page size is replaced by
// DefaultPageSize.
func NewQuery(term string, pageSize int) Query {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Query{Term: term, PageSize: pageSize}
}

// Pager is a forward-only, restartable iterator over search results.
// It is not safe for concurrent use.
type Pager struct {
	query    Query
	searcher eutils.Searcher
	fetcher  eutils.Fetcher

	// cursor is the offset of the next search request. It grows by one
	// for every record given out.
	cursor int

	// buffer keeps records of the current page that were not given out
	// yet.
	buffer []taxon.Record

	// total is the last known number of matches.
	total int

	exhausted bool
}

// New creates a pager. No requests are made until the first call to
// Next or First.
func New(q Query, s eutils.Searcher, f eutils.Fetcher) *Pager {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	return &Pager{query: q, searcher: s, fetcher: f}
}

// Query returns the query of the pager.
func (p *Pager) Query() Query {
	return p.query
}

// Count returns the last known total number of matches. It is zero
// before the first search.
func (p *Pager) Count() int {
	return p.total
}

// State returns the current state of the pager.
func (p *Pager) State() State {
	switch {
	case p.exhausted:
		return Exhausted
	case len(p.buffer) > 0:
		return Paging
	case p.cursor == 0:
		return Fresh
	default:
		return Refilling
	}
}

// Restart returns the pager to the Fresh state. The next call to Next
// queries the first page again.
func (p *Pager) Restart() {
	p.cursor = 0
	p.buffer = nil
	p.exhausted = false
}

// First restarts the pager and returns the first record.
func (p *Pager) First(ctx context.Context) (taxon.Record, bool, error) {
	p.Restart()
	return p.Next(ctx)
}

// Next returns the next record. When there are no more results it
// returns false and no error, and keeps doing so without any requests
// until Restart. Errors of search and fetch calls are returned as is,
// the pager stays usable after Restart.
func (p *Pager) Next(ctx context.Context) (taxon.Record, bool, error) {
	var zero taxon.Record
	if p.exhausted {
		return zero, false, nil
	}

	if len(p.buffer) == 0 {
		if err := p.refill(ctx); err != nil {
			return zero, false, err
		}
		if p.exhausted {
			return zero, false, nil
		}
	}

	rec := p.buffer[0]
	p.buffer[0] = zero
	p.buffer = p.buffer[1:]
	p.cursor++
	return rec, true, nil
}

func (p *Pager) refill(ctx context.Context) error {
	res, err := p.searcher.Search(ctx, p.query.Term, p.cursor, p.query.PageSize)
	if err != nil {
		return err
	}
	p.total = res.Count

	if len(res.IDs) == 0 {
		p.exhausted = true
		return nil
	}

	recs, err := p.fetcher.Fetch(ctx, res.IDs)
	if err != nil {
		return err
	}
	if len(recs) != len(res.IDs) {
		return eutils.CardinalityError(len(res.IDs), len(recs))
	}
	p.buffer = recs
	return nil
}
