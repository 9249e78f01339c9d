// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. This is a pure package, parsing is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
// It maintains separate pools for botanical and zoological nomenclatural
// codes.
type Pool interface {
	// Parse parses a scientific name string using the specified
	// nomenclatural code. It is safe for concurrent use.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Close shuts down the parser pools. After calling Close, the pool
	// should not be used.
	Close()
}

type pool struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of parsers
// per nomenclatural code. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	newCh := func(code nomcode.Code) chan gnparser.GNparser {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		return gnparser.NewPool(cfg, size)
	}

	return &pool{
		botanicalCh:  newCh(nomcode.Botanical),
		zoologicalCh: newCh(nomcode.Zoological),
	}
}

// Parse takes a parser of the given code from the pool, parses the name
// and returns the parser back.
func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	parser := <-ch
	res := parser.ParseName(nameString)
	ch <- parser

	return res, nil
}

// Close closes both parser channels and drains them.
func (p *pool) Close() {
	for _, ch := range []chan gnparser.GNparser{p.botanicalCh, p.zoologicalCh} {
		if ch == nil {
			continue
		}
		close(ch)
		for range ch {
		}
	}
}
