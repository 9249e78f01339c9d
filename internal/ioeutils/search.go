package ioeutils

import (
	"bytes"
	"context"
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/taxon"
)

type esearchResult struct {
	Count  int      `xml:"Count"`
	IDs    []int    `xml:"IdList>Id"`
	Errors []string `xml:"ERROR"`
}

// Search implements eutils.Searcher.
func (c *client) Search(
	ctx context.Context,
	term string,
	start, max int,
) (eutils.SearchResult, error) {
	var res eutils.SearchResult
	vals := c.values()
	vals.Set("db", c.database)
	vals.Set("term", term)
	vals.Set("retstart", strconv.Itoa(start))
	vals.Set("retmax", strconv.Itoa(max))

	data, err := c.call(ctx, http.MethodGet, ESearch, vals)
	if err != nil {
		return res, err
	}

	var esr esearchResult
	if err = xml.NewDecoder(bytes.NewReader(data)).Decode(&esr); err != nil {
		return res, taxon.DecodeError(err)
	}
	if len(esr.Errors) > 0 {
		return res, ServiceError(ESearch, esr.Errors[0])
	}

	res.Count = esr.Count
	res.IDs = esr.IDs
	return res, nil
}
