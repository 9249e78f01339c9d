package ioeutils

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/taxon"
)

// Fetch implements eutils.Fetcher. All ids go to one POST request.
func (c *client) Fetch(
	ctx context.Context,
	ids []int,
) ([]taxon.Record, error) {
	if len(ids) == 0 {
		return nil, eutils.EmptyIDsError()
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = strconv.Itoa(id)
	}

	vals := c.values()
	vals.Set("db", c.database)
	vals.Set("mode", "xml")
	vals.Set("id", strings.Join(idStrs, ","))

	data, err := c.call(ctx, http.MethodPost, EFetch, vals)
	if err != nil {
		return nil, err
	}

	doc, err := taxon.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if e := doc.Find("ERROR"); e != nil {
		return nil, ServiceError(EFetch, strings.TrimSpace(e.Text))
	}

	res := taxon.Records(doc)
	if len(res) != len(ids) {
		return nil, eutils.CardinalityError(len(ids), len(res))
	}
	return res, nil
}
