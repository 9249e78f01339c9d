package ioeutils

import (
	"bytes"
	"context"
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/taxon"
)

type elinkResult struct {
	ObjURLs []objURL `xml:"LinkSet>IdUrlList>IdUrlSet>ObjUrl"`
	// ERROR is reported either at the document root or inside LinkSet.
	Errors    []string `xml:"ERROR"`
	SetErrors []string `xml:"LinkSet>ERROR"`
}

type objURL struct {
	URL      string `xml:"Url"`
	LinkName string `xml:"LinkName"`
	Category string `xml:"Category"`
	Provider struct {
		Name     string `xml:"Name"`
		NameAbbr string `xml:"NameAbbr"`
	} `xml:"Provider"`
}

// LinkOut implements eutils.Linker with the "llinks" command of ELink.
func (c *client) LinkOut(ctx context.Context, id int) ([]eutils.Link, error) {
	vals := c.values()
	vals.Set("dbfrom", c.database)
	vals.Set("id", strconv.Itoa(id))
	vals.Set("cmd", "llinks")

	data, err := c.call(ctx, http.MethodGet, ELink, vals)
	if err != nil {
		return nil, err
	}

	var elr elinkResult
	if err = xml.NewDecoder(bytes.NewReader(data)).Decode(&elr); err != nil {
		return nil, taxon.DecodeError(err)
	}
	if errs := append(elr.Errors, elr.SetErrors...); len(errs) > 0 {
		return nil, ServiceError(ELink, errs[0])
	}

	res := make([]eutils.Link, 0, len(elr.ObjURLs))
	for _, u := range elr.ObjURLs {
		res = append(res, eutils.Link{
			Provider:     strings.TrimSpace(u.Provider.Name),
			ProviderAbbr: strings.TrimSpace(u.Provider.NameAbbr),
			LinkName:     strings.TrimSpace(u.LinkName),
			URL:          strings.TrimSpace(u.URL),
			Category:     strings.TrimSpace(u.Category),
		})
	}
	return res, nil
}
