// Package iolinkout enriches imported taxa with LinkOut references of
// NCBI providers. Every object with an NCBI TaxId tag is looked up with
// ELink, and links of known providers are saved as tags of the object.
package iolinkout

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/ncbitax/internal/iometrics"
	ncbitax "github.com/gnames/ncbitax/pkg"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/gnames/ncbitax/pkg/tagset"
)

// Tag names of LinkOut providers.
const (
	Wikipedia   = "Wikipedia"
	BBCWildlife = "BBCWildlife"
)

// Description of the LinkOut namespace.
const Description = "External references of NCBI taxa provided by NCBI LinkOut"

// Namespace returns "{prefix}/taxonomy/linkout".
func Namespace(prefix string) string {
	return tagset.TaxonomyNamespace(prefix) + "/linkout"
}

// TagName returns the tag name of a link, or an empty string if the
// provider is not of interest.
func TagName(l eutils.Link) string {
	switch {
	case strings.EqualFold(l.Provider, "iPhylo") &&
		strings.EqualFold(l.LinkName, "Wikipedia"):
		return Wikipedia
	case strings.Contains(strings.ToUpper(l.Provider), "BBC"),
		strings.Contains(strings.ToUpper(l.ProviderAbbr), "BBC"):
		return BBCWildlife
	default:
		return ""
	}
}

type enricher struct {
	cfg      *config.Config
	linker   eutils.Linker
	st       store.Store
	metrics  *iometrics.Metrics
	progress bool
}

// Option configures an enricher.
type Option func(*enricher)

// OptMetrics sets metrics collected during the run.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(e *enricher) {
		e.metrics = m
	}
}

// OptProgress shows a progress bar in the terminal.
func OptProgress(b bool) Option {
	return func(e *enricher) {
		e.progress = b
	}
}

// New creates an Enricher that adds links to objects of st.
func New(
	cfg *config.Config,
	linker eutils.Linker,
	st store.Store,
	opts ...Option,
) ncbitax.Enricher {
	res := &enricher{cfg: cfg, linker: linker, st: st}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Enrich saves LinkOut references for every object that has an NCBI
// TaxId. Objects without links of interest are left untouched. Failure
// to get links of one object does not stop the run.
func (e *enricher) Enrich(ctx context.Context) (ncbitax.LinkOutSummary, error) {
	var res ncbitax.LinkOutSummary
	start := time.Now()
	prefix := e.cfg.NamespacePrefix()
	idTag := tagset.NCBITag(prefix, "TaxId")

	objs, err := e.st.Query(ctx, idTag)
	if err != nil {
		if ctx.Err() != nil {
			return res, CancelledError(ctx.Err())
		}
		return res, err
	}
	res.Objects = len(objs)
	gn.Info("Found <em>%s</em> objects with <em>%s</em> tag",
		humanize.Comma(int64(res.Objects)), idTag)

	var bar *pb.ProgressBar
	if e.progress && res.Objects > 0 {
		bar = pb.Full.Start(res.Objects)
		bar.Set("prefix", "Adding links: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	ns := Namespace(prefix)
	for _, o := range objs {
		if err = ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, CancelledError(err)
		}
		if bar != nil {
			bar.Increment()
		}

		id, ok := o.Int(idTag)
		if !ok {
			res.Failed++
			slog.Warn("TaxId is not an integer",
				"name", o.About, "taxid", o.Tags[idTag])
			continue
		}
		links, err := e.linker.LinkOut(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				res.Duration = time.Since(start)
				return res, CancelledError(ctx.Err())
			}
			res.Failed++
			slog.Warn("Cannot get LinkOut data",
				"name", o.About, "taxid", id, "error", err)
			continue
		}

		tags := linkTags(ns, links)
		if len(tags) == 0 {
			continue
		}
		if _, err = e.st.Write(ctx, o.About, tags); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		res.Enriched++
		for path, v := range tags {
			n := len(v.([]string))
			res.Links += n
			e.metrics.Links(path[len(ns)+1:], n)
		}
	}

	if res.Enriched > 0 {
		if err = e.st.Describe(ctx, ns, Description); err != nil {
			return res, err
		}
	}

	res.Duration = time.Since(start)
	slog.Info("LinkOut complete",
		"objects", res.Objects,
		"enriched", res.Enriched,
		"links", res.Links,
		"failed", res.Failed,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info(`LinkOut complete
Enriched: <em>%s</em> of <em>%s</em> objects, links: <em>%s</em>.
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(res.Enriched)),
		humanize.Comma(int64(res.Objects)),
		humanize.Comma(int64(res.Links)),
		gnfmt.TimeString(res.Duration.Seconds()),
	)

	if res.Failed > 0 {
		return res, FailedObjectsError(res.Failed, res.Objects)
	}
	return res, nil
}

// linkTags groups URLs of interesting providers by tag path. Duplicate
// URLs are dropped, empty groups are omitted.
func linkTags(ns string, links []eutils.Link) tagset.TagSet {
	res := make(tagset.TagSet)
	for _, l := range links {
		name := TagName(l)
		if name == "" || l.URL == "" {
			continue
		}
		path := ns + "/" + name
		urls, _ := res[path].([]string)
		if slices.Contains(urls, l.URL) {
			continue
		}
		res[path] = append(urls, l.URL)
	}
	return res
}
