// Package ioimport implements the import of NCBI Taxonomy records into a
// tag store. It drives a pager over E-utilities, projects every record to
// tags and writes accepted records one transaction per record.
package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/ncbitax/internal/iometrics"
	ncbitax "github.com/gnames/ncbitax/pkg"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/pager"
	"github.com/gnames/ncbitax/pkg/parserpool"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/gnames/ncbitax/pkg/taxon"
)

// Descriptions of namespaces created by an import.
const (
	TaxonomyDescription = "Data imported by ncbitax from NCBI Taxonomy"
	NCBIDescription     = `Data extracted from the "NCBI Taxonomy" database.`
	GNDescription       = "Canonical forms of scientific names generated by GNparser"
)

type importer struct {
	cfg      *config.Config
	src      eutils.SearchFetcher
	st       store.Store
	metrics  *iometrics.Metrics
	progress bool
}

// Option configures an importer.
type Option func(*importer)

// OptMetrics sets metrics collected during the run.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(i *importer) {
		i.metrics = m
	}
}

// OptProgress shows a progress bar in the terminal.
func OptProgress(b bool) Option {
	return func(i *importer) {
		i.progress = b
	}
}

// New creates an Importer that reads from src and writes to st.
func New(
	cfg *config.Config,
	src eutils.SearchFetcher,
	st store.Store,
	opts ...Option,
) ncbitax.Importer {
	res := &importer{cfg: cfg, src: src, st: st}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Import searches NCBI Taxonomy for the configured term and writes every
// accepted record to the store.
func (i *importer) Import(ctx context.Context) (ncbitax.ImportSummary, error) {
	start := time.Now()
	res, err := i.run(ctx, start)
	res.Duration = time.Since(start)
	return res, err
}

func (i *importer) run(
	ctx context.Context,
	start time.Time,
) (ncbitax.ImportSummary, error) {
	var res ncbitax.ImportSummary

	term := i.cfg.Import.Term
	if term == "" {
		return res, EmptyTermError()
	}
	prefix := i.cfg.NamespacePrefix()
	proj := tagset.New(prefix)

	var canon *parserpool.Canonicalizer
	if i.cfg.Import.WithCanonical {
		pool := parserpool.NewPool(0)
		defer pool.Close()
		canon = parserpool.NewCanonicalizer(pool, prefix)
	}

	slog.Info("Starting import", "term", term,
		"page_size", i.cfg.Import.PageSize, "namespace", proj.Namespace())

	p := pager.New(pager.NewQuery(term, i.cfg.Import.PageSize), i.src, i.src)
	rec, ok, err := p.First(ctx)
	if err != nil {
		return res, i.fail(ctx, res, err)
	}

	res.Matched = p.Count()
	i.metrics.Matches(res.Matched)
	gn.Info("Found <em>%s</em> records for <em>%s</em>",
		humanize.Comma(int64(res.Matched)), term)

	var bar *pb.ProgressBar
	if i.progress && res.Matched > 0 {
		bar = pb.Full.Start(res.Matched)
		bar.Set("prefix", "Importing taxa: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for ; ok; rec, ok, err = p.Next(ctx) {
		if ctx.Err() != nil {
			return res, CancelledError(res.Imported, ctx.Err())
		}
		if err = i.importRecord(ctx, proj, canon, rec, &res); err != nil {
			return res, err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if err != nil {
		return res, i.fail(ctx, res, err)
	}

	if err = i.describe(ctx, prefix, canon); err != nil {
		return res, err
	}

	dur := time.Since(start)
	slog.Info("Import complete",
		"matched", res.Matched,
		"imported", res.Imported,
		"rejected", res.Rejected,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`Import complete
Imported: <em>%s</em>, rejected: <em>%s</em>, matched: <em>%s</em>.
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(res.Imported)),
		humanize.Comma(int64(res.Rejected)),
		humanize.Comma(int64(res.Matched)),
		gnfmt.TimeString(dur.Seconds()),
	)
	return res, nil
}

func (i *importer) importRecord(
	ctx context.Context,
	proj *tagset.Projector,
	canon *parserpool.Canonicalizer,
	rec taxon.Record,
	res *ncbitax.ImportSummary,
) error {
	pr, err := proj.Project(rec)
	if err != nil {
		i.metrics.Record(iometrics.Failed)
		return err
	}

	if pr.Rejected {
		res.Rejected++
		i.metrics.Record(iometrics.Rejected)
		slog.Info("Record rejected", "name", pr.About, "reason", pr.Reason)
		return nil
	}

	if canon != nil {
		if err = addCanonical(canon, rec, pr.Tags); err != nil {
			i.metrics.Record(iometrics.Failed)
			return err
		}
	}

	id, err := i.st.Write(ctx, pr.About, pr.Tags)
	if err != nil {
		i.metrics.Record(iometrics.Failed)
		return err
	}
	res.Imported++
	i.metrics.Record(iometrics.Imported)
	slog.Debug("Record imported", "name", pr.About, "id", id.String())
	return nil
}

func addCanonical(
	canon *parserpool.Canonicalizer,
	rec taxon.Record,
	tags tagset.TagSet,
) error {
	name, err := rec.ScientificName()
	if err != nil {
		return err
	}
	var division string
	if nodes := rec.FindAll("Division"); len(nodes) > 0 {
		division = nodes[0].Text
	}
	ct, err := canon.Tags(name, division)
	if err != nil {
		return err
	}
	tags.Merge(ct)
	return nil
}

func (i *importer) describe(
	ctx context.Context,
	prefix string,
	canon *parserpool.Canonicalizer,
) error {
	descs := [][2]string{
		{tagset.TaxonomyNamespace(prefix), TaxonomyDescription},
		{tagset.NCBINamespace(prefix), NCBIDescription},
	}
	if canon != nil {
		descs = append(descs, [2]string{canon.Namespace(), GNDescription})
	}
	for _, d := range descs {
		if err := i.st.Describe(ctx, d[0], d[1]); err != nil {
			return err
		}
	}
	return nil
}

// fail converts errors caused by cancellation and logs the rest.
func (i *importer) fail(
	ctx context.Context,
	res ncbitax.ImportSummary,
	err error,
) error {
	if ctx.Err() != nil {
		return CancelledError(res.Imported, ctx.Err())
	}
	slog.Error("Import failed", "imported", res.Imported, "error", err)
	if taxon.IsMalformed(err) {
		gn.Warn("NCBI returned malformed data after <em>%d</em> imported records",
			res.Imported)
	}
	return err
}
