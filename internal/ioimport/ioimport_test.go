package ioimport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/internal/ioimport"
	"github.com/gnames/ncbitax/internal/iometrics"
	"github.com/gnames/ncbitax/internal/iostore"
	"github.com/gnames/ncbitax/internal/iotesting"
	"github.com/gnames/ncbitax/pkg/config"
	"github.com/gnames/ncbitax/pkg/errcode"
	"github.com/gnames/ncbitax/pkg/eutils"
	"github.com/gnames/ncbitax/pkg/store"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/gnames/ncbitax/pkg/taxon"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNCBI serves records by TaxId in the order of ids.
type fakeNCBI struct {
	ids     []int
	recs    map[int]taxon.Record
	cancel  func()
	fetches int
}

func newFakeNCBI(t *testing.T, extra ...string) *fakeNCBI {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "testdata", "efetch_9913_9606.xml"))
	require.NoError(t, err)
	defer f.Close()
	recs, err := taxon.ParseRecords(f)
	require.NoError(t, err)

	for _, e := range extra {
		xml := "<TaxaSet><Taxon>" + e + "</Taxon></TaxaSet>"
		more, err := taxon.ParseRecords(strings.NewReader(xml))
		require.NoError(t, err)
		recs = append(recs, more...)
	}

	res := &fakeNCBI{recs: make(map[int]taxon.Record)}
	for _, r := range recs {
		id, err := r.TaxID()
		require.NoError(t, err)
		res.ids = append(res.ids, id)
		res.recs[id] = r
	}
	return res
}

func (f *fakeNCBI) Search(
	_ context.Context,
	_ string,
	start, max int,
) (eutils.SearchResult, error) {
	res := eutils.SearchResult{Count: len(f.ids)}
	if start < len(f.ids) {
		res.IDs = f.ids[start:min(start+max, len(f.ids))]
	}
	return res, nil
}

func (f *fakeNCBI) Fetch(_ context.Context, ids []int) ([]taxon.Record, error) {
	f.fetches++
	if f.cancel != nil && f.fetches > 1 {
		f.cancel()
	}
	res := make([]taxon.Record, len(ids))
	for i, id := range ids {
		res[i] = f.recs[id]
	}
	return res, nil
}

func setup(t *testing.T, pageSize int, opts ...config.Option) (*config.Config, store.Store) {
	t.Helper()
	cfg := iotesting.GetSQLiteConfig(t)
	opts = append(opts, config.OptImportPageSize(pageSize))
	cfg.Update(opts)

	ctx := context.Background()
	st, err := iostore.New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.CreateTables(ctx))
	return cfg, st
}

func TestImport(t *testing.T) {
	src := newFakeNCBI(t,
		"<TaxId>77133</TaxId><ScientificName>uncultured bacterium 2</ScientificName>")
	cfg, st := setup(t, 2)
	m := iometrics.New()

	imp := ioimport.New(cfg, src, st, ioimport.OptMetrics(m))
	res, err := imp.Import(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Rejected)
	assert.Positive(t, res.Duration)

	objs, err := st.Query(context.Background(), "test/taxonomy/ncbi/TaxId")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "bos taurus", objs[0].About)
	assert.Equal(t, "homo sapiens", objs[1].About)
	assert.Equal(t, store.ObjectID("homo sapiens"), objs[1].ID)
	id, ok := objs[1].Int("test/taxonomy/ncbi/TaxId")
	assert.True(t, ok)
	assert.Equal(t, 9606, id)

	n, err := testutil.GatherAndCount(m.Registry(), "ncbitax_records_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "imported and rejected series")
}

func TestImportTwiceKeepsObjects(t *testing.T) {
	src := newFakeNCBI(t)
	cfg, st := setup(t, 10)
	ctx := context.Background()

	for range 2 {
		res, err := ioimport.New(cfg, src, st).Import(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Imported)
	}
	objs, err := st.Query(ctx, "test/taxonomy/ncbi/ScientificName")
	require.NoError(t, err)
	assert.Len(t, objs, 2)
}

func TestImportWithCanonical(t *testing.T) {
	src := newFakeNCBI(t)
	cfg, st := setup(t, 10, config.OptImportWithCanonical(true))

	_, err := ioimport.New(cfg, src, st).Import(context.Background())
	require.NoError(t, err)

	objs, err := st.Query(context.Background(), "test/taxonomy/gn/CanonicalName")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	name, _ := objs[0].String("test/taxonomy/gn/CanonicalName")
	assert.Equal(t, "Bos taurus", name)
	card, _ := objs[0].Int("test/taxonomy/gn/Cardinality")
	assert.Equal(t, 2, card)
}

func TestImportEmptyTerm(t *testing.T) {
	cfg, st := setup(t, 10)
	cfg.Import.Term = ""
	_, err := ioimport.New(cfg, newFakeNCBI(t), st).Import(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ImportTermError, gnErr.Code)
}

func TestImportExtractionContract(t *testing.T) {
	src := newFakeNCBI(t, `<TaxId>1</TaxId>
<ScientificName>Bad record</ScientificName>
<Rank>species</Rank>
<Rank>genus</Rank>`)
	cfg, st := setup(t, 10)

	res, err := ioimport.New(cfg, src, st).Import(context.Background())
	require.Error(t, err)
	assert.True(t, tagset.IsExtractionContract(err))
	assert.Equal(t, 2, res.Imported, "records before the failure stay")
}

func TestImportCancel(t *testing.T) {
	src := newFakeNCBI(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src.cancel = cancel
	cfg, st := setup(t, 1)

	res, err := ioimport.New(cfg, src, st).Import(ctx)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ImportCancelledError, gnErr.Code)
	assert.Equal(t, 1, res.Imported)
}
