package tagset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/gnames/ncbitax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, body string) taxon.Record {
	t.Helper()
	xml := "<TaxaSet><Taxon>" + body + "</Taxon></TaxaSet>"
	recs, err := taxon.ParseRecords(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0]
}

func fixture(t *testing.T) []taxon.Record {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "testdata", "efetch_9913_9606.xml"))
	require.NoError(t, err)
	defer f.Close()
	recs, err := taxon.ParseRecords(f)
	require.NoError(t, err)
	return recs
}

func TestProjectFixture(t *testing.T) {
	p := tagset.New("axeloide")
	recs := fixture(t)

	bos, err := p.Project(recs[0])
	require.NoError(t, err)
	assert.False(t, bos.Rejected)
	assert.Equal(t, "bos taurus", bos.About)

	ns := "axeloide/taxonomy/ncbi/"
	tags := bos.Tags
	assert.Equal(t, "Bos taurus", tags[ns+"ScientificName"])
	assert.Equal(t, 9913, tags[ns+"TaxId"])
	assert.Equal(t, 9903, tags[ns+"ParentTaxId"])
	assert.Equal(t, "species", tags[ns+"Rank"])
	assert.Equal(t, "Mammals", tags[ns+"Division"])
	assert.Equal(t, "cattle", tags[ns+"GenbankCommonName"])
	assert.Equal(t,
		[]string{"Bos primigenius taurus", "Bos bovis"},
		tags[ns+"Synonyms"])
	assert.Equal(t,
		[]string{"bovine", "cow", "domestic cattle"},
		tags[ns+"CommonNames"])
	assert.Equal(t,
		[]string{"cellular organisms", "Eukaryota", "Metazoa", "Chordata",
			"Mammalia", "Bovidae", "Bos"},
		tags[ns+"Lineage"])
	assert.Equal(t,
		[]string{"131567", "2759", "33208", "7711", "40674", "9895", "9903"},
		tags[ns+"LineageIds"])
	assert.Len(t, tags, 10)

	homo, err := p.Project(recs[1])
	require.NoError(t, err)
	assert.Equal(t, "homo sapiens", homo.About)
	assert.Equal(t, 9606, homo.Tags[ns+"TaxId"])
	assert.NotEmpty(t, homo.Tags[ns+"Lineage"])
}

func TestProjectOmitsEmptyLists(t *testing.T) {
	p := tagset.New("ncbitax")
	recs := fixture(t)

	res, err := p.Project(recs[1])
	require.NoError(t, err)

	_, ok := res.Tags["ncbitax/taxonomy/ncbi/Synonyms"]
	assert.False(t, ok, "no Synonyms key for a record without synonyms")
	_, ok = res.Tags["ncbitax/taxonomy/ncbi/CommonNames"]
	assert.False(t, ok)
	_, ok = res.Tags["ncbitax/taxonomy/ncbi/GenbankCommonName"]
	assert.True(t, ok)
}

func TestProjectRejection(t *testing.T) {
	tests := []struct {
		msg      string
		name     string
		rejected bool
	}{
		{"colon and digits", "unclassified bacterium:12", true},
		{"digit", "Bacterium 7A", true},
		{"colon", "Plasmid:pX", true},
		{"plain", "homo sapiens", false},
		{"hyphen and dot", "Bos sp. x-ray", false},
	}

	p := tagset.New("ns")
	for _, v := range tests {
		rec := record(t, "<TaxId>1</TaxId><ScientificName>"+v.name+
			"</ScientificName>")
		res, err := p.Project(rec)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.rejected, res.Rejected, v.msg)
		if v.rejected {
			assert.Nil(t, res.Tags, v.msg)
			assert.NotEmpty(t, res.Reason, v.msg)
			continue
		}
		assert.Equal(t, v.name, res.Tags["ns/taxonomy/ncbi/ScientificName"],
			v.msg)
	}
}

func TestProjectScalarMultiplicity(t *testing.T) {
	p := tagset.New("ns")
	rec := record(t, `<TaxId>9606</TaxId>
<ScientificName>Homo sapiens</ScientificName>
<Rank>species</Rank>
<Rank>subspecies</Rank>`)

	_, err := p.Project(rec)
	require.Error(t, err)
	assert.True(t, tagset.IsExtractionContract(err))

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ExtractionContractError, gnErr.Code)
	assert.Equal(t, []any{"Rank", 2}, gnErr.Vars)
}

func TestProjectRepeatedScientificName(t *testing.T) {
	tests := []struct {
		msg  string
		body string
	}{
		{"same name twice", `<TaxId>9606</TaxId>
<ScientificName>Homo sapiens</ScientificName>
<ScientificName>Homo sapiens</ScientificName>`},
		{"rejectable names", `<TaxId>1</TaxId>
<ScientificName>Bacterium 7A</ScientificName>
<ScientificName>Plasmid:pX</ScientificName>`},
	}

	p := tagset.New("p")
	for _, v := range tests {
		_, err := p.Project(record(t, v.body))
		require.Error(t, err, v.msg)
		assert.True(t, tagset.IsExtractionContract(err), v.msg)
		assert.False(t, taxon.IsMalformed(err), v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, errcode.ExtractionContractError, gnErr.Code, v.msg)
		assert.Equal(t, []any{"ScientificName", 2}, gnErr.Vars, v.msg)
	}
}

func TestProjectMissingScalar(t *testing.T) {
	p := tagset.New("ns")
	rec := record(t, `<TaxId>9606</TaxId>
<ScientificName>Homo sapiens</ScientificName>`)

	res, err := p.Project(rec)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"ns/taxonomy/ncbi/ScientificName", "ns/taxonomy/ncbi/TaxId"},
		res.Tags.Paths())
}

func TestProjectBadInteger(t *testing.T) {
	p := tagset.New("ns")
	rec := record(t, `<TaxId>9606</TaxId>
<ScientificName>Homo sapiens</ScientificName>
<ParentTaxId>n/a</ParentTaxId>`)

	_, err := p.Project(rec)
	require.Error(t, err)
	assert.True(t, taxon.IsMalformed(err))
	assert.False(t, tagset.IsExtractionContract(err))
}

func TestProjectNoScientificName(t *testing.T) {
	p := tagset.New("ns")
	rec := record(t, `<TaxId>9606</TaxId>`)

	_, err := p.Project(rec)
	assert.True(t, taxon.IsMalformed(err))
}

func TestCustomFields(t *testing.T) {
	p := tagset.New("ns",
		tagset.Field{Source: "Rank", Tag: "TaxonRank"},
		tagset.Field{Source: "LineageEx/Taxon/Rank", Tag: "LineageRanks",
			List: true},
	)
	rec := record(t, `<TaxId>9606</TaxId>
<ScientificName>Homo sapiens</ScientificName>
<Rank>species</Rank>
<LineageEx><Taxon><Rank>genus</Rank></Taxon></LineageEx>`)

	res, err := p.Project(rec)
	require.NoError(t, err)
	assert.Equal(t, tagset.TagSet{
		"ns/taxonomy/ncbi/TaxonRank":    "species",
		"ns/taxonomy/ncbi/LineageRanks": []string{"genus"},
	}, res.Tags)
	assert.Equal(t, "ns/taxonomy/ncbi", p.Namespace())
}

func TestNCBIFieldsUniqueTags(t *testing.T) {
	seen := make(map[string]struct{})
	for _, f := range tagset.NCBIFields {
		tag := tagset.NCBITag("ns", f.TagName())
		_, ok := seen[tag]
		assert.False(t, ok, tag)
		seen[tag] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, "a/taxonomy", tagset.TaxonomyNamespace("/a/"))
	assert.Equal(t, "a/taxonomy/ncbi", tagset.NCBINamespace("a"))
	assert.Equal(t, "a/taxonomy/ncbi/TaxId", tagset.NCBITag("a", "TaxId"))
}

func TestMerge(t *testing.T) {
	ts := tagset.TagSet{"a": 1}
	ts.Merge(tagset.TagSet{"b": "x", "a": 2})
	assert.Equal(t, tagset.TagSet{"a": 2, "b": "x"}, ts)
}
