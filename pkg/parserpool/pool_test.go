package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/ncbitax/pkg/parserpool"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg       string
		name      string
		code      nomcode.Code
		canonical string
	}{
		{"botanical", "Plantago major L.", nomcode.Botanical, "Plantago major"},
		{"trinomial", "Rosa acicularis var. acicularis", nomcode.Botanical,
			"Rosa acicularis acicularis"},
		{"zoological", "Homo sapiens Linnaeus, 1758", nomcode.Zoological,
			"Homo sapiens"},
	}

	for _, v := range tests {
		res, err := pool.Parse(v.name, v.code)
		require.NoError(t, err, v.msg)
		require.True(t, res.Parsed, v.msg)
		assert.Equal(t, v.canonical, res.Canonical.Simple, v.msg)
	}

	_, err := pool.Parse("Homo sapiens", nomcode.Bacterial)
	assert.Error(t, err)
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := pool.Parse("Bos taurus", nomcode.Zoological)
			assert.NoError(t, err)
			assert.True(t, res.Parsed)
		}()
	}
	wg.Wait()
}

func TestCodeForDivision(t *testing.T) {
	tests := []struct {
		division string
		code     nomcode.Code
	}{
		{"Plants and Fungi", nomcode.Botanical},
		{"Mammals", nomcode.Zoological},
		{"Bacteria", nomcode.Zoological},
		{"", nomcode.Zoological},
	}
	for _, v := range tests {
		assert.Equal(t, v.code, parserpool.CodeForDivision(v.division), v.division)
	}
}

func TestCanonicalizer(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()
	c := parserpool.NewCanonicalizer(pool, "ns")
	assert.Equal(t, "ns/taxonomy/gn", c.Namespace())

	tags, err := c.Tags("Bos taurus Linnaeus, 1758", "Mammals")
	require.NoError(t, err)
	assert.Equal(t, "Bos taurus", tags["ns/taxonomy/gn/CanonicalName"])
	assert.Equal(t, 2, tags["ns/taxonomy/gn/Cardinality"])
	_, ok := tags["ns/taxonomy/gn/CanonicalFull"]
	assert.False(t, ok, "full form is the same as simple")

	tags, err = c.Tags("Rosa acicularis var. acicularis", "Plants and Fungi")
	require.NoError(t, err)
	assert.Equal(t, "Rosa acicularis var. acicularis",
		tags["ns/taxonomy/gn/CanonicalFull"])
	assert.Equal(t, 3, tags["ns/taxonomy/gn/Cardinality"])

	tags, err = c.Tags("", "Mammals")
	require.NoError(t, err)
	assert.Equal(t, tagset.TagSet{}, tags)
}
