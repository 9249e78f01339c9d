package parserpool

import (
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/ncbitax/pkg/tagset"
)

// Tag names of canonical forms.
const (
	CanonicalName = "CanonicalName"
	CanonicalFull = "CanonicalFull"
	CanonicalStem = "CanonicalStem"
	Cardinality   = "Cardinality"
)

// GNNamespace returns the namespace of tags generated by GNparser,
// "{prefix}/taxonomy/gn".
func GNNamespace(prefix string) string {
	return tagset.TaxonomyNamespace(prefix) + "/gn"
}

// CodeForDivision picks the nomenclatural code for a GenBank division.
// Plants and fungi follow the botanical code, everything else is parsed
// with the zoological one.
func CodeForDivision(division string) nomcode.Code {
	d := strings.ToLower(division)
	if strings.Contains(d, "plant") || strings.Contains(d, "fung") {
		return nomcode.Botanical
	}
	return nomcode.Zoological
}

// Canonicalizer adds canonical forms of scientific names to tag sets.
type Canonicalizer struct {
	pool Pool
	ns   string
}

// NewCanonicalizer creates a Canonicalizer that puts tags under
// GNNamespace(prefix).
func NewCanonicalizer(p Pool, prefix string) *Canonicalizer {
	return &Canonicalizer{pool: p, ns: GNNamespace(prefix)}
}

// Namespace returns the namespace of generated tags.
func (c *Canonicalizer) Namespace() string {
	return c.ns
}

// Tags parses a name and returns its canonical forms and cardinality.
// Names that cannot be parsed give an empty TagSet. CanonicalFull is
// added only when it differs from CanonicalName.
func (c *Canonicalizer) Tags(name, division string) (tagset.TagSet, error) {
	res := make(tagset.TagSet)
	p, err := c.pool.Parse(name, CodeForDivision(division))
	if err != nil {
		return nil, err
	}
	if !p.Parsed || p.Canonical == nil {
		return res, nil
	}

	res[c.tag(CanonicalName)] = p.Canonical.Simple
	if p.Canonical.Full != p.Canonical.Simple {
		res[c.tag(CanonicalFull)] = p.Canonical.Full
	}
	if p.Canonical.Stemmed != "" {
		res[c.tag(CanonicalStem)] = p.Canonical.Stemmed
	}
	if p.Cardinality > 0 {
		res[c.tag(Cardinality)] = p.Cardinality
	}
	return res, nil
}

func (c *Canonicalizer) tag(name string) string {
	return c.ns + "/" + name
}
