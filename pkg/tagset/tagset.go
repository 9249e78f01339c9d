// Package tagset flattens NCBI Taxonomy records into tags. Fields to
// extract are described declaratively by a list of Field values, the
// default list is NCBIFields.
package tagset

import (
	"errors"
	"path"
	"slices"
	"strings"
)

// ErrExtractionContract marks records where a field expected at most once
// appears several times.
var ErrExtractionContract = errors.New("extraction contract violation")

// TagSet maps tag paths to values. Values are string, int or []string.
type TagSet map[string]any

// Paths returns tag paths in sorted order.
func (ts TagSet) Paths() []string {
	res := make([]string, 0, len(ts))
	for k := range ts {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Merge copies all tags of other into the tag set.
func (ts TagSet) Merge(other TagSet) {
	for k, v := range other {
		ts[k] = v
	}
}

// Coercion converts the text of an XML element to a tag value.
type Coercion int

const (
	// String keeps text as a string.
	String Coercion = iota
	// Int converts text to an integer.
	Int
)

// Field describes how one field of a record becomes a tag.
type Field struct {
	// Source is a slash-separated path inside the <Taxon> element.
	Source string

	// Tag is the name of the tag relative to the NCBI namespace. Source is
	// used when Tag is empty.
	Tag string

	// List collects all occurrences of Source, otherwise Source must
	// appear at most once.
	List bool

	// Coerce sets the type of the value, or of every list element.
	Coerce Coercion
}

// TagName returns the destination tag name of the field.
func (f Field) TagName() string {
	if f.Tag != "" {
		return f.Tag
	}
	return f.Source
}

// NCBIFields are the fields imported from NCBI Taxonomy records.
// Lineage is read from repeated LineageEx/Taxon elements, the
// semicolon-delimited <Lineage> string is ignored. Lineage ids are kept as
// strings, because tag stores keep sets of strings only.
var NCBIFields = []Field{
	{Source: "ScientificName"},
	{Source: "TaxId", Coerce: Int},
	{Source: "ParentTaxId", Coerce: Int},
	{Source: "Rank"},
	{Source: "Division"},
	{Source: "OtherNames/GenbankCommonName", Tag: "GenbankCommonName"},
	{Source: "OtherNames/Synonym", Tag: "Synonyms", List: true},
	{Source: "OtherNames/CommonName", Tag: "CommonNames", List: true},
	{Source: "LineageEx/Taxon/ScientificName", Tag: "Lineage", List: true},
	{Source: "LineageEx/Taxon/TaxId", Tag: "LineageIds", List: true},
}

// NCBINamespace returns the namespace of NCBI tags under a prefix.
func NCBINamespace(prefix string) string {
	return path.Join(TaxonomyNamespace(prefix), "ncbi")
}

// TaxonomyNamespace returns the namespace of all taxonomic tags under a
// prefix.
func TaxonomyNamespace(prefix string) string {
	return path.Join(strings.Trim(prefix, "/"), "taxonomy")
}

// NCBITag returns the full path of an NCBI tag.
func NCBITag(prefix, tagName string) string {
	return NCBINamespace(prefix) + "/" + tagName
}
