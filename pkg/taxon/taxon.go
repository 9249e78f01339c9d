// Package taxon provides the representation of NCBI Taxonomy records as
// they come from EFetch. A record keeps the raw element tree, fields are
// reached by slash-separated paths like "OtherNames/Synonym".
package taxon

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed marks records and responses that break the expected shape
// of NCBI Taxonomy data.
var ErrMalformed = errors.New("malformed taxonomy data")

// RecordElement is the name of a top-level record element.
const RecordElement = "Taxon"

// Record is one taxon as returned by NCBI. It is never modified after
// creation.
type Record struct {
	root *Node
}

// NewRecord wraps a <Taxon> element.
func NewRecord(root *Node) Record {
	return Record{root: root}
}

// Root returns the <Taxon> element of the record.
func (r Record) Root() *Node {
	return r.root
}

// IsZero is true for a record that wraps nothing.
func (r Record) IsZero() bool {
	return r.root == nil
}

// FindAll returns all elements of the record that match the path.
func (r Record) FindAll(path string) []*Node {
	return r.root.FindAll(path)
}

// TaxID returns the NCBI Taxonomy identifier of the record.
func (r Record) TaxID() (int, error) {
	txt, err := r.single("TaxId")
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(txt)
	if err != nil {
		return 0, MalformedFieldError("TaxId", txt, err)
	}
	return id, nil
}

// ScientificName returns the scientific name of the record.
func (r Record) ScientificName() (string, error) {
	return r.single("ScientificName")
}

// DisplayName is the identifier of the record in the tag store: the
// scientific name in lower case.
func (r Record) DisplayName() (string, error) {
	name, err := r.ScientificName()
	if err != nil {
		return "", err
	}
	return strings.ToLower(name), nil
}

// single returns trimmed text of a field that has to be present exactly
// once.
func (r Record) single(path string) (string, error) {
	nodes := r.FindAll(path)
	if len(nodes) != 1 {
		return "", FieldCountError(path, len(nodes))
	}
	return strings.TrimSpace(nodes[0].Text), nil
}

// Decode reads an XML document into a node tree and returns its root
// element.
func Decode(r io.Reader) (*Node, error) {
	var doc Node
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, DecodeError(err)
	}
	return &doc, nil
}

// Records returns top-level <Taxon> elements of an EFetch document in
// document order. Nested <Taxon> elements inside <LineageEx> stay inside
// their records.
func Records(doc *Node) []Record {
	var res []Record
	if doc == nil {
		return res
	}
	for _, n := range doc.Children {
		if n.Name == RecordElement {
			res = append(res, NewRecord(n))
		}
	}
	return res
}

// ParseRecords reads an EFetch XML document and returns its records.
func ParseRecords(r io.Reader) ([]Record, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Records(doc), nil
}
