package tagset

import (
	"strconv"
	"strings"

	"github.com/gnames/ncbitax/pkg/taxon"
)

// rejectChars are characters that make a display name unacceptable.
const rejectChars = "0123456789:"

// Projection is the result of projecting one record.
type Projection struct {
	// About is the display name of the record, it identifies the object
	// in a tag store.
	About string

	// Tags are the extracted values. Nil for rejected records.
	Tags TagSet

	// Rejected is true if the record did not pass data-quality filter.
	Rejected bool

	// Reason explains the rejection.
	Reason string
}

// Projector converts records to tag sets.
type Projector struct {
	prefix string
	fields []Field
}

// New creates a Projector that puts tags under
// "{prefix}/taxonomy/ncbi". Without fields NCBIFields are used.
func New(prefix string, fields ...Field) *Projector {
	if len(fields) == 0 {
		fields = NCBIFields
	}
	return &Projector{prefix: prefix, fields: fields}
}

// Namespace returns the namespace all tags of the projector belong to.
func (p *Projector) Namespace() string {
	return NCBINamespace(p.prefix)
}

// Project extracts tags from a record. Records with digits or colons in
// their scientific name are rejected, that is not an error. An error is
// returned when the record lacks a unique scientific name, when a scalar
// field is repeated, or when a value cannot be coerced.
func (p *Projector) Project(rec taxon.Record) (Projection, error) {
	var res Projection
	name, err := scientificName(rec)
	if err != nil {
		return res, err
	}
	res.About = strings.ToLower(name)

	if strings.ContainsAny(name, rejectChars) {
		res.Rejected = true
		res.Reason = "scientific name contains digits or colons"
		return res, nil
	}

	tags := make(TagSet)
	for _, f := range p.fields {
		val, ok, err := extract(rec, f)
		if err != nil {
			return res, err
		}
		if ok {
			tags[NCBITag(p.prefix, f.TagName())] = val
		}
	}
	res.Tags = tags
	return res, nil
}

// scientificName returns the display name of a record. A repeated name
// breaks the scalar contract, a missing one is malformed data.
func scientificName(rec taxon.Record) (string, error) {
	const source = "ScientificName"
	val, ok, err := extract(rec, Field{Source: source})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", taxon.FieldCountError(source, 0)
	}
	return val.(string), nil
}

// extract returns the value of a field and false if the field has to be
// omitted.
func extract(rec taxon.Record, f Field) (any, bool, error) {
	nodes := rec.FindAll(f.Source)

	if f.List {
		if len(nodes) == 0 {
			return nil, false, nil
		}
		// tag stores keep sets of strings, integers are validated and
		// normalized, but stay strings.
		vals := make([]string, len(nodes))
		for i, n := range nodes {
			vals[i] = strings.TrimSpace(n.Text)
			if f.Coerce == Int {
				v, err := coerceInt(f.Source, vals[i])
				if err != nil {
					return nil, false, err
				}
				vals[i] = strconv.Itoa(v)
			}
		}
		return vals, true, nil
	}

	switch len(nodes) {
	case 0:
		return nil, false, nil
	case 1:
	default:
		return nil, false, ExtractionContractError(f.Source, len(nodes))
	}

	txt := strings.TrimSpace(nodes[0].Text)
	if f.Coerce == Int {
		v, err := coerceInt(f.Source, txt)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	return txt, true, nil
}

func coerceInt(source, txt string) (int, error) {
	txt = strings.TrimSpace(txt)
	v, err := strconv.Atoi(txt)
	if err != nil {
		return 0, taxon.MalformedFieldError(source, txt, err)
	}
	return v, nil
}
