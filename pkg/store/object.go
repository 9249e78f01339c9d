package store

import (
	"strconv"

	"github.com/gnames/gnfmt"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/google/uuid"
)

// Kinds of tag values as they are saved in a store.
const (
	KindString = "string"
	KindInt    = "int"
	KindSet    = "set"
)

// Object is a store object with its tags.
type Object struct {
	ID    uuid.UUID
	About string
	Tags  tagset.TagSet
}

// String returns a string tag.
func (o Object) String(path string) (string, bool) {
	res, ok := o.Tags[path].(string)
	return res, ok
}

// Int returns an integer tag.
func (o Object) Int(path string) (int, bool) {
	res, ok := o.Tags[path].(int)
	return res, ok
}

// Strings returns a set tag.
func (o Object) Strings(path string) ([]string, bool) {
	res, ok := o.Tags[path].([]string)
	return res, ok
}

// EncodeValue converts a tag value to its kind and text representation.
// Sets are saved as JSON arrays.
func EncodeValue(path string, v any) (kind, value string, err error) {
	switch val := v.(type) {
	case string:
		return KindString, val, nil
	case int:
		return KindInt, strconv.Itoa(val), nil
	case []string:
		enc := gnfmt.GNjson{}
		bs, err := enc.Encode(val)
		if err != nil {
			return "", "", ValueError(path, err)
		}
		return KindSet, string(bs), nil
	default:
		return "", "", UnsupportedValueError(path, v)
	}
}

// DecodeValue restores a tag value from its kind and text representation.
func DecodeValue(path, kind, value string) (any, error) {
	switch kind {
	case KindString:
		return value, nil
	case KindInt:
		res, err := strconv.Atoi(value)
		if err != nil {
			return nil, ValueError(path, err)
		}
		return res, nil
	case KindSet:
		var res []string
		enc := gnfmt.GNjson{}
		if err := enc.Decode([]byte(value), &res); err != nil {
			return nil, ValueError(path, err)
		}
		return res, nil
	default:
		return nil, UnsupportedKindError(path, kind)
	}
}

// Row is one tag of an object as returned by a store query.
type Row struct {
	ID    string
	About string
	Path  string
	Kind  string
	Value string
}

// Collect groups rows into objects. Rows of one object must be
// adjacent, the order of objects is preserved.
func Collect(rows []Row) ([]Object, error) {
	var res []Object
	for _, r := range rows {
		if len(res) == 0 || res[len(res)-1].ID.String() != r.ID {
			id, err := uuid.Parse(r.ID)
			if err != nil {
				return nil, ValueError("id", err)
			}
			res = append(res, Object{
				ID:    id,
				About: r.About,
				Tags:  make(tagset.TagSet),
			})
		}
		val, err := DecodeValue(r.Path, r.Kind, r.Value)
		if err != nil {
			return nil, err
		}
		res[len(res)-1].Tags[r.Path] = val
	}
	return res, nil
}
