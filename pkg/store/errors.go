package store

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// ValueError is returned when a tag value cannot be converted.
func ValueError(path string, err error) error {
	msg := "Cannot convert value of tag <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.StoreValueError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tag %s: %w", path, err),
	}
}

// UnsupportedValueError is returned for values that are not string, int
// or []string.
func UnsupportedValueError(path string, v any) error {
	msg := "Tag <em>%s</em> has unsupported value type %T"
	vars := []any{path, v}
	return &gn.Error{
		Code: errcode.StoreValueError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tag %s: unsupported value type %T", path, v),
	}
}

// UnsupportedKindError is returned when a saved value has unknown kind.
func UnsupportedKindError(path, kind string) error {
	msg := "Tag <em>%s</em> has unknown kind '%s'"
	vars := []any{path, kind}
	return &gn.Error{
		Code: errcode.StoreValueError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("tag %s: unknown kind %s", path, kind),
	}
}
