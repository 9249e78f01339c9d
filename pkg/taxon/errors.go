package taxon

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// FieldCountError is returned when a field that must be unique is
// missing or repeated.
func FieldCountError(path string, count int) error {
	msg := "Taxon record has <em>%d</em> <em>%s</em> fields instead of one"
	vars := []any{count, path}
	return &gn.Error{
		Code: errcode.EutilsMalformedResponseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: field %s found %d times",
			ErrMalformed, path, count),
	}
}

// MalformedFieldError is returned when a field value cannot be converted
// to its expected type.
func MalformedFieldError(path, value string, err error) error {
	msg := "Cannot convert <em>%s</em> value '%s'"
	vars := []any{path, value}
	return &gn.Error{
		Code: errcode.EutilsMalformedResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w: field %s: %w", ErrMalformed, path, err),
	}
}

// DecodeError is returned when a response is not valid XML.
func DecodeError(err error) error {
	msg := "Cannot decode XML response from NCBI"
	return &gn.Error{
		Code: errcode.EutilsMalformedResponseError,
		Msg:  msg,
		Err:  fmt.Errorf("%w: cannot decode XML: %w", ErrMalformed, err),
	}
}

// IsMalformed reports whether the error was caused by malformed data.
func IsMalformed(err error) bool {
	if errors.Is(err, ErrMalformed) {
		return true
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return errors.Is(gnErr.Err, ErrMalformed)
	}
	return false
}
