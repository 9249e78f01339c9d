package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// UnknownTypeError is returned for unsupported store types.
func UnknownTypeError(typ string) error {
	msg := `Unknown store type '%s'

<em>How to fix:</em>
  Set store type to <em>sqlite</em> or <em>postgres</em> in
  <em>~/.config/ncbitax/config.yaml</em>`
	vars := []any{typ}
	return &gn.Error{
		Code: errcode.StoreUnknownTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown store type %q", typ),
	}
}

// OpenError is returned when a store cannot be opened.
func OpenError(location string, err error) error {
	msg := "Cannot open tag store at <em>%s</em>"
	vars := []any{location}
	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("open store %s: %w", location, err),
	}
}

// WriteError is returned when tags of an object cannot be saved.
func WriteError(about string, err error) error {
	msg := "Cannot save tags of <em>%s</em>"
	vars := []any{about}
	return &gn.Error{
		Code: errcode.StoreWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write %s: %w", about, err),
	}
}

// QueryError is returned when objects cannot be read from a store.
func QueryError(path string, err error) error {
	msg := "Cannot query objects with tag <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query %s: %w", path, err),
	}
}
