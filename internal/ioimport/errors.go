package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// CancelledError is returned when the import is interrupted.
func CancelledError(imported int, err error) error {
	msg := `Import cancelled after <em>%d</em> records

Records written so far stay in the store, run the import again to
complete it.`
	vars := []any{imported}
	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}

// EmptyTermError is returned when there is no search term.
func EmptyTermError() error {
	msg := `Search term is empty

<em>How to fix:</em>
  Provide an Entrez query with <em>--term</em> or set <em>import.term</em>
  in <em>~/.config/ncbitax/config.yaml</em>`
	return &gn.Error{
		Code: errcode.ImportTermError,
		Msg:  msg,
		Err:  fmt.Errorf("empty search term"),
	}
}
