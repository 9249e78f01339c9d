package eutils

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
	"github.com/gnames/ncbitax/pkg/taxon"
)

// CardinalityError is returned when EFetch returns a different number of
// records than the number of requested ids.
func CardinalityError(requested, received int) error {
	msg := `NCBI returned <em>%d</em> records for <em>%d</em> ids

The response is incomplete or malformed, the run is aborted.`
	vars := []any{received, requested}
	return &gn.Error{
		Code: errcode.EutilsMalformedResponseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: requested %d records, received %d",
			taxon.ErrMalformed, requested, received),
	}
}

// EmptyIDsError is returned when a fetch is requested without ids.
func EmptyIDsError() error {
	msg := "Cannot fetch records without ids"
	return &gn.Error{
		Code: errcode.EutilsRequestError,
		Msg:  msg,
		Err:  fmt.Errorf("fetch called with empty id list"),
	}
}
