package iolinkout

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// FailedObjectsError is returned when LinkOut data of some objects could
// not be retrieved.
func FailedObjectsError(failed, total int) error {
	msg := `LinkOut failed for <em>%d</em> of <em>%d</em> objects

Links of other objects are saved, run the command again to retry.`
	vars := []any{failed, total}
	return &gn.Error{
		Code: errcode.LinkOutError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("linkout failed for %d of %d objects", failed, total),
	}
}

// CancelledError is returned when the enrichment is interrupted.
func CancelledError(err error) error {
	msg := "LinkOut enrichment cancelled"
	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("linkout cancelled: %w", err),
	}
}
