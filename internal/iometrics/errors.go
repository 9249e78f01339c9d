package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// WriteError is returned when metrics cannot be saved to a file.
func WriteError(path string, err error) error {
	msg := "Cannot write metrics to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write metrics to %s: %w", path, err),
	}
}
