package tagset

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// ExtractionContractError is returned when a scalar field appears more
// than once in a record.
func ExtractionContractError(source string, count int) error {
	msg := `Field <em>%s</em> appears <em>%d</em> times in a taxon record

The list of imported fields expects it at most once.`
	vars := []any{source, count}
	return &gn.Error{
		Code: errcode.ExtractionContractError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: scalar field %s found %d times",
			ErrExtractionContract, source, count),
	}
}

// IsExtractionContract reports whether the error is an extraction
// contract violation.
func IsExtractionContract(err error) bool {
	if errors.Is(err, ErrExtractionContract) {
		return true
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return errors.Is(gnErr.Err, ErrExtractionContract)
	}
	return false
}
