package ioeutils

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// RequestError is returned when a request cannot be sent or its response
// cannot be read.
func RequestError(endpoint string, err error) error {
	msg := `Cannot reach NCBI <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - NCBI E-utilities are down
  - Request timeout is too short`
	vars := []any{endpoint}
	return &gn.Error{
		Code: errcode.EutilsRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s request failed: %w", endpoint, err),
	}
}

// StatusError is returned when NCBI responds with a non-2xx status.
func StatusError(endpoint string, status int) error {
	msg := "NCBI <em>%s</em> responded with HTTP status <em>%d</em>"
	vars := []any{endpoint, status}
	return &gn.Error{
		Code: errcode.EutilsStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s returned status %d", endpoint, status),
	}
}

// ServiceError is returned when a response carries an <ERROR> element.
func ServiceError(endpoint, text string) error {
	msg := "NCBI <em>%s</em> reported an error: %s"
	vars := []any{endpoint, text}
	return &gn.Error{
		Code: errcode.EutilsServiceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s error: %s", endpoint, text),
	}
}
