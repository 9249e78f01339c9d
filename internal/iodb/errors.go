package iodb

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database <em>%s</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>
  3. Check store settings in <em>~/.config/ncbitax/config.yaml</em>`
	vars := []any{database, host, port, host, user}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when an operation is attempted before
// Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when the tag store tables cannot be looked
// up.
func TableCheckError(tables []string, err error) error {
	list := strings.Join(tables, ", ")
	msg := "Cannot check tag store tables <em>%s</em>"
	vars := []any{list}
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check tables %s: %w", list, err),
	}
}

// DropTableError is returned when tag store tables cannot be dropped.
// Nothing is dropped in that case.
func DropTableError(tables []string, err error) error {
	list := strings.Join(tables, ", ")
	msg := `Cannot drop tag store tables <em>%s</em>

Check that the database user owns the tables.`
	vars := []any{list}
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop tables %s: %w", list, err),
	}
}
