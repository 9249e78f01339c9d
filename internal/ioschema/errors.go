package ioschema

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/ncbitax/pkg/errcode"
	"github.com/gnames/ncbitax/pkg/schema"
)

// recreateHint closes messages about a broken tag store schema.
const recreateHint = `Tag store tables: <em>%s</em>.
Recreate them with <em>ncbitax create --force</em>, imported data is lost.`

func tableList() string {
	return strings.Join(schema.TableNames(), ", ")
}

// NotConnectedError is returned when the schema is changed before the
// store is connected.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Tag store schema requires a PostgreSQL connection",
		Err:  fmt.Errorf("schema manager: not connected to database"),
	}
}

// GORMConnectionError is returned when GORM cannot use the connection
// pool of the store.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Cannot open the tag store connection for schema changes",
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

// CreateSchemaError is returned when tag store tables cannot be created.
func CreateSchemaError(err error) error {
	msg := "Cannot create tag store tables\n\n" + recreateHint
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{tableList()},
		Err:  fmt.Errorf("create tables: %w", err),
	}
}

// MigrateSchemaError is returned when existing tag store tables cannot be
// brought to the current models.
func MigrateSchemaError(err error) error {
	msg := "Cannot update tag store tables to the current version\n\n" +
		recreateHint
	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: []any{tableList()},
		Err:  fmt.Errorf("migrate tables: %w", err),
	}
}

// CollationError is returned when a sort column cannot get byte order
// collation. Query results would be ordered differently than in SQLite.
func CollationError(table, column string, err error) error {
	msg := `Cannot set "C" collation on <em>%s.%s</em>

Objects and tags would not be sorted by bytes.`
	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: []any{table, column},
		Err:  fmt.Errorf("collation %s.%s: %w", table, column, err),
	}
}
