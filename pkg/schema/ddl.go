package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
// Constraints are appended after the columns.
func generateDDL(model any, tableName string, constraints ...string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	for _, c := range constraints {
		columns = append(columns, "    "+c)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Object DDL methods
func (o Object) TableDDL() string {
	return generateDDL(o, o.TableName())
}

func (o Object) IndexDDL() []string {
	return []string{}
}

func (o Object) TableName() string {
	return "objects"
}

// Tag DDL methods
func (t Tag) TableDDL() string {
	return generateDDL(t, t.TableName(), "PRIMARY KEY (object_id, path)")
}

func (t Tag) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_tags_path ON tags(path);",
	}
}

func (t Tag) TableName() string {
	return "tags"
}

// Namespace DDL methods
func (ns Namespace) TableDDL() string {
	return generateDDL(ns, ns.TableName())
}

func (ns Namespace) IndexDDL() []string {
	return []string{}
}

func (ns Namespace) TableName() string {
	return "namespaces"
}

// DDL returns all statements that create the schema in table order.
func DDL() []string {
	var res []string
	for _, m := range AllModels() {
		g := m.(DDLGenerator)
		res = append(res, g.TableDDL())
		res = append(res, g.IndexDDL()...)
	}
	return res
}

// TableNames returns names of all tables of the schema.
func TableNames() []string {
	var res []string
	for _, m := range AllModels() {
		res = append(res, m.(DDLGenerator).TableName())
	}
	return res
}
