// Package schema provides table models of the ncbitax tag store.
// The same models create PostgreSQL tables through GORM AutoMigrate and
// SQLite tables through DDL generated from their struct tags.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate DDL statements.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Object is an entity of the tag store. Objects are identified by
// their "about" value, for taxa it is the lower-cased scientific name.
type Object struct {
	// ID is UUID v5 generated from About.
	ID string `db:"id" ddl:"UUID PRIMARY KEY" gorm:"type:uuid;primaryKey"`

	// About is a unique human-readable identifier of the object.
	About string `db:"about" ddl:"TEXT NOT NULL UNIQUE" gorm:"type:text;not null;uniqueIndex"`
}

// Tag is a value attached to an object under a tag path.
type Tag struct {
	// ObjectID refers to Object.ID.
	ObjectID string `db:"object_id" ddl:"UUID NOT NULL" gorm:"type:uuid;primaryKey"`

	// Path is the full tag path, for example
	// "ncbitax/taxonomy/ncbi/ScientificName".
	Path string `db:"path" ddl:"TEXT NOT NULL" gorm:"type:text;primaryKey;index:idx_tags_path"`

	// Kind is "string", "int" or "set".
	Kind string `db:"kind" ddl:"VARCHAR(10) NOT NULL" gorm:"type:varchar(10);not null"`

	// Value is the text form of the value, sets are JSON arrays.
	Value string `db:"value" ddl:"TEXT NOT NULL" gorm:"type:text;not null"`
}

// Namespace keeps a description of a tag namespace.
type Namespace struct {
	// Path of the namespace, for example "ncbitax/taxonomy/ncbi".
	Path string `db:"path" ddl:"TEXT PRIMARY KEY" gorm:"type:text;primaryKey"`

	// Description is a human-readable description of the namespace.
	Description string `db:"description" ddl:"TEXT" gorm:"type:text"`

	// UpdatedAt is the time of the last change of the description.
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP" gorm:"type:timestamp"`
}
