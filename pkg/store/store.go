// Package store defines the tag store ncbitax writes to. A store keeps
// objects identified by their "about" value, each object has tags whose
// paths are slash-separated namespaces like
// "ncbitax/taxonomy/ncbi/TaxId".
package store

import (
	"context"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/ncbitax/pkg/tagset"
	"github.com/google/uuid"
)

// Schema manages tables of a store.
type Schema interface {
	// HasTables is true if any table of the tag store exists.
	HasTables(ctx context.Context) (bool, error)

	// DropTables removes tag store tables, other tables stay.
	DropTables(ctx context.Context) error

	// CreateTables creates missing tables. It is safe to call it on an
	// existing store.
	CreateTables(ctx context.Context) error
}

// Store is a tag store.
type Store interface {
	Schema

	// Write saves tags of an object in one transaction. The object is
	// created if it does not exist. Tags of the namespaces present in the
	// tag set are replaced: paths missing from the set are deleted, tags of
	// other namespaces stay. It returns the id of the object.
	Write(ctx context.Context, about string, tags tagset.TagSet) (uuid.UUID, error)

	// Query returns objects that have a tag with the given path, ordered
	// by about. Every object carries all its tags.
	Query(ctx context.Context, tagPath string) ([]Object, error)

	// Describe sets a description of a namespace.
	Describe(ctx context.Context, namespace, description string) error

	// Close releases resources of the store.
	Close() error
}

// ObjectID returns the identifier of an object with the given about
// value. It is a UUID v5, so the same about always gives the same id.
func ObjectID(about string) uuid.UUID {
	return gnuuid.New(about)
}

// StalePaths returns paths from existing that Write has to delete: the
// ones that share a namespace with a path of tags, but are not in tags.
func StalePaths(existing []string, tags tagset.TagSet) []string {
	nss := make(map[string]struct{})
	for path := range tags {
		nss[namespace(path)] = struct{}{}
	}

	var res []string
	for _, path := range existing {
		if _, ok := tags[path]; ok {
			continue
		}
		if _, ok := nss[namespace(path)]; ok {
			res = append(res, path)
		}
	}
	return res
}

func namespace(path string) string {
	if i := strings.LastIndex(path, "/"); i > -1 {
		return path[:i]
	}
	return ""
}
