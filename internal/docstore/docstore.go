// Package docstore defines the document store consumed by the webhook and
// sponsor workflows: schemaless JSON documents addressed by type plus binary
// assets referenced from documents.
package docstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no document matches a lookup or patch target.
var ErrNotFound = errors.New("docstore: document not found")

// Document is one stored JSON document.
type Document struct {
	ID        string
	Type      string
	Fields    map[string]any
	Revision  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// String returns the string field at key, or "" when absent or not a string.
func (d Document) String(key string) string {
	value, _ := d.Fields[key].(string)
	return value
}

// Query selects documents of Type whose fields equal every Match entry.
// Keys may address nested fields with dots ("agreement.id").
type Query struct {
	Type  string
	Match map[string]any
}

// Patch replaces Set fields and removes Unset fields in one atomic write.
// Keys may address nested fields with dots.
type Patch struct {
	Set   map[string]any
	Unset []string
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return len(p.Set) == 0 && len(p.Unset) == 0
}

// Asset describes an uploaded binary.
type Asset struct {
	ID          string
	Kind        string
	Filename    string
	ContentType string
	Size        int64
	SHA256      string
	Storage     string
	Location    string
}

// UploadOptions carries asset metadata supplied by the uploader.
type UploadOptions struct {
	Filename    string
	ContentType string
}

// Store is the document store surface used by the application.
type Store interface {
	// FetchOne returns the most recently updated match or ErrNotFound.
	FetchOne(ctx context.Context, query Query) (Document, error)
	// Create inserts a new document of docType and returns it with its id.
	Create(ctx context.Context, docType string, fields map[string]any) (Document, error)
	// Patch applies patch to document id atomically or returns ErrNotFound.
	Patch(ctx context.Context, id string, patch Patch) error
	// UploadAsset stores data and returns the asset that documents can reference.
	UploadAsset(ctx context.Context, kind string, data []byte, opts UploadOptions) (Asset, error)
}

// BlobStore holds asset bytes outside the document database.
type BlobStore interface {
	Name() string
	Put(ctx context.Context, key string, data []byte, contentType string) (location string, err error)
}

// Reference is the typed document reference to an asset.
func Reference(assetID string) map[string]any {
	return map[string]any{
		"_type": "reference",
		"_ref":  assetID,
	}
}

// FileField wraps an asset reference as a file field value.
func FileField(assetID string) map[string]any {
	return map[string]any{
		"_type": "file",
		"asset": Reference(assetID),
	}
}
