// Package sqlitestore implements docstore.Store on the SQLite document database.
package sqlitestore

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fr0stylo/confhub/internal/db"
	"github.com/fr0stylo/confhub/internal/db/queries"
	"github.com/fr0stylo/confhub/internal/docstore"
)

const inlineStorage = "sqlite"

// timestampLayout has fixed-width fractions so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store persists documents as JSON rows and assets inline or in a BlobStore.
type Store struct {
	db    *db.Database
	blobs docstore.BlobStore
	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithBlobStore moves asset bytes into blobs; only metadata stays in SQLite.
func WithBlobStore(blobs docstore.BlobStore) Option {
	return func(s *Store) { s.blobs = blobs }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New wraps an open database.
func New(database *db.Database, opts ...Option) *Store {
	s := &Store{
		db:    database,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ docstore.Store = (*Store)(nil)

// FetchOne returns the newest document of query.Type matching every field, or docstore.ErrNotFound.
func (s *Store) FetchOne(ctx context.Context, query docstore.Query) (docstore.Document, error) {
	if strings.TrimSpace(query.Type) == "" {
		return docstore.Document{}, errors.New("sqlitestore: query type is required")
	}
	filter := db.DocumentFilter{DocType: query.Type, Matches: make([]db.FieldMatch, 0, len(query.Match))}
	for key, value := range query.Match {
		filter.Matches = append(filter.Matches, db.FieldMatch{Path: jsonPath(key), Value: value})
	}

	row, err := s.db.FindDocument(ctx, filter)
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.Document{}, docstore.ErrNotFound
	}
	if err != nil {
		return docstore.Document{}, fmt.Errorf("find %s document: %w", query.Type, err)
	}
	return toDocument(row)
}

// Create stores a new document of docType at revision 1.
func (s *Store) Create(ctx context.Context, docType string, fields map[string]any) (docstore.Document, error) {
	if strings.TrimSpace(docType) == "" {
		return docstore.Document{}, errors.New("sqlitestore: document type is required")
	}
	if fields == nil {
		fields = map[string]any{}
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("encode %s document: %w", docType, err)
	}

	now := s.timestamp()
	row, err := s.db.CreateDocument(ctx, queries.CreateDocumentParams{
		ID:        s.newID(),
		DocType:   docType,
		Body:      string(body),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return docstore.Document{}, fmt.Errorf("create %s document: %w", docType, err)
	}
	return toDocument(row)
}

// Patch applies set and unset paths to one document in a single statement.
func (s *Store) Patch(ctx context.Context, id string, patch docstore.Patch) error {
	clearKeys := map[string]any{}
	set := map[string]any{}
	for key, value := range patch.Set {
		assignPath(clearKeys, key, nil)
		assignPath(set, key, value)
	}
	for _, key := range patch.Unset {
		assignPath(clearKeys, key, nil)
	}

	clearJSON, err := json.Marshal(clearKeys)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	setJSON, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	affected, err := s.db.PatchDocument(ctx, queries.PatchDocumentParams{
		Clear:     string(clearJSON),
		Set:       string(setJSON),
		UpdatedAt: s.timestamp(),
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("patch document %s: %w", id, err)
	}
	if affected == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// UploadAsset records the asset metadata, keeping the bytes inline or in the blob backend.
func (s *Store) UploadAsset(ctx context.Context, kind string, data []byte, opts docstore.UploadOptions) (docstore.Asset, error) {
	if len(data) == 0 {
		return docstore.Asset{}, errors.New("sqlitestore: asset is empty")
	}
	if kind == "" {
		kind = "file"
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])
	id := s.newID()

	params := queries.InsertAssetParams{
		ID:          id,
		Kind:        kind,
		Filename:    path.Base(strings.TrimSpace(opts.Filename)),
		ContentType: contentType,
		Size:        int64(len(data)),
		Sha256:      digest,
		Storage:     inlineStorage,
		Data:        data,
		CreatedAt:   s.timestamp(),
	}
	if params.Filename == "." || params.Filename == "/" {
		params.Filename = ""
	}
	if s.blobs != nil {
		location, err := s.blobs.Put(ctx, kind+"/"+digest, data, contentType)
		if err != nil {
			return docstore.Asset{}, fmt.Errorf("store asset blob: %w", err)
		}
		params.Storage = s.blobs.Name()
		params.Location = location
		params.Data = nil
	}

	meta, err := s.db.InsertAsset(ctx, params)
	if err != nil {
		return docstore.Asset{}, fmt.Errorf("insert asset: %w", err)
	}
	return docstore.Asset{
		ID:          meta.ID,
		Kind:        meta.Kind,
		Filename:    meta.Filename,
		ContentType: meta.ContentType,
		Size:        meta.Size,
		SHA256:      meta.Sha256,
		Storage:     meta.Storage,
		Location:    meta.Location,
	}, nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func toDocument(row queries.Document) (docstore.Document, error) {
	fields := map[string]any{}
	if err := json.Unmarshal([]byte(row.Body), &fields); err != nil {
		return docstore.Document{}, fmt.Errorf("decode document %s: %w", row.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	return docstore.Document{
		ID:        row.ID,
		Type:      row.DocType,
		Fields:    fields,
		Revision:  row.Revision,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func jsonPath(key string) string {
	var b strings.Builder
	b.WriteString("$")
	for _, part := range strings.Split(key, ".") {
		b.WriteString(`."`)
		b.WriteString(strings.ReplaceAll(part, `"`, `\"`))
		b.WriteString(`"`)
	}
	return b.String()
}

func assignPath(target map[string]any, key string, value any) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := target[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			target[part] = next
		}
		target = next
	}
	target[parts[len(parts)-1]] = value
}
