package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/fr0stylo/confhub/internal/db"
	"github.com/fr0stylo/confhub/internal/docstore"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *db.Database) {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "docstore"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return New(database, opts...), database
}

func TestFetchOneByNestedAndTopLevelFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.Create(ctx, "sponsorForConference", map[string]any{
		"signatureId":     "agr-1",
		"signatureStatus": "pending",
		"sponsor":         map[string]any{"name": "Acme"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Revision != 1 {
		t.Fatalf("unexpected created document: %+v", created)
	}

	found, err := store.FetchOne(ctx, docstore.Query{
		Type:  "sponsorForConference",
		Match: map[string]any{"signatureId": "agr-1", "sponsor.name": "Acme"},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("unexpected document: got=%q want=%q", found.ID, created.ID)
	}
	if found.String("signatureStatus") != "pending" {
		t.Fatalf("unexpected status: got=%q", found.String("signatureStatus"))
	}

	_, err = store.FetchOne(ctx, docstore.Query{Type: "sponsorForConference", Match: map[string]any{"signatureId": "agr-2"}})
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPatchSetsAndUnsetsFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	store, _ := newTestStore(t, WithClock(func() time.Time { return fixed }))

	created, err := store.Create(ctx, "sponsorForConference", map[string]any{
		"signatureId":      "agr-1",
		"signatureStatus":  "pending",
		"contractDocument": map[string]any{"_type": "file", "stale": true},
		"draftNote":        "remove me",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = store.Patch(ctx, created.ID, docstore.Patch{
		Set: map[string]any{
			"signatureStatus":  "signed",
			"contractDocument": docstore.FileField("asset-1"),
		},
		Unset: []string{"draftNote"},
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	doc, err := store.FetchOne(ctx, docstore.Query{Type: "sponsorForConference", Match: map[string]any{"signatureId": "agr-1"}})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if doc.String("signatureStatus") != "signed" {
		t.Fatalf("unexpected status: got=%q", doc.String("signatureStatus"))
	}
	if _, ok := doc.Fields["draftNote"]; ok {
		t.Fatalf("expected draftNote to be unset: %+v", doc.Fields)
	}
	contract, _ := doc.Fields["contractDocument"].(map[string]any)
	if _, ok := contract["stale"]; ok {
		t.Fatalf("expected contractDocument to be replaced: %+v", contract)
	}
	asset, _ := contract["asset"].(map[string]any)
	if asset["_ref"] != "asset-1" || asset["_type"] != "reference" {
		t.Fatalf("unexpected asset reference: %+v", asset)
	}
	if doc.Revision != 2 || !doc.UpdatedAt.Equal(fixed) {
		t.Fatalf("unexpected revision metadata: revision=%d updated=%s", doc.Revision, doc.UpdatedAt)
	}

	if err := store.Patch(ctx, "missing", docstore.Patch{Set: map[string]any{"x": 1}}); !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing document, got %v", err)
	}
}

func TestUploadAssetInline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, database := newTestStore(t)

	asset, err := store.UploadAsset(ctx, "file", []byte("%PDF-1.7"), docstore.UploadOptions{
		Filename:    "contract.pdf",
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if asset.Storage != "sqlite" || asset.Size != 8 || asset.Filename != "contract.pdf" {
		t.Fatalf("unexpected asset: %+v", asset)
	}

	stored, err := database.GetAsset(ctx, asset.ID)
	if err != nil {
		t.Fatalf("get asset: %v", err)
	}
	if string(stored.Data) != "%PDF-1.7" || stored.ContentType != "application/pdf" {
		t.Fatalf("unexpected stored asset: %+v", stored)
	}

	if _, err := store.UploadAsset(ctx, "file", nil, docstore.UploadOptions{}); err == nil {
		t.Fatal("expected empty asset to be rejected")
	}
}

type recordingBlobs struct {
	keys []string
}

func (r *recordingBlobs) Name() string { return "memory" }

func (r *recordingBlobs) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	r.keys = append(r.keys, key)
	return "memory://" + key, nil
}

func TestUploadAssetToBlobStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	blobs := &recordingBlobs{}
	store, database := newTestStore(t, WithBlobStore(blobs))

	asset, err := store.UploadAsset(ctx, "file", []byte("%PDF"), docstore.UploadOptions{Filename: "c.pdf"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(blobs.keys) != 1 || blobs.keys[0] != "file/"+asset.SHA256 {
		t.Fatalf("unexpected blob keys: %v", blobs.keys)
	}
	if asset.Storage != "memory" || asset.Location != "memory://file/"+asset.SHA256 {
		t.Fatalf("unexpected asset: %+v", asset)
	}

	stored, err := database.GetAsset(ctx, asset.ID)
	if err != nil {
		t.Fatalf("get asset: %v", err)
	}
	if len(stored.Data) != 0 {
		t.Fatalf("expected no inline data, got %d bytes", len(stored.Data))
	}
}
