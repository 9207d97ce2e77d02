package s3assets

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeObjects struct {
	existing map[string]bool
	puts     map[string][]byte
	types    map[string]string
	putErr   error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{existing: map[string]bool{}, puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) HeadObject(_ context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.existing[aws.ToString(params.Key)] {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeObjects) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(params.Key)
	f.puts[key] = data
	f.types[key] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestPutUploadsUnderPrefixedKey(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	blobs := NewWithClient(objects, "contracts", "confhub/")

	location, err := blobs.Put(context.Background(), "file/abc", []byte("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if location != "s3://contracts/confhub/file/abc.blob" {
		t.Fatalf("unexpected location: got=%q", location)
	}
	if string(objects.puts["confhub/file/abc.blob"]) != "%PDF" {
		t.Fatalf("unexpected stored bytes: %q", objects.puts["confhub/file/abc.blob"])
	}
	if objects.types["confhub/file/abc.blob"] != "application/pdf" {
		t.Fatalf("unexpected content type: got=%q", objects.types["confhub/file/abc.blob"])
	}
}

func TestPutSkipsExistingObject(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	objects.existing["file/abc.blob"] = true
	objects.putErr = errors.New("should not upload")
	blobs := NewWithClient(objects, "contracts", "")

	if _, err := blobs.Put(context.Background(), "file/abc", []byte("%PDF"), ""); err != nil {
		t.Fatalf("put existing: %v", err)
	}
	if len(objects.puts) != 0 {
		t.Fatalf("expected no uploads, got %d", len(objects.puts))
	}
}

func TestPutSurfacesUploadError(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	objects.putErr = errors.New("access denied")
	blobs := NewWithClient(objects, "contracts", "")

	if _, err := blobs.Put(context.Background(), "file/abc", []byte("%PDF"), ""); err == nil {
		t.Fatal("expected upload error")
	}
}
