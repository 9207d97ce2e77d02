// Package s3assets keeps document asset bytes in an S3-compatible bucket.
package s3assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fr0stylo/confhub/internal/docstore"
)

// ObjectAPI is the subset of the S3 client used by Blobs.
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config selects the bucket. Endpoint is set for MinIO or LocalStack.
type Config struct {
	Bucket   string
	Region   string
	Endpoint string
	Prefix   string
}

// Blobs is a content-addressed docstore.BlobStore backed by S3.
type Blobs struct {
	client ObjectAPI
	bucket string
	prefix string
}

var _ docstore.BlobStore = (*Blobs)(nil)

// New loads the default AWS credential chain and builds the client.
func New(ctx context.Context, cfg Config) (*Blobs, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("s3assets: bucket is required")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client ObjectAPI, bucket, prefix string) *Blobs {
	return &Blobs{client: client, bucket: bucket, prefix: prefix}
}

func (b *Blobs) Name() string { return "s3" }

// Put uploads data under key unless the object already exists. Keys are
// content-addressed, so an existing object holds the same bytes.
func (b *Blobs) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectKey := b.prefix + key + ".blob"
	location := "s3://" + b.bucket + "/" + objectKey

	if _, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(objectKey),
	}); err == nil {
		return location, nil
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put failed: %w", err)
	}
	return location, nil
}
