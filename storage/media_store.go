package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStore resolves stored result objects into shareable URLs. The actual
// upload of results is done by the downstream transform worker; this side
// only ever presigns reads.
type MediaStore struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// Options configures the MediaStore connection
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	Expiry    time.Duration
}

// NewMediaStore connects to the object store holding result media
func NewMediaStore(opts Options) (*MediaStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("media store connection: %w", err)
	}

	expiry := opts.Expiry
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}

	return &MediaStore{
		client: client,
		bucket: opts.Bucket,
		expiry: expiry,
	}, nil
}

// ResolveURL presigns a download URL for a stored result object
func (s *MediaStore) ResolveURL(ctx context.Context, filePath string) (string, error) {
	object := strings.TrimPrefix(filePath, "/")
	if object == "" {
		return "", fmt.Errorf("empty object path")
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, s.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", object, err)
	}
	return u.String(), nil
}
