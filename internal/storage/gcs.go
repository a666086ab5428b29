package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
)

// Transcripts are caption text, not media; anything bigger than this is not
// a caption track.
const maxObjectBytes = 8 << 20

type GCSFetcher struct {
	client *gcs.Client
}

func NewGCSFetcher(ctx context.Context) (*GCSFetcher, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSFetcher{client: c}, nil
}

func (f *GCSFetcher) Close() error { return f.client.Close() }

// Fetch reads a gs://bucket/object URI.
func (f *GCSFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := splitURI(uri)
	if err != nil {
		return nil, err
	}

	r, err := f.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", uri, err)
	}
	defer r.Close()

	b, err := io.ReadAll(io.LimitReader(r, maxObjectBytes))
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", uri, err)
	}
	return b, nil
}

func splitURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("storage: unsupported uri %q, want gs://bucket/object", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("storage: malformed uri %q", uri)
	}
	return bucket, object, nil
}
