package minio

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/hupe1980/dumpreader/blobstore"
	"github.com/minio/minio-go/v7"
)

// Store implements blobstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "dumps/20240101/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(rootPrefix, "/"),
	}
}

func (s *Store) key(name string) string {
	return strings.TrimPrefix(path.Join(s.prefix, name), "/")
}

func (s *Store) dirPrefix(dir string) string {
	p := s.key(dir)
	if p == "" {
		return ""
	}
	return p + "/"
}

// List returns the entries directly below dir, sorted by name.
func (s *Store) List(ctx context.Context, dir string) ([]blobstore.Entry, error) {
	prefix := s.dirPrefix(dir)

	var entries []blobstore.Entry
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if entry, ok := entryFromKey(prefix, obj.Key); ok {
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 && prefix != "" {
		return nil, blobstore.ErrNotFound
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// entryFromKey converts a non-recursive listing key into an entry. Common
// prefixes come back as keys ending in "/".
func entryFromKey(prefix, key string) (blobstore.Entry, bool) {
	name := strings.TrimPrefix(key, prefix)
	if name == "" {
		return blobstore.Entry{}, false
	}
	if strings.HasSuffix(name, "/") {
		return blobstore.Entry{Name: strings.TrimSuffix(name, "/"), IsDir: true}, true
	}
	return blobstore.Entry{Name: name}, true
}

// Open streams an object.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}
	// GetObject is lazy; Stat surfaces a missing key before the first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, translateError(err)
	}
	return obj, nil
}

func translateError(err error) error {
	errResp := minio.ToErrorResponse(err)
	if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
		return blobstore.ErrNotFound
	}
	return err
}
