// Package blobstore provides read-only access to a materialized dump.
//
// A Store exposes the dump root as a tree of named members: List returns the
// entries of a directory and Open streams one member. Names always use "/"
// as separator, relative to the store root.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system
//   - MemoryStore: in-memory tree, for tests
//   - s3.Store: an S3 bucket prefix
//   - minio.Store: a MinIO (or any S3-compatible) bucket prefix
//
// # Compressed Members
//
// OpenMember looks for a member under its plain name first and then with a
// .zst, .lz4 or .gz suffix, decompressing transparently:
//
//	rc, name, err := blobstore.OpenMember(ctx, store, "movies/documents.jsonl")
//
// # Custom Implementations
//
// Implement the Store interface to read dumps from other backends:
//
//	type Store interface {
//	    List(ctx, dir) ([]Entry, error)
//	    Open(ctx, name) (io.ReadCloser, error)
//	}
package blobstore
