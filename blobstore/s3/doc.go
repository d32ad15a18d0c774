// Package s3 provides an S3 implementation of the blobstore.Store interface,
// for dumps that were materialized into a bucket prefix instead of a local
// directory.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "dumps/20240101/")
//	r, err := dumpreader.Open(ctx, store)
//
// # Features
//
//   - Delimiter listing, so index directories map to common prefixes
//   - Automatic pagination for listing
//   - Streaming reads (one GetObject per member)
package s3
