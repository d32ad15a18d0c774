// Package minio provides a blobstore.Store for MinIO and other S3-compatible
// object stores, using github.com/minio/minio-go/v7.
//
// # Usage
//
//	client, _ := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := minio.NewStore(client, "dumps", "20240101/")
//	r, err := dumpreader.Open(ctx, store)
package minio
