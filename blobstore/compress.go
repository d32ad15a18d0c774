package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a member is stored.
type Compression uint8

const (
	// CompressionNone indicates a plain member.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd frame stream (".zst").
	CompressionZSTD
	// CompressionLZ4 indicates an LZ4 frame stream (".lz4").
	CompressionLZ4
	// CompressionGzip indicates a gzip stream (".gz").
	CompressionGzip
)

// Suffix returns the file name suffix of the compression.
func (c Compression) Suffix() string {
	switch c {
	case CompressionZSTD:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	case CompressionGzip:
		return ".gz"
	default:
		return ""
	}
}

// lookupOrder is the order in which OpenMember probes member names.
var lookupOrder = []Compression{CompressionNone, CompressionZSTD, CompressionLZ4, CompressionGzip}

// OpenMember opens name, or the first compressed variant of it that exists,
// and returns a reader over the decompressed bytes together with the member
// name actually opened.
//
// It returns ErrNotFound when no variant exists.
func OpenMember(ctx context.Context, s Store, name string) (io.ReadCloser, string, error) {
	for _, c := range lookupOrder {
		member := name + c.Suffix()
		rc, err := s.Open(ctx, member)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, member, err
		}
		dec, err := Decompress(rc, c)
		if err != nil {
			_ = rc.Close()
			return nil, member, fmt.Errorf("%s: %w", member, err)
		}
		return dec, member, nil
	}
	return nil, name, ErrNotFound
}

// Decompress wraps rc so that reads return the decompressed stream. Closing
// the result closes rc.
func Decompress(rc io.ReadCloser, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return rc, nil
	case CompressionZSTD:
		// Single-threaded decoding keeps reads synchronous.
		dec, err := zstd.NewReader(rc, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return &decompressReader{Reader: dec, src: rc, release: dec.Close}, nil
	case CompressionLZ4:
		return &decompressReader{Reader: lz4.NewReader(rc), src: rc}, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
		return &decompressReader{Reader: zr, src: rc, release: func() { _ = zr.Close() }}, nil
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}

type decompressReader struct {
	io.Reader
	src     io.Closer
	release func()
}

func (r *decompressReader) Close() error {
	if r.release != nil {
		r.release()
	}
	return r.src.Close()
}
