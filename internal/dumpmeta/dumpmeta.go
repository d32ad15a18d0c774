// Package dumpmeta reads the top-level metadata member of a dump.
package dumpmeta

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/dumpreader/blobstore"
	"github.com/hupe1980/dumpreader/codec"
	"github.com/hupe1980/dumpreader/model"
)

// File is the name of the metadata member at the dump root.
const File = "metadata.json"

// Probe holds the fields every format revision shares.
type Probe struct {
	FormatVersion *int `json:"format_version"`
}

// Version returns the format discriminant, failing with
// model.ErrCorruptMetadata when it is absent.
func (p Probe) Version() (model.Version, error) {
	if p.FormatVersion == nil {
		return 0, fmt.Errorf("%w: missing format_version", model.ErrCorruptMetadata)
	}
	return model.Version(*p.FormatVersion), nil
}

// Read reads and decodes the metadata member of store into v. Any failure is
// reported as model.ErrCorruptMetadata.
func Read(ctx context.Context, store blobstore.Store, c codec.Codec, v any) error {
	if c == nil {
		c = codec.Default
	}
	rc, member, err := blobstore.OpenMember(ctx, store, File)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return fmt.Errorf("%w: %s not found", model.ErrCorruptMetadata, File)
		}
		return fmt.Errorf("%w: open %s: %w", model.ErrCorruptMetadata, member, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", model.ErrCorruptMetadata, member, err)
	}
	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", model.ErrCorruptMetadata, member, err)
	}
	return nil
}
