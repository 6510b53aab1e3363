package playerlog

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compression levels for SerializeManyCompressed, re-exported so callers
// don't need to import the zlib package for the common values.
const (
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
	DefaultCompression = zlib.DefaultCompression
)

// SerializeManyCompressed encodes records with SerializeMany and streams the
// result through a zlib writer at the given level. The output carries no
// framing of its own beyond the zlib container.
func SerializeManyCompressed(records []*Record, level int) ([]byte, error) {
	data, err := SerializeMany(records)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, fmt.Errorf("compression level %d: %w", level, err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeManyCompressed decompresses a zlib stream produced by
// SerializeManyCompressed and decodes the batch inside it.
func DeserializeManyCompressed(data []byte) ([]*Record, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	return DeserializeMany(decompressed)
}
