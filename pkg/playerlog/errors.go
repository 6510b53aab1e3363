package playerlog

import "errors"

var (
	// Validation errors, detected before any bytes are written or right
	// after they are read back into an Entry.
	ErrNameTooLong        = errors.New("player name exceeds 16 characters")
	ErrNotIPv4            = errors.New("address is not IPv4")
	ErrUnknownVersion     = errors.New("unknown version label")
	ErrUnknownVersionCode = errors.New("unknown version code")
	ErrInvalidName        = errors.New("player name is not valid UTF-8")
	ErrInvalidHostname    = errors.New("server hostname is not valid UTF-8")

	// Format errors, fatal for the record (and for batch operations, the
	// whole batch).
	ErrUnsupportedBinaryVersion = errors.New("unsupported binary version")
	ErrInvalidFlags             = errors.New("invalid flags byte (reserved bit set)")
	ErrMissingIdentity          = errors.New("online flag set but identity missing")
	ErrFieldTooLong             = errors.New("field exceeds 255-byte length prefix")
	ErrTruncatedInput           = errors.New("truncated input")

	// Compression errors
	ErrDecompressionFailed = errors.New("decompression failed")
)
