package playerlog

// Flags is the bit-packed attribute byte of a log entry.
type Flags uint8

// Flag constants
const (
	FlagAuthenticated Flags = 0x01 // Bit 0: player completed authentication
	FlagOnline        Flags = 0x02 // Bit 1: player is online / has an identity
)

// flagsMask covers all defined bits. Bits 2-7 are reserved.
const flagsMask = FlagAuthenticated | FlagOnline

// ParseFlags validates a raw flags byte. Any reserved bit set is an error.
func ParseFlags(b uint8) (Flags, error) {
	if Flags(b)&^flagsMask != 0 {
		return 0, ErrInvalidFlags
	}
	return Flags(b), nil
}

// RawFlags wraps a raw flags byte without validation, preserving reserved
// bits. Only for callers that validate separately (the record decoder checks
// the byte strictly right after reading it).
func RawFlags(b uint8) Flags {
	return Flags(b)
}

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// Set sets the bits of f.
func (fl *Flags) Set(f Flags) {
	*fl |= f
}

// Bits returns the raw byte value.
func (fl Flags) Bits() uint8 {
	return uint8(fl)
}
