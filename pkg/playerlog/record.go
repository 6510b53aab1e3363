package playerlog

import (
	"fmt"
	"net/netip"
	"unicode/utf8"

	"github.com/google/uuid"
)

// BinaryVersion is the single supported wire layout revision.
const BinaryVersion = 1

// Entry is the editable, validated form of a player connection log. All
// fields are plain values; converting to or from a Record produces an
// independent copy.
type Entry struct {
	Flags      Flags
	Identity   *uuid.UUID // present iff FlagOnline is set; the caller keeps these consistent
	Name       string     // max 16 characters
	PlayerIP   netip.Addr
	ServerIP   netip.Addr
	ServerPort uint16
	ServerHost string // truncated to 255 bytes on Build
	Version    string // must exist in the version registry
}

// Record is the wire-compact form of a player connection log, ready for
// binary encoding. Name and ServerHost are raw bytes: the single-record codec
// never validates text, so a decoded Record round-trips byte-exactly even
// when those fields are not UTF-8.
type Record struct {
	BinaryVersion uint8
	Flags         uint8
	Identity      *[16]byte // present iff bit 1 of Flags is set
	Name          []byte
	PlayerIP      [4]byte
	ServerIP      [4]byte
	ServerPort    uint16
	ServerHost    []byte
	VersionCode   uint8
}

// Build converts a validated Entry into a wire-compact Record.
//
// The name limit counts characters, not encoded bytes, so a non-ASCII name
// can pass here and still exceed 16 bytes on the wire. Matches the original
// format definition; do not unify the two measures.
func (e *Entry) Build() (*Record, error) {
	if utf8.RuneCountInString(e.Name) > 16 {
		return nil, ErrNameTooLong
	}

	var identity *[16]byte
	if e.Identity != nil {
		id := [16]byte(*e.Identity)
		identity = &id
	}

	if !e.PlayerIP.Is4() {
		return nil, fmt.Errorf("player address: %w", ErrNotIPv4)
	}
	if !e.ServerIP.Is4() {
		return nil, fmt.Errorf("server address: %w", ErrNotIPv4)
	}

	host := []byte(e.ServerHost)
	if len(host) > 255 {
		// Byte-level truncation; may split a multi-byte character.
		host = host[:255]
	}

	code, err := VersionCode(e.Version)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", e.Version, err)
	}

	return &Record{
		BinaryVersion: BinaryVersion,
		Flags:         e.Flags.Bits(),
		Identity:      identity,
		Name:          []byte(e.Name),
		PlayerIP:      e.PlayerIP.As4(),
		ServerIP:      e.ServerIP.As4(),
		ServerPort:    e.ServerPort,
		ServerHost:    host,
		VersionCode:   code,
	}, nil
}

// EntryFromRecord reconstructs a validated Entry from a wire-compact Record.
// Strict reconstruction: reserved flag bits, non-UTF-8 text fields, and
// unregistered version codes are all errors.
func EntryFromRecord(r *Record) (*Entry, error) {
	flags, err := ParseFlags(r.Flags)
	if err != nil {
		return nil, err
	}

	var identity *uuid.UUID
	if r.Identity != nil {
		id := uuid.UUID(*r.Identity)
		identity = &id
	}

	if !utf8.Valid(r.Name) {
		return nil, ErrInvalidName
	}
	if !utf8.Valid(r.ServerHost) {
		return nil, ErrInvalidHostname
	}

	label, err := VersionLabel(r.VersionCode)
	if err != nil {
		return nil, fmt.Errorf("version code %d: %w", r.VersionCode, err)
	}

	return &Entry{
		Flags:      flags,
		Identity:   identity,
		Name:       string(r.Name),
		PlayerIP:   netip.AddrFrom4(r.PlayerIP),
		ServerIP:   netip.AddrFrom4(r.ServerIP),
		ServerPort: r.ServerPort,
		ServerHost: string(r.ServerHost),
		Version:    label,
	}, nil
}
