package playerlog

import (
	"bytes"
	"fmt"
	"io"
)

// Single-record wire format, fields in fixed order:
//
//	[BinaryVersion (1 byte)][Flags (1 byte)]
//	[Identity (16 bytes), present iff flags bit 1 set]
//	[NameLen (1 byte)][Name (NameLen bytes)]
//	[PlayerIP (4 bytes)][ServerIP (4 bytes)][ServerPort (2 bytes, big-endian)]
//	[HostLen (1 byte)][ServerHost (HostLen bytes)]
//	[VersionCode (1 byte)]
//
// Only Name and ServerHost are variable-length, each capped at 255 bytes by
// the single length byte.

// minRecordSize is the smallest possible encoding: no identity, empty name,
// empty hostname.
const minRecordSize = 15

// EncodeTo serializes the record to a writer.
func (r *Record) EncodeTo(w io.Writer) error {
	if err := writeUint8(w, r.BinaryVersion); err != nil {
		return err
	}
	if err := writeUint8(w, r.Flags); err != nil {
		return err
	}

	if RawFlags(r.Flags).Has(FlagOnline) {
		if r.Identity == nil {
			return ErrMissingIdentity
		}
		if _, err := w.Write(r.Identity[:]); err != nil {
			return err
		}
	}

	if len(r.Name) > 255 {
		return fmt.Errorf("player name (%d bytes): %w", len(r.Name), ErrFieldTooLong)
	}
	if err := writeUint8(w, uint8(len(r.Name))); err != nil {
		return err
	}
	if _, err := w.Write(r.Name); err != nil {
		return err
	}

	if _, err := w.Write(r.PlayerIP[:]); err != nil {
		return err
	}
	if _, err := w.Write(r.ServerIP[:]); err != nil {
		return err
	}
	if err := writeUint16(w, r.ServerPort); err != nil {
		return err
	}

	if len(r.ServerHost) > 255 {
		return fmt.Errorf("server hostname (%d bytes): %w", len(r.ServerHost), ErrFieldTooLong)
	}
	if err := writeUint8(w, uint8(len(r.ServerHost))); err != nil {
		return err
	}
	if _, err := w.Write(r.ServerHost); err != nil {
		return err
	}

	return writeUint8(w, r.VersionCode)
}

// Encode serializes the record to a byte slice (convenience wrapper).
func (r *Record) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := r.EncodeTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecord reads one record from the reader, failing fast on the first
// inconsistency. Text fields are not UTF-8 validated here; that belongs to
// EntryFromRecord.
func DecodeRecord(rd io.Reader) (*Record, error) {
	binaryVersion, err := readUint8(rd)
	if err != nil {
		return nil, err
	}
	if binaryVersion != BinaryVersion {
		return nil, fmt.Errorf("binary version %d: %w", binaryVersion, ErrUnsupportedBinaryVersion)
	}

	rawFlags, err := readUint8(rd)
	if err != nil {
		return nil, err
	}
	flags, err := ParseFlags(rawFlags)
	if err != nil {
		return nil, err
	}

	var identity *[16]byte
	if flags.Has(FlagOnline) {
		var id [16]byte
		if err := readFull(rd, id[:]); err != nil {
			return nil, err
		}
		identity = &id
	}

	nameLen, err := readUint8(rd)
	if err != nil {
		return nil, err
	}
	name := make([]byte, nameLen)
	if err := readFull(rd, name); err != nil {
		return nil, err
	}

	var playerIP, serverIP [4]byte
	if err := readFull(rd, playerIP[:]); err != nil {
		return nil, err
	}
	if err := readFull(rd, serverIP[:]); err != nil {
		return nil, err
	}

	port, err := readUint16(rd)
	if err != nil {
		return nil, err
	}

	hostLen, err := readUint8(rd)
	if err != nil {
		return nil, err
	}
	host := make([]byte, hostLen)
	if err := readFull(rd, host); err != nil {
		return nil, err
	}

	versionCode, err := readUint8(rd)
	if err != nil {
		return nil, err
	}

	return &Record{
		BinaryVersion: binaryVersion,
		Flags:         rawFlags,
		Identity:      identity,
		Name:          name,
		PlayerIP:      playerIP,
		ServerIP:      serverIP,
		ServerPort:    port,
		ServerHost:    host,
		VersionCode:   versionCode,
	}, nil
}
