package playerlog

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = uuid.UUID{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
}

func validEntry() *Entry {
	id := testIdentity
	return &Entry{
		Flags:      FlagOnline,
		Identity:   &id,
		Name:       "Alice",
		PlayerIP:   netip.AddrFrom4([4]byte{1, 2, 3, 4}),
		ServerIP:   netip.AddrFrom4([4]byte{5, 6, 7, 8}),
		ServerPort: 25565,
		ServerHost: "play.example.com",
		Version:    "1.20",
	}
}

func TestBuild(t *testing.T) {
	entry := validEntry()
	rec, err := entry.Build()
	require.NoError(t, err)

	assert.Equal(t, uint8(BinaryVersion), rec.BinaryVersion)
	assert.Equal(t, uint8(0x02), rec.Flags)
	require.NotNil(t, rec.Identity)
	assert.Equal(t, [16]byte(testIdentity), *rec.Identity)
	assert.Equal(t, []byte("Alice"), rec.Name)
	assert.Equal(t, [4]byte{1, 2, 3, 4}, rec.PlayerIP)
	assert.Equal(t, [4]byte{5, 6, 7, 8}, rec.ServerIP)
	assert.Equal(t, uint16(25565), rec.ServerPort)
	assert.Equal(t, []byte("play.example.com"), rec.ServerHost)
	assert.Equal(t, uint8(13), rec.VersionCode)
}

func TestBuildNameLength(t *testing.T) {
	entry := validEntry()

	entry.Name = strings.Repeat("a", 16)
	_, err := entry.Build()
	assert.NoError(t, err)

	entry.Name = strings.Repeat("a", 17)
	_, err = entry.Build()
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestBuildNameCountsCharacters(t *testing.T) {
	// The limit counts characters, not encoded bytes: 16 two-byte runes
	// pass even though they encode to 32 bytes on the wire.
	entry := validEntry()
	entry.Name = strings.Repeat("é", 16)

	rec, err := entry.Build()
	require.NoError(t, err)
	assert.Len(t, rec.Name, 32)
}

func TestBuildTruncatesHostname(t *testing.T) {
	entry := validEntry()
	entry.ServerHost = strings.Repeat("h", 300)

	rec, err := entry.Build()
	require.NoError(t, err)
	assert.Len(t, rec.ServerHost, 255)
	assert.Equal(t, []byte(strings.Repeat("h", 255)), rec.ServerHost)
}

func TestBuildUnknownVersion(t *testing.T) {
	entry := validEntry()
	entry.Version = "1.99"

	rec, err := entry.Build()
	assert.ErrorIs(t, err, ErrUnknownVersion)
	assert.Nil(t, rec)
}

func TestBuildRejectsNonIPv4(t *testing.T) {
	entry := validEntry()
	entry.PlayerIP = netip.MustParseAddr("2001:db8::1")

	_, err := entry.Build()
	assert.ErrorIs(t, err, ErrNotIPv4)

	entry = validEntry()
	entry.ServerIP = netip.Addr{}
	_, err = entry.Build()
	assert.ErrorIs(t, err, ErrNotIPv4)
}

func TestBuildWithoutIdentity(t *testing.T) {
	entry := validEntry()
	entry.Flags = FlagAuthenticated
	entry.Identity = nil

	rec, err := entry.Build()
	require.NoError(t, err)
	assert.Nil(t, rec.Identity)
	assert.Equal(t, uint8(0x01), rec.Flags)
}

func TestEntryFromRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		entry *Entry
	}{
		{"online with identity", validEntry()},
		{"offline without identity", func() *Entry {
			e := validEntry()
			e.Flags = 0
			e.Identity = nil
			return e
		}()},
		{"authenticated and online", func() *Entry {
			e := validEntry()
			e.Flags = FlagAuthenticated | FlagOnline
			return e
		}()},
		{"empty name and host", func() *Entry {
			e := validEntry()
			e.Name = ""
			e.ServerHost = ""
			return e
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tt.entry.Build()
			require.NoError(t, err)

			back, err := EntryFromRecord(rec)
			require.NoError(t, err)
			assert.Equal(t, tt.entry, back)
		})
	}
}

func TestEntryFromRecordInvalidFlags(t *testing.T) {
	rec, err := validEntry().Build()
	require.NoError(t, err)

	rec.Flags = 0x06 // online plus reserved bit 2
	_, err = EntryFromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidFlags)
}

func TestEntryFromRecordInvalidUTF8(t *testing.T) {
	rec, err := validEntry().Build()
	require.NoError(t, err)
	rec.Name = []byte{0xFF, 0xFE}
	_, err = EntryFromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidName)

	rec, err = validEntry().Build()
	require.NoError(t, err)
	rec.ServerHost = []byte{0xC0, 0x80}
	_, err = EntryFromRecord(rec)
	assert.ErrorIs(t, err, ErrInvalidHostname)
}

func TestEntryFromRecordUnknownVersionCode(t *testing.T) {
	rec, err := validEntry().Build()
	require.NoError(t, err)

	rec.VersionCode = 200
	_, err = EntryFromRecord(rec)
	assert.ErrorIs(t, err, ErrUnknownVersionCode)
}
