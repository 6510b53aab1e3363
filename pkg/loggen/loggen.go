// Package loggen produces random player connection log entries for tests and
// benchmarks. Every generated entry passes validation and builds cleanly.
package loggen

import (
	"math/rand"
	"net/netip"
	"sync"

	"github.com/google/uuid"

	"github.com/aeolun/playerlog/pkg/playerlog"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randString(rng *rand.Rand, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[rng.Intn(len(charset))]
	}
	return string(buf)
}

func randIP(rng *rand.Rand) netip.Addr {
	return netip.AddrFrom4([4]byte{
		byte(1 + rng.Intn(254)),
		byte(1 + rng.Intn(254)),
		byte(1 + rng.Intn(254)),
		byte(1 + rng.Intn(254)),
	})
}

// Generate returns one random entry. Half the entries carry an identity (and
// the online flag), half are anonymous; the authenticated flag is an
// independent coin flip.
func Generate(rng *rand.Rand) *playerlog.Entry {
	var flags playerlog.Flags
	var identity *uuid.UUID
	if rng.Intn(2) == 0 {
		var id uuid.UUID
		rng.Read(id[:])
		identity = &id
		flags.Set(playerlog.FlagOnline)
	}
	if rng.Intn(2) == 0 {
		flags.Set(playerlog.FlagAuthenticated)
	}

	labels := playerlog.VersionLabels()

	return &playerlog.Entry{
		Flags:      flags,
		Identity:   identity,
		Name:       randString(rng, 4+rng.Intn(13)),
		PlayerIP:   randIP(rng),
		ServerIP:   randIP(rng),
		ServerPort: uint16(rng.Intn(1 << 16)),
		ServerHost: randString(rng, 4+rng.Intn(252)),
		Version:    labels[rng.Intn(len(labels))],
	}
}

// GenerateN returns n random entries, producing them in parallel chunks.
// Each worker owns its own rand source; with a fixed seed the output is still
// deterministic because workers fill disjoint slices from per-chunk seeds.
func GenerateN(n int, seed int64) []*playerlog.Entry {
	entries := make([]*playerlog.Entry, n)

	const workers = 10
	chunkSize := n / workers
	if chunkSize < 1 {
		chunkSize = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(start)))
			for i := start; i < end; i++ {
				entries[i] = Generate(rng)
			}
		}(start, end)
	}
	wg.Wait()

	return entries
}
