// Benchmark for the player log wire codec. Generates a batch of random logs,
// then serializes and deserializes them with several codecs, printing the
// elapsed time and output size of each so the formats can be compared.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"reflect"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fxamacker/cbor/v2"
	"github.com/pierrec/lz4/v4"

	"github.com/aeolun/playerlog/pkg/loggen"
	"github.com/aeolun/playerlog/pkg/playerlog"
)

func main() {
	configPath := flag.String("config", "benchmark.toml", "Path to config file")
	count := flag.Int("count", 0, "Number of logs to generate (overrides config)")
	level := flag.Int("level", -10, "Compression level (overrides config)")
	flag.Parse()

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *count > 0 {
		config.Generate.Count = *count
	}
	if *level != -10 {
		config.Compress.Level = *level
	}

	start := time.Now()
	entries := loggen.GenerateN(config.Generate.Count, config.Generate.Seed)

	records := make([]*playerlog.Record, len(entries))
	for i, entry := range entries {
		rec, err := entry.Build()
		if err != nil {
			log.Fatalf("Failed to build record %d: %v", i, err)
		}
		records[i] = rec
	}
	fmt.Printf("! generated %d logs in %s\n", len(records), time.Since(start))

	runJSON(entries)
	runCBOR(records)
	runWire(records)
	runWireCompressed(records, config.Compress.Level)
	runWireLZ4(records)

	fmt.Println("all comparisons successful!")
}

func report(name string, elapsed time.Duration, size int) {
	fmt.Printf("%s: %s, %s\n", name, elapsed, humanize.Bytes(uint64(size)))
}

// runJSON serializes the editable entries rather than the compact records, so
// the text codec isn't penalized for encoding raw byte arrays.
func runJSON(entries []*playerlog.Entry) {
	start := time.Now()

	data, err := json.Marshal(entries)
	if err != nil {
		log.Fatalf("json encode failed: %v", err)
	}
	var decoded []*playerlog.Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Fatalf("json decode failed: %v", err)
	}

	report("encoding/json", time.Since(start), len(data))
	verifyCount(len(entries), len(decoded))
	for i := range entries {
		if !reflect.DeepEqual(entries[i], decoded[i]) {
			log.Fatalf("entry %d differs after json round trip", i)
		}
	}
}

func runCBOR(records []*playerlog.Record) {
	start := time.Now()

	data, err := cbor.Marshal(records)
	if err != nil {
		log.Fatalf("cbor encode failed: %v", err)
	}
	var decoded []*playerlog.Record
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		log.Fatalf("cbor decode failed: %v", err)
	}

	report("cbor", time.Since(start), len(data))
	verifyRecords(records, decoded)
}

func runWire(records []*playerlog.Record) {
	start := time.Now()

	data, err := playerlog.SerializeMany(records)
	if err != nil {
		log.Fatalf("wire encode failed: %v", err)
	}
	decoded, err := playerlog.DeserializeMany(data)
	if err != nil {
		log.Fatalf("wire decode failed: %v", err)
	}

	report("wire", time.Since(start), len(data))
	verifyRecords(records, decoded)
}

func runWireCompressed(records []*playerlog.Record, level int) {
	start := time.Now()

	data, err := playerlog.SerializeManyCompressed(records, level)
	if err != nil {
		log.Fatalf("compressed encode failed: %v", err)
	}
	decoded, err := playerlog.DeserializeManyCompressed(data)
	if err != nil {
		log.Fatalf("compressed decode failed: %v", err)
	}

	report(fmt.Sprintf("wire+zlib(%d)", level), time.Since(start), len(data))
	verifyRecords(records, decoded)
}

// runWireLZ4 pipes the batch bytes through an LZ4 frame for a speed/size
// comparison against the zlib wrapper.
func runWireLZ4(records []*playerlog.Record) {
	start := time.Now()

	batch, err := playerlog.SerializeMany(records)
	if err != nil {
		log.Fatalf("wire encode failed: %v", err)
	}

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write(batch); err != nil {
		log.Fatalf("lz4 encode failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		log.Fatalf("lz4 encode failed: %v", err)
	}

	zr := lz4.NewReader(bytes.NewReader(compressed.Bytes()))
	decompressed, err := io.ReadAll(zr)
	if err != nil {
		log.Fatalf("lz4 decode failed: %v", err)
	}
	decoded, err := playerlog.DeserializeMany(decompressed)
	if err != nil {
		log.Fatalf("wire decode failed: %v", err)
	}

	report("wire+lz4", time.Since(start), compressed.Len())
	verifyRecords(records, decoded)
}

func verifyCount(want, got int) {
	if want != got {
		log.Fatalf("round trip lost records: got %d, want %d", got, want)
	}
}

func verifyRecords(want, got []*playerlog.Record) {
	verifyCount(len(want), len(got))
	for i := range want {
		if !reflect.DeepEqual(want[i], got[i]) {
			log.Fatalf("record %d differs after round trip", i)
		}
	}
}
