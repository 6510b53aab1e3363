package playerlog

import (
	"bytes"
	"fmt"
	"sync"
)

// batchChunks is the target number of parallel encoding chunks. The actual
// chunk size is len/batchChunks rounded down (minimum 1 record), so small
// batches may use more, smaller chunks; the wire format is identical either
// way.
const batchChunks = 10

// SerializeMany encodes a sequence of records as
// [count (8 bytes, big-endian)][record]*count, preserving input order.
//
// Records are encoded in parallel: the input is partitioned into contiguous
// chunks, each chunk encoded by its own goroutine into a private buffer, and
// the buffers concatenated in chunk order. Each record's encoding is
// self-delimiting, so chunk boundaries are invisible on the wire. Any chunk
// error aborts the whole batch.
func SerializeMany(records []*Record) ([]byte, error) {
	out := new(bytes.Buffer)
	if err := writeUint64(out, uint64(len(records))); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return out.Bytes(), nil
	}

	chunkSize := len(records) / batchChunks
	if chunkSize < 1 {
		chunkSize = 1
	}

	var chunks [][]*Record
	for start := 0; start < len(records); start += chunkSize {
		end := start + chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, records[start:end])
	}

	bufs := make([]bytes.Buffer, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []*Record) {
			defer wg.Done()
			for _, rec := range chunk {
				if err := rec.EncodeTo(&bufs[i]); err != nil {
					errs[i] = err
					return
				}
			}
		}(i, chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i := range bufs {
		out.Write(bufs[i].Bytes())
	}
	return out.Bytes(), nil
}

// DeserializeMany decodes a batch produced by SerializeMany. Decoding is a
// single sequential pass; the first failing record aborts the batch.
func DeserializeMany(data []byte) ([]*Record, error) {
	rd := bytes.NewReader(data)

	count, err := readUint64(rd)
	if err != nil {
		return nil, err
	}

	// The count prefix must be plausible for the bytes that follow; this
	// bounds the allocation before decoding starts.
	if count > uint64(rd.Len())/minRecordSize {
		return nil, fmt.Errorf("count %d exceeds remaining input: %w", count, ErrTruncatedInput)
	}

	records := make([]*Record, 0, count)
	for i := uint64(0); i < count; i++ {
		rec, err := DecodeRecord(rd)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
