// Package record frames key-value pairs with a length header and a CRC-32
// trailer, built on the stream cursors. It exists as the reference
// consumer of pkg/stream; higher-level formats follow the same pattern.
package record

import (
	"fmt"
	"math"
	"time"

	"github.com/ssargent/runestream/pkg/stream"
)

// Record is a key-value pair with metadata, framed as
//
//	[KeySize(4)][ValueSize(4)][Timestamp(8)][Key][Value][CRC32(4)]
//
// All fields are big-endian. The trailing CRC-32 covers everything before
// it and is excluded from its own computation.
type Record struct {
	KeySize   uint32
	ValueSize uint32
	Timestamp uint64 // Unix timestamp in nanoseconds
	Key       []byte
	Value     []byte
}

const (
	headerSize  = 16
	trailerSize = 4
)

// Encode serializes a key-value pair, stamping it with the current time
// and a CRC-32 trailer.
func Encode(key, value []byte) ([]byte, error) {
	if len(key) > math.MaxUint32 {
		return nil, fmt.Errorf("record: key of %d bytes exceeds the 32-bit size field", len(key))
	}
	if len(value) > math.MaxUint32 {
		return nil, fmt.Errorf("record: value of %d bytes exceeds the 32-bit size field", len(value))
	}

	w := stream.NewWriter(stream.Options{CalculateCRC32: true})
	w.WriteUint32(uint32(len(key)))
	w.WriteUint32(uint32(len(value)))
	ts := uint64(time.Now().UnixNano())
	// The 64-bit timestamp travels as two big-endian 32-bit words.
	w.WriteUint32(uint32(ts >> 32))
	w.WriteUint32(uint32(ts))
	w.Write(key)
	w.Write(value)
	if err := w.WriteCRC32(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decode deserializes a record and verifies its CRC-32 trailer. A
// *stream.ChecksumError is returned when the stored and computed checksums
// disagree.
func Decode(data []byte) (*Record, error) {
	r := stream.NewReader(data, stream.Options{CalculateCRC32: true, Name: "record"})
	if r.Available() < headerSize+trailerSize {
		return nil, fmt.Errorf("record: %d bytes is too short for a record", len(data))
	}

	rec := &Record{}
	rec.KeySize = r.ReadUint32(false)
	rec.ValueSize = r.ReadUint32(false)
	hi := r.ReadUint32(false)
	lo := r.ReadUint32(false)
	rec.Timestamp = uint64(hi)<<32 | uint64(lo)

	need := int(rec.KeySize) + int(rec.ValueSize)
	if r.Available() < need+trailerSize {
		return nil, fmt.Errorf("record: header declares %d data bytes, %d remain", need, r.Available())
	}
	rec.Key = r.Read(int(rec.KeySize))
	rec.Value = r.Read(int(rec.ValueSize))

	if err := r.CheckCRC32(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Size returns the encoded size of the record in bytes.
func (r *Record) Size() int {
	return headerSize + len(r.Key) + len(r.Value) + trailerSize
}
