// Package stream provides sequential read and write cursors over byte
// sequences, with an optional streaming CRC-32 integrity layer.
//
// A producer builds a Writer, writes primitives and raw bytes in order,
// optionally appends the running checksum as a 4-byte trailer, and extracts
// the final sequence with Bytes. A consumer wraps the received bytes in a
// Reader, reads with the same order and endianness convention, and verifies
// the trailer with CheckCRC32. The trailer is excluded from its own
// checksum on both sides.
//
// Numeric encoding is delegated to pkg/codec; the CRC-32 algorithm itself
// (IEEE, reflected polynomial 0xEDB88320) comes from hash/crc32 and is
// consumed incrementally, one Update per chunk.
//
// Streams are exclusively owned by their creator. No internal locking is
// performed; callers using a stream from multiple goroutines must
// synchronize externally.
package stream

import (
	"errors"
	"fmt"
)

// Options fixes a stream's behavior at construction time.
type Options struct {
	// CalculateCRC32 folds every byte that passes through the stream into
	// a running CRC-32 accumulator.
	CalculateCRC32 bool
	// Name labels the stream in integrity error messages.
	Name string
}

var (
	// ErrChecksumDisabled reports a checksum operation on a stream that was
	// constructed without CalculateCRC32. This is a caller bug.
	ErrChecksumDisabled = errors.New("checksum mode not enabled")

	// ErrEndOfStream reports a CRC-32 verification attempted with fewer
	// than 4 bytes remaining.
	ErrEndOfStream = errors.New("end of stream")
)

// ChecksumError reports a mismatch between the CRC-32 stored in a stream
// and the one computed from the bytes read.
type ChecksumError struct {
	Name string // diagnostic stream name
	Want uint32 // checksum stored in the stream
	Got  uint32 // checksum computed while reading
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("stream %q: CRC-32 mismatch: stored 0x%08X, computed 0x%08X", e.Name, e.Want, e.Got)
}
