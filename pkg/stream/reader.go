package stream

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/ssargent/runestream/pkg/codec"
)

// Reader is a bounded read cursor over a fixed byte sequence. The cursor
// starts at 0 and is advanced by Read and Skip, and rewound by JumpBack.
// Running past the end is not an error: Read reports it through the length
// of its result (see Read), which lets callers scan a stream to exhaustion
// without guarding every call.
type Reader struct {
	data []byte
	pos  int
	crc  uint32
	opts Options
}

// NewReader creates a reader positioned at the start of data. The reader
// does not copy data; the caller must not mutate it while reading.
func NewReader(data []byte, opts Options) *Reader {
	return &Reader{data: data, opts: opts}
}

// Read returns the next n bytes and advances the cursor by n. When the
// cursor is already past the end it returns nil; when the request crosses
// the end it returns the short remainder. The cursor advances by the full
// n regardless, so shortness is observable only through len of the result.
// Returned bytes are folded into the checksum when checksum mode is
// enabled.
func (r *Reader) Read(n int) []byte {
	b := r.slice(n)
	r.pos += n
	if r.opts.CalculateCRC32 && len(b) > 0 {
		r.crc = crc32.Update(r.crc, crc32.IEEETable, b)
	}
	return b
}

// LookAhead returns the same bytes Read would, without advancing the
// cursor or touching the checksum.
func (r *Reader) LookAhead(n int) []byte {
	return r.slice(n)
}

func (r *Reader) slice(n int) []byte {
	if r.pos >= len(r.data) {
		return nil
	}
	end := r.pos + n
	if end > len(r.data) {
		end = len(r.data)
	}
	return r.data[r.pos:end]
}

// Skip advances the cursor by n bytes without reading or checksumming
// them.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// JumpBack rewinds the cursor by n bytes, clamped at the start of the
// stream. Rewinding does not touch the checksum.
func (r *Reader) JumpBack(n int) {
	r.pos -= n
	if r.pos < 0 {
		r.pos = 0
	}
}

// HasData reports whether at least one unread byte remains.
func (r *Reader) HasData() bool {
	return r.pos < len(r.data)
}

// Available returns the number of unread bytes, clamped at zero once the
// cursor has been advanced past the end.
func (r *Reader) Available() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// ReadUint8 reads a single byte. Past the end it returns 0.
func (r *Reader) ReadUint8() uint8 {
	return uint8(codec.DecodeUint(r.Read(1), false))
}

// ReadUint16 reads a 2-byte unsigned integer. A partial trailing read
// decodes the bytes that remain; past the end it returns 0.
func (r *Reader) ReadUint16(littleEndian bool) uint16 {
	return uint16(codec.DecodeUint(r.Read(2), littleEndian))
}

// ReadUint32 reads a 4-byte unsigned integer. A partial trailing read
// decodes the bytes that remain; past the end it returns 0.
func (r *Reader) ReadUint32(littleEndian bool) uint32 {
	return uint32(codec.DecodeUint(r.Read(4), littleEndian))
}

// ReadFloat32 reads 4 bytes in IEEE-754 binary32 layout. When fewer than
// 4 bytes remain it returns NaN.
func (r *Reader) ReadFloat32(littleEndian bool) float32 {
	b := r.Read(4)
	if len(b) != 4 {
		return float32(math.NaN())
	}
	return codec.DecodeFloat32(b, littleEndian)
}

// ReadFloat64 reads 8 bytes in IEEE-754 binary64 layout. When fewer than
// 8 bytes remain it returns NaN.
func (r *Reader) ReadFloat64(littleEndian bool) float64 {
	b := r.Read(8)
	if len(b) != 8 {
		return math.NaN()
	}
	return codec.DecodeFloat64(b, littleEndian)
}

// ResetCRC32 clears the checksum accumulator, starting a new checksummed
// region. Unlike the writer side, resetting is always permitted.
func (r *Reader) ResetCRC32() {
	r.crc = 0
}

// CRC32 returns the current checksum accumulator.
func (r *Reader) CRC32() uint32 {
	return r.crc
}

// SetName attaches a diagnostic label used in integrity error messages.
func (r *Reader) SetName(name string) {
	r.opts.Name = name
}

// CheckCRC32 reads a 4-byte big-endian checksum trailer and compares it to
// the running accumulator. The trailer bytes themselves are not folded
// into the checksum. Returns ErrChecksumDisabled when checksum mode is
// off, ErrEndOfStream when fewer than 4 bytes remain, and a *ChecksumError
// carrying both values on mismatch.
func (r *Reader) CheckCRC32() error {
	if !r.opts.CalculateCRC32 {
		return fmt.Errorf("stream %q: %w", r.opts.Name, ErrChecksumDisabled)
	}
	if r.Available() < 4 {
		return fmt.Errorf("stream %q: reading CRC-32 trailer: %w", r.opts.Name, ErrEndOfStream)
	}
	want := uint32(codec.DecodeUint(r.data[r.pos:r.pos+4], false))
	r.pos += 4
	if want != r.crc {
		return &ChecksumError{Name: r.opts.Name, Want: want, Got: r.crc}
	}
	return nil
}
