package stream

import (
	"hash/crc32"

	"github.com/ssargent/runestream/pkg/codec"
)

// Writer is an append-only output cursor over an accumulating byte
// sequence. Fragments are kept as written and concatenated on demand, so
// Bytes can be called at any point without consuming stream state.
type Writer struct {
	fragments [][]byte
	length    int
	crc       uint32
	opts      Options
}

// NewWriter creates an empty writer with the given options.
func NewWriter(opts Options) *Writer {
	return &Writer{opts: opts}
}

// Write appends the exact bytes of data. The slice is copied, so callers
// may reuse it. When checksum mode is enabled the bytes are folded into
// the running CRC-32 accumulator.
func (w *Writer) Write(data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	w.append(buf)
	if w.opts.CalculateCRC32 {
		w.crc = crc32.Update(w.crc, crc32.IEEETable, buf)
	}
}

func (w *Writer) append(buf []byte) {
	w.fragments = append(w.fragments, buf)
	w.length += len(buf)
}

// WriteUint8 writes v as a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.Write(codec.EncodeUint(uint64(v), 1))
}

// WriteUint16 writes v as 2 big-endian bytes.
func (w *Writer) WriteUint16(v uint16) {
	w.Write(codec.EncodeUint(uint64(v), 2))
}

// WriteUint32 writes v as 4 big-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	w.Write(codec.EncodeUint(uint64(v), 4))
}

// WriteFloat32 writes v as 4 bytes in IEEE-754 binary32 layout.
func (w *Writer) WriteFloat32(v float32) error {
	b, err := codec.EncodeFloat32(v)
	if err != nil {
		return err
	}
	w.Write(b)
	return nil
}

// WriteFloat64 writes v as 8 bytes in IEEE-754 binary64 layout.
func (w *Writer) WriteFloat64(v float64) error {
	b, err := codec.EncodeFloat64(v)
	if err != nil {
		return err
	}
	w.Write(b)
	return nil
}

// ResetCRC32 clears the checksum accumulator, starting a new checksummed
// region. Fails with ErrChecksumDisabled when checksum mode is off.
func (w *Writer) ResetCRC32() error {
	if !w.opts.CalculateCRC32 {
		return ErrChecksumDisabled
	}
	w.crc = 0
	return nil
}

// WriteCRC32 appends the current accumulator as a 4-byte big-endian
// trailer. The trailer represents the checksum rather than data, so it is
// not folded into the accumulator itself.
func (w *Writer) WriteCRC32() error {
	if !w.opts.CalculateCRC32 {
		return ErrChecksumDisabled
	}
	w.append(codec.EncodeUint(uint64(w.crc), 4))
	return nil
}

// CRC32 returns the current checksum accumulator.
func (w *Writer) CRC32() uint32 {
	return w.crc
}

// Len returns the total number of bytes written so far.
func (w *Writer) Len() int {
	return w.length
}

// Bytes concatenates all fragments into the final byte sequence. It may be
// called repeatedly; the writer remains usable afterwards.
func (w *Writer) Bytes() []byte {
	out := make([]byte, 0, w.length)
	for _, f := range w.fragments {
		out = append(out, f...)
	}
	return out
}
