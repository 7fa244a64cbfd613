// SPDX-License-Identifier: MIT

// Package snapshot persists dense matrices as memory-mapped files so that
// benchmark operands can be generated once and reloaded bit-for-bit.
//
// File layout:
//
//	offset  size  field
//	0       4     magic "BMAT"
//	4       4     format version (little-endian uint32)
//	8       4     element kind (reflect.Kind, uint32)
//	12      4     element size in bytes (uint32)
//	16      8     rows (uint64)
//	24      8     cols (uint64)
//	32      8     payload length in bytes (uint64)
//	40      ...   row-major payload in host byte order
//
// The payload is the raw element buffer, so a snapshot is only portable
// between hosts of the same endianness.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/blockmat/matrix"
)

const (
	headSize = 40
	version  = 1
)

var magic = [4]byte{'B', 'M', 'A', 'T'}

var (
	// ErrCorrupt indicates a truncated file or an unknown header.
	ErrCorrupt = errors.New("snapshot: corrupt file")

	// ErrKindMismatch indicates the file holds a different element type.
	ErrKindMismatch = errors.New("snapshot: element kind mismatch")
)

// header is the decoded fixed-size prefix of a snapshot.
type header struct {
	version  uint32
	kind     reflect.Kind
	itemSize int
	rows     int
	cols     int
	dataLen  int
}

func headerFor[T matrix.Element](rows, cols int) header {
	var zero T
	size := int(unsafe.Sizeof(zero))

	return header{
		version:  version,
		kind:     reflect.TypeFor[T]().Kind(),
		itemSize: size,
		rows:     rows,
		cols:     cols,
		dataLen:  rows * cols * size,
	}
}

func (h header) encode(b []byte) {
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint32(b[4:8], h.version)
	binary.LittleEndian.PutUint32(b[8:12], uint32(h.kind))
	binary.LittleEndian.PutUint32(b[12:16], uint32(h.itemSize))
	binary.LittleEndian.PutUint64(b[16:24], uint64(h.rows))
	binary.LittleEndian.PutUint64(b[24:32], uint64(h.cols))
	binary.LittleEndian.PutUint64(b[32:40], uint64(h.dataLen))
}

func decodeHeader(b []byte) (h header, err error) {
	if len(b) < headSize || [4]byte(b[0:4]) != magic {
		return h, ErrCorrupt
	}
	h.version = binary.LittleEndian.Uint32(b[4:8])
	if h.version != version {
		return h, fmt.Errorf("%w: version %d", ErrCorrupt, h.version)
	}
	h.kind = reflect.Kind(binary.LittleEndian.Uint32(b[8:12]))
	h.itemSize = int(binary.LittleEndian.Uint32(b[12:16]))
	h.rows = int(binary.LittleEndian.Uint64(b[16:24]))
	h.cols = int(binary.LittleEndian.Uint64(b[24:32]))
	h.dataLen = int(binary.LittleEndian.Uint64(b[32:40]))
	if err = matrix.ValidateDims(h.rows, h.cols); err != nil {
		return h, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	cells := h.rows * h.cols
	if h.itemSize <= 0 || cells > (math.MaxInt-headSize)/h.itemSize {
		return h, fmt.Errorf("%w: %dx%d of %d-byte items overflows", ErrCorrupt, h.rows, h.cols, h.itemSize)
	}
	if h.dataLen != cells*h.itemSize {
		return h, fmt.Errorf("%w: %dx%d with %d payload bytes", ErrCorrupt, h.rows, h.cols, h.dataLen)
	}

	return
}

// elemBytes views the element buffer as raw bytes without copying.
func elemBytes[T matrix.Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T

	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}

// Save writes m to path, replacing any existing file.
func Save[T matrix.Element](path string, m *matrix.Dense[T]) (err error) {
	if err = matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("snapshot.Save(%s): %w", path, err)
	}
	h := headerFor[T](m.Rows(), m.Cols())

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.Truncate(int64(headSize + h.dataLen)); err != nil {
		return
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return
	}
	defer func() {
		if uerr := data.Unmap(); err == nil {
			err = uerr
		}
	}()

	h.encode(data[:headSize])
	copy(data[headSize:], elemBytes(m.Flat()))

	return data.Flush()
}

// Load reads a matrix of element type T from path. The returned matrix owns
// its buffer; the mapping is released before Load returns.
//
// Errors: ErrCorrupt for a malformed file, ErrKindMismatch when the file was
// saved with a different element type.
func Load[T matrix.Element](path string) (m *matrix.Dense[T], err error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return
	}
	if info.Size() < headSize {
		return nil, fmt.Errorf("snapshot.Load(%s): %w: %d bytes", path, ErrCorrupt, info.Size())
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return
	}
	defer data.Unmap()

	h, err := decodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot.Load(%s): %w", path, err)
	}
	if int64(headSize+h.dataLen) != info.Size() {
		return nil, fmt.Errorf("snapshot.Load(%s): %w: size %d, header says %d",
			path, ErrCorrupt, info.Size(), headSize+h.dataLen)
	}
	want := headerFor[T](0, 0)
	if h.kind != want.kind || h.itemSize != want.itemSize {
		return nil, fmt.Errorf("snapshot.Load(%s): %w: file has %s/%d, want %s/%d",
			path, ErrKindMismatch, h.kind, h.itemSize, want.kind, want.itemSize)
	}

	buf := make([]T, h.rows*h.cols)
	copy(elemBytes(buf), data[headSize:])

	return matrix.NewFromSlice(h.rows, h.cols, buf)
}
