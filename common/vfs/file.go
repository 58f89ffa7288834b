package vfs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/proxfs/proxfs-go/common/fsp"
)

// Whence selects the base position for Seek.
type Whence int

const (
	SeekStart Whence = iota
	SeekCurrent
	// SeekEnd places the cursor at size plus the given offset. The offset is
	// added, not subtracted; seeking "back" from the end takes a negative
	// offset.
	SeekEnd
)

// File adds a byte cursor on top of a service file object. The service
// takes explicit offsets on every call, so the cursor lives entirely in the
// handle. A File is owned by a single caller; concurrent use of one
// instance is not safe.
type File struct {
	file   fsp.File
	offset int64
}

// GetSize queries the service for the current file size. Nothing is cached.
func (f *File) GetSize() (int64, error) {
	return f.file.GetSize()
}

// Offset returns the current cursor position.
func (f *File) Offset() int64 {
	return f.offset
}

// Seek moves the cursor. Only SeekEnd can fail, as it queries the size.
func (f *File) Seek(offset int64, whence Whence) error {
	switch whence {
	case SeekStart:
		f.offset = offset
	case SeekCurrent:
		f.offset += offset
	case SeekEnd:
		size, err := f.GetSize()
		if err != nil {
			return err
		}
		f.offset = size + offset
	}
	return nil
}

// Read reads len(buf) bytes at the cursor and returns how many the service
// actually transferred. The cursor always advances by len(buf), even on a
// short read.
func (f *File) Read(buf []byte) (int64, error) {
	n, err := f.file.Read(fsp.ReadOptionNone, f.offset, buf)
	if err != nil {
		return n, err
	}
	f.offset += int64(len(buf))
	return n, nil
}

// Write writes len(buf) bytes at the cursor with a flush directive. The
// service protocol reports no written byte count, so the full length is
// reported and the cursor advances by it.
func (f *File) Write(buf []byte) (int64, error) {
	if err := f.file.Write(fsp.WriteOptionFlush, f.offset, buf); err != nil {
		return 0, err
	}
	f.offset += int64(len(buf))
	return int64(len(buf)), nil
}

// ReadVal reads one fixed-size value in little-endian layout at the cursor.
func ReadVal[T any](f *File) (T, error) {
	var v T
	size := binary.Size(v)
	if size < 0 {
		return v, fmt.Errorf("type %T has no fixed wire size", v)
	}
	buf := make([]byte, size)
	if _, err := f.Read(buf); err != nil {
		return v, err
	}
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &v); err != nil {
		return v, err
	}
	return v, nil
}

// WriteVal writes one fixed-size value in little-endian layout at the
// cursor.
func WriteVal[T any](f *File, v T) (int64, error) {
	size := binary.Size(v)
	if size < 0 {
		return 0, fmt.Errorf("type %T has no fixed wire size", v)
	}
	var buf bytes.Buffer
	buf.Grow(size)
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return 0, err
	}
	return f.Write(buf.Bytes())
}
