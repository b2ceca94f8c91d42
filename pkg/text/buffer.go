package text

import (
	"errors"
	"fmt"
)

// ErrStaleView is returned when a view is read after its buffer was modified.
var ErrStaleView = errors.New("view invalidated by buffer modification")

// ErrOutOfRange is returned when a requested range does not fit the buffer.
var ErrOutOfRange = errors.New("range out of bounds")

// Buffer owns mutable text. Every modification invalidates all views taken
// before it. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	gen  uint64
}

// NewBuffer creates a buffer holding a copy of s.
func NewBuffer(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Set replaces the buffer content.
func (b *Buffer) Set(s string) {
	b.data = append(b.data[:0], s...)
	b.gen++
}

// Append adds s to the end of the buffer.
func (b *Buffer) Append(s string) {
	b.data = append(b.data, s...)
	b.gen++
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.gen++
}

// String returns a copy of the buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the length of the buffer content in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Slice returns a view of the bytes in [start, end).
func (b *Buffer) Slice(start, end int) (View, error) {
	if start < 0 || end < start || end > len(b.data) {
		return View{}, fmt.Errorf("slice [%d:%d] of buffer with length %d: %w", start, end, len(b.data), ErrOutOfRange)
	}

	return View{buf: b, gen: b.gen, start: start, end: end}, nil
}

// FirstWord returns a view of the buffer's first word, see FirstWord.
func (b *Buffer) FirstWord() View {
	return View{buf: b, gen: b.gen, start: 0, end: firstWordEnd(b.data)}
}

// View is a borrowed range of a Buffer. It stays readable only until the
// buffer is next modified. The zero View is invalid.
type View struct {
	buf        *Buffer
	gen        uint64
	start, end int
}

// Valid reports whether the view can still be read.
func (v View) Valid() bool {
	return v.buf != nil && v.buf.gen == v.gen
}

// Len returns the length of the viewed range in bytes.
func (v View) Len() int {
	return v.end - v.start
}

// Bytes returns the viewed bytes without copying. The capacity of the result
// is capped so appending to it never writes into the buffer.
func (v View) Bytes() ([]byte, error) {
	if !v.Valid() {
		return nil, ErrStaleView
	}

	return v.buf.data[v.start:v.end:v.end], nil
}

// Text returns the viewed text.
func (v View) Text() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}
