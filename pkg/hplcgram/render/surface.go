package render

import (
	"bytes"
	"errors"
	"io"
)

// ErrClosed is returned when a closed Surface is used.
var ErrClosed = errors.New("surface closed")

// Surface is a rendered chart held in memory as PNG bytes.
// It is complete when returned; Close releases the image.
type Surface struct {
	buf    *bytes.Buffer
	width  int
	height int
}

// Width returns the image width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *Surface) Height() int { return s.height }

// Len returns the encoded image size in bytes, 0 once closed.
func (s *Surface) Len() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// Bytes returns the PNG data. The slice is only valid until Close.
func (s *Surface) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// WriteTo writes the PNG data to w without consuming it.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	if s.buf == nil {
		return 0, ErrClosed
	}
	n, err := w.Write(s.buf.Bytes())
	return int64(n), err
}

// Close releases the image. It is safe to call more than once.
func (s *Surface) Close() error {
	s.buf = nil
	return nil
}
