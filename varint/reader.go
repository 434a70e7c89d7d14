package varint

import (
	"io"
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/tychoish/until"
)

// Reader decodes consecutive varints from a byte stream. Each value
// is read through its own until.Iterator, so the Reader never reads
// past the end of the value it returns.
//
// Readers are not safe for concurrent use.
type Reader[U constraints.Unsigned] struct {
	src     until.Source[byte]
	readErr error
	count   int
}

// NewReader constructs a Reader.
func NewReader[U constraints.Unsigned](r io.ByteReader) *Reader[U] {
	rd := &Reader[U]{}
	rd.src = until.FuncSource(func() (byte, bool) {
		b, err := r.ReadByte()
		if err != nil {
			rd.readErr = err
			return 0, false
		}
		rd.count++
		return b, true
	})
	return rd
}

// Read returns the next value. It returns io.EOF when the stream ends
// between values, and an error wrapping ErrTruncated when it ends
// inside one.
func (r *Reader[U]) Read() (U, error) {
	if r.readErr != nil && r.readErr != io.EOF {
		return 0, r.readErr
	}
	r.readErr = nil

	it := until.New(r.src, IsLast)
	out, n, err := Decode[U](it.Seq())
	switch {
	case r.readErr != nil && r.readErr != io.EOF:
		r.readErr = errors.Wrapf(r.readErr, "reading varint at offset %d", r.count)
		return 0, r.readErr
	case n == 0 && r.readErr == io.EOF:
		return 0, io.EOF
	case err != nil:
		// skip the rest of an oversized value so the next Read
		// starts on a boundary
		for range it.Seq() {
		}
		return 0, errors.Wrapf(err, "offset %d", r.count)
	}
	return out, nil
}

// Offset returns the number of bytes consumed.
func (r *Reader[U]) Offset() int { return r.count }

// Values returns a sequence of (value, error) pairs for the rest of
// the stream. The sequence ends at io.EOF, or after yielding the
// first other error.
func (r *Reader[U]) Values() iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for {
			v, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
