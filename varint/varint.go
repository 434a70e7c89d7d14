// Package varint decodes and encodes unsigned base-128 varints, the
// little-endian groups of seven bits used by protocol buffers and
// encoding/binary, on top of the take-until sequence adapters.
package varint

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/tychoish/until"
)

// Error is the type of the sentinel errors in this package, so they
// can be declared as constants.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrTruncated is returned when the input ends before a byte
	// with the continuation bit clear.
	ErrTruncated Error = "varint: truncated"
	// ErrOverflow is returned when the encoded value does not fit
	// in the requested integer type.
	ErrOverflow Error = "varint: overflow"
)

const (
	continuation = 0x80
	payload      = 0x7f
)

// IsLast reports whether b is the final byte of a varint.
func IsLast(b byte) bool { return b&continuation == 0 }

// Decode reads one varint from the start of seq, consuming bytes up
// to and including the first byte without the continuation bit. It
// returns the value and the number of bytes consumed.
func Decode[U constraints.Unsigned](seq iter.Seq[byte]) (out U, n int, err error) {
	width := bitsOf[U]()
	limit := MaxLen[U]()
	last := false
	for b := range until.TakeUntil(seq, IsLast) {
		shift := 7 * n
		group := U(b & payload)
		n++
		last = IsLast(b)
		if n > limit {
			return 0, n, errors.Wrapf(ErrOverflow, "%d-bit value longer than %d bytes", width, limit)
		}
		if group == 0 {
			continue
		}
		if shift >= width || (group<<shift)>>shift != group {
			return 0, n, errors.Wrapf(ErrOverflow, "%d-bit value at byte %d", width, n)
		}
		out |= group << shift
	}
	if !last {
		return 0, n, errors.Wrapf(ErrTruncated, "after %d bytes", n)
	}
	return out, n, nil
}

// MaxLen returns the longest encoding of a value of type U, in
// bytes. Longer inputs, even when padded with zero groups, are
// rejected as overflows.
func MaxLen[U constraints.Unsigned]() int { return (bitsOf[U]() + 6) / 7 }

// Append encodes v as a varint and appends it to buf.
func Append[U constraints.Unsigned](buf []byte, v U) []byte {
	for v >= continuation {
		buf = append(buf, byte(v)|continuation)
		v >>= 7
	}
	return append(buf, byte(v))
}

func bitsOf[U constraints.Unsigned]() (n int) {
	for v := ^U(0); v != 0; v >>= 1 {
		n++
	}
	return
}
