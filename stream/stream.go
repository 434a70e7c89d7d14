// Package stream provides the take-until adapter for context-aware
// streams.Iterator implementations, which write each element into a
// destination pointer and signal the end of the stream with
// streams.EOS().
package stream

import (
	"context"
	"fmt"

	"github.com/brendoncarroll/go-state/streams"
)

// Stream is a streams.Iterator which emits the elements of the
// wrapped iterator up to and including the first element for which
// the predicate returns true.
//
// The predicate receives the destination pointer after the wrapped
// iterator has filled it. It should not retain the pointer.
type Stream[T any] struct {
	inner streams.Iterator[T]
	pred  func(*T) bool
	done  bool
}

var _ streams.Iterator[int] = (*Stream[int])(nil)

// TakeUntil wraps an iterator. Construction does not call the
// iterator or the predicate.
func TakeUntil[T any](it streams.Iterator[T], pred func(*T) bool) *Stream[T] {
	return &Stream[T]{inner: it, pred: pred}
}

// Next writes the next element into dst. Once the predicate has
// returned true, Next returns streams.EOS() without calling the
// wrapped iterator.
//
// Errors from the wrapped iterator, including EOS and context
// errors, are returned unchanged; the predicate is not called and the
// Stream does not record them.
func (s *Stream[T]) Next(ctx context.Context, dst *T) error {
	if s.done {
		return streams.EOS()
	}
	if err := s.inner.Next(ctx, dst); err != nil {
		return err
	}
	if s.pred(dst) {
		s.done = true
	}
	return nil
}

// Done reports whether the predicate has returned true.
func (s *Stream[T]) Done() bool { return s.done }

func (s *Stream[T]) String() string {
	return fmt.Sprintf("stream.TakeUntil{inner: %v, done: %t}", s.inner, s.done)
}
