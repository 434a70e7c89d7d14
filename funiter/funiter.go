// Package funiter provides the take-until adapter for the streams
// and iterators in github.com/tychoish/fun.
//
// TakeUntil produces a new *fun.Stream, so the result keeps all of
// the Stream tooling (Slice, ReadAll, Filter, Transform). Iterator
// adapts anything with the Next/Value/Close method set, for callers
// that need the adapter's state (Done, String).
package funiter

import (
	"context"
	"fmt"
	"io"

	"github.com/tychoish/fun"
)

// TakeUntil returns a stream of the elements of st up to and
// including the first element for which prd returns true. There is
// no buffering: each read from the output reads one item from st.
//
// Closing the output stream closes st, and errors from st are
// reported by the output stream's Close.
func TakeUntil[T any](st *fun.Stream[T], prd func(T) bool) *fun.Stream[T] {
	done := false
	return fun.MakeStream(func(ctx context.Context) (out T, err error) {
		if done {
			return out, io.EOF
		}
		if out, err = st.Read(ctx); err != nil {
			return out, err
		}
		done = prd(out)
		return out, nil
	}).WithHook(st.CloseHook())
}

// Source is the method set of fun's iterators and streams: Next
// advances and reports whether a value is available, Value returns
// it, and Close releases the source and reports its errors.
type Source[T any] interface {
	Next(context.Context) bool
	Value() T
	Close() error
}

// Iterator is the take-until adapter for a Source. It implements
// Source itself, so adapters can be stacked.
//
// Next and Value share state, so an Iterator must not be used from
// more than one goroutine.
type Iterator[T any] struct {
	src   Source[T]
	pred  func(T) bool
	value T
	done  bool
}

var _ Source[int] = (*Iterator[int])(nil)

// NewIterator wraps a source without advancing it.
func NewIterator[T any](src Source[T], pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{src: src, pred: pred}
}

// Next advances the iterator. Once the predicate has returned true,
// Next returns false without advancing the source.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	if it.done || !it.src.Next(ctx) {
		return false
	}
	it.value = it.src.Value()
	it.done = it.pred(it.value)
	return true
}

// Value returns the element produced by the last successful call to
// Next.
func (it *Iterator[T]) Value() T { return it.value }

// Close closes the source.
func (it *Iterator[T]) Close() error { return it.src.Close() }

// Done reports whether the predicate has returned true.
func (it *Iterator[T]) Done() bool { return it.done }

func (it *Iterator[T]) String() string {
	return fmt.Sprintf("funiter.TakeUntil{source: %v, done: %t}", it.src, it.done)
}
