// Package goiter provides the take-until adapter for go-iterators
// Iterator values, which return go_iterators.EmptyIterator at the end
// of the sequence and must be closed.
package goiter

import (
	"fmt"

	go_iterators "github.com/lezhnev74/go-iterators"
)

// Iterator emits the elements of the wrapped iterator up to and
// including the first element for which the predicate returns true.
// It owns the wrapped iterator: Close always closes it.
type Iterator[T any] struct {
	inner  go_iterators.Iterator[T]
	pred   func(T) bool
	done   bool
	closed bool
}

var _ go_iterators.Iterator[int] = (*Iterator[int])(nil)

// TakeUntil wraps an iterator without reading from it.
func TakeUntil[T any](it go_iterators.Iterator[T], pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{inner: it, pred: pred}
}

// Next returns go_iterators.EmptyIterator once the predicate has
// returned true, and go_iterators.ClosedIterator after Close. Any
// error from the wrapped iterator is returned as is, without calling
// the predicate.
func (it *Iterator[T]) Next() (v T, err error) {
	if it.closed {
		err = go_iterators.ClosedIterator
		return
	}
	if it.done {
		err = go_iterators.EmptyIterator
		return
	}

	v, err = it.inner.Next()
	if err != nil {
		return
	}

	if it.pred(v) {
		it.done = true
	}
	return
}

// Close closes the wrapped iterator. Only the first call reaches the
// wrapped iterator.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.inner.Close()
}

// Done reports whether the predicate has returned true.
func (it *Iterator[T]) Done() bool { return it.done }

func (it *Iterator[T]) String() string {
	return fmt.Sprintf("goiter.TakeUntil{inner: %v, done: %t}", it.inner, it.done)
}
