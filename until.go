// Package until provides an inclusive "take until" adapter for lazy
// sequences: the output yields elements from the input unchanged,
// stopping immediately after, and including, the first element for
// which the predicate returns true.
//
// The adapter is offered for the pull-style Source interface (the
// Iterator type), and for push-style iter.Seq and iter.Seq2 values
// (TakeUntil and TakeUntil2). The stream and goiter subpackages
// provide the same adapter for other common iterator contracts.
package until

import (
	"fmt"
	"io"
	"iter"
)

// Iterator is the take-until adapter over a pull-style Source. The
// Iterator owns its source and predicate; neither should be used
// elsewhere once wrapped.
//
// Once the predicate returns true for an element, that element is
// returned and every following call to Next reports the end of the
// sequence without calling the source or the predicate again.
//
// Iterators are not safe for concurrent use.
type Iterator[T any] struct {
	source    Source[T]
	predicate func(T) bool
	done      bool
}

// New constructs an Iterator. Construction does not pull from the
// source or call the predicate.
func New[T any](src Source[T], prd func(T) bool) *Iterator[T] {
	return &Iterator[T]{source: src, predicate: prd}
}

// Next returns the next element and true, or the zero value and
// false when the sequence has ended.
//
// When the source ends, the Iterator does not record that fact: a
// later call asks the source again. Sources that implement Fuser
// and report themselves fused will keep reporting the end.
func (it *Iterator[T]) Next() (out T, _ bool) {
	if it.done {
		return out, false
	}

	val, ok := it.source.Next()
	if !ok {
		return out, false
	}

	if it.predicate(val) {
		it.done = true
	}

	return val, true
}

// Done reports whether the predicate has returned true, after which
// the Iterator is exhausted.
func (it *Iterator[T]) Done() bool { return it.done }

// SizeHint reports the advisory bounds on the number of elements
// remaining. The lower bound is always zero because the predicate may
// end the sequence on the next element; the upper bound is the
// source's, if it provides one. After the Iterator is done the hint
// is exactly zero.
func (it *Iterator[T]) SizeHint() Hint {
	if it.done {
		return Exact(0)
	}
	hint := SizeHintOf(it.source)
	hint.Lower = 0
	return hint
}

// Fused reports whether the Iterator, once it reports the end of the
// sequence, will do so on every later call. This is true when the
// source is fused.
func (it *Iterator[T]) Fused() bool { return IsFused(it.source) }

// Seq exposes the Iterator as an iter.Seq, so it can be used in range
// loops and passed to other sequence functions. The sequence pulls from
// the Iterator and so shares its state: ranging over it twice continues
// where the previous loop stopped.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// Close releases the source if it implements io.Closer, and is a
// noop otherwise. Close does not change the Iterator's done state.
func (it *Iterator[T]) Close() error {
	if closer, ok := it.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// String renders a diagnostic view of the Iterator: the source's own
// formatting and the done flag. The predicate is not included.
func (it *Iterator[T]) String() string {
	return fmt.Sprintf("TakeUntil{source: %v, done: %t}", it.source, it.done)
}
