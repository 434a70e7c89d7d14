package until

import "iter"

// TakeUntil returns a sequence of the elements of seq up to and
// including the first element for which prd returns true. If prd never
// returns true, the output is all of seq.
//
// The predicate is called exactly once for each element produced, in
// order, and is never called for elements after the terminating one,
// so it may safely keep state between calls.
//
// Each range over the returned sequence starts a new range over seq.
func TakeUntil[T any](seq iter.Seq[T], prd func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if prd(v) {
				yield(v)
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeUntil2 is TakeUntil for sequences of pairs, such as (value,
// error) sequences, where failures are passed through as ordinary
// elements.
func TakeUntil2[K, V any](seq iter.Seq2[K, V], prd func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			if prd(k, v) {
				yield(k, v)
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// TakeWhile is the exclusive counterpart of TakeUntil: it yields
// elements while prd returns true, and stops without yielding the
// first element for which prd returns false.
//
// TakeUntil(seq, prd) is TakeWhile(seq, Not(prd)) with the element
// that stopped it appended.
func TakeWhile[T any](seq iter.Seq[T], prd func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !prd(v) || !yield(v) {
				return
			}
		}
	}
}
