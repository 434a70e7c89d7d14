package until

import (
	"fmt"
	"iter"
)

// Source is a pull-style lazy sequence: each call to Next returns
// either the next element and true, or the zero value and false when
// there are no more elements.
type Source[T any] interface {
	Next() (T, bool)
}

// SizeHinter is implemented by sources that can cheaply report
// bounds on the number of elements they have left.
type SizeHinter interface {
	SizeHint() Hint
}

// Fuser is implemented by sources that can promise, when Fused
// returns true, that after reporting the end of the sequence they
// will continue to do so on every later call to Next.
type Fuser interface {
	Fused() bool
}

// SizeHintOf returns the source's hint when it implements
// SizeHinter, and Unbounded() otherwise.
func SizeHintOf(src any) Hint {
	if sh, ok := src.(SizeHinter); ok {
		return sh.SizeHint()
	}
	return Unbounded()
}

// IsFused reports whether the source implements Fuser and is fused.
func IsFused(src any) bool {
	fs, ok := src.(Fuser)
	return ok && fs.Fused()
}

// Slice is a fused Source over the elements of a slice.
type Slice[T any] struct {
	items []T
	pos   int
}

// SliceSource provides Source access to the elements in a slice. The
// slice is not copied.
func SliceSource[T any](in []T) *Slice[T] { return &Slice[T]{items: in} }

// VariadicSource produces a Source from the arguments.
func VariadicSource[T any](in ...T) *Slice[T] { return SliceSource(in) }

func (s *Slice[T]) Next() (out T, _ bool) {
	if s.pos >= len(s.items) {
		return out, false
	}
	out = s.items[s.pos]
	s.pos++
	return out, true
}

func (s *Slice[T]) SizeHint() Hint { return Exact(len(s.items) - s.pos) }
func (*Slice[T]) Fused() bool      { return true }
func (s *Slice[T]) String() string {
	return fmt.Sprintf("Slice{pos: %d, len: %d}", s.pos, len(s.items))
}

type funcSource[T any] func() (T, bool)

// FuncSource adapts a function to the Source interface. Function
// sources are not considered fused, and provide no size hint.
func FuncSource[T any](fn func() (T, bool)) Source[T] { return funcSource[T](fn) }

func (fn funcSource[T]) Next() (T, bool) { return fn() }
func (funcSource[T]) String() string     { return "FuncSource" }

// Pull is a Source over an iter.Seq, using iter.Pull. Callers must
// call Close (directly, or via the Iterator that owns the Pull) if
// they stop pulling before the sequence is exhausted.
type Pull[T any] struct {
	next  func() (T, bool)
	stop  func()
	ended bool
}

// PullSource converts a push-style sequence into a Source.
func PullSource[T any](seq iter.Seq[T]) *Pull[T] {
	next, stop := iter.Pull(seq)
	return &Pull[T]{next: next, stop: stop}
}

func (p *Pull[T]) Next() (out T, ok bool) {
	if out, ok = p.next(); !ok {
		p.ended = true
	}
	return
}

// Fused is always true: the next function returned by iter.Pull
// reports false for every call after the sequence ends or stop is
// called.
func (*Pull[T]) Fused() bool { return true }

// Close stops the underlying sequence. It is safe to call more than
// once.
func (p *Pull[T]) Close() error { p.stop(); p.ended = true; return nil }

func (p *Pull[T]) String() string { return fmt.Sprintf("Pull{ended: %t}", p.ended) }
