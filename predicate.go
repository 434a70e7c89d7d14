package until

// Predicate is the termination test for the take-until adapters. A
// Predicate may keep state between calls: the adapters call it once
// per element, in order, and never again after it returns true.
type Predicate[T any] func(T) bool

// MakePredicate converts a function into a Predicate.
func MakePredicate[T any](fn func(T) bool) Predicate[T] { return fn }

// Test calls the predicate.
func (p Predicate[T]) Test(v T) bool { return p(v) }

// Not returns a predicate that inverts this one.
func (p Predicate[T]) Not() Predicate[T] { return func(v T) bool { return !p(v) } }

// Counted returns a predicate that increments count every time it is
// called, before calling this one.
func (p Predicate[T]) Counted(count *int) Predicate[T] {
	return func(v T) bool { *count++; return p(v) }
}

// Not inverts a predicate.
func Not[T any](prd func(T) bool) Predicate[T] { return MakePredicate(prd).Not() }

// Counted wraps a predicate so that every call increments count.
func Counted[T any](count *int, prd func(T) bool) Predicate[T] {
	return MakePredicate(prd).Counted(count)
}
