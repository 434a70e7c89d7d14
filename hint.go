package until

import "fmt"

// Hint is an advisory estimate of how many elements a sequence may
// still produce. When Bounded is false the upper bound is unknown and
// Upper is ignored.
//
// Hints are for sizing allocations only; they must not be used for
// correctness.
type Hint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exact returns a hint with both bounds set to n.
func Exact(n int) Hint { return Hint{Lower: n, Upper: n, Bounded: true} }

// Unbounded returns a hint with no information: a lower bound of zero
// and an unknown upper bound.
func Unbounded() Hint { return Hint{} }

// IsExact reports whether the hint describes exactly one length.
func (h Hint) IsExact() bool { return h.Bounded && h.Lower == h.Upper }

func (h Hint) String() string {
	if !h.Bounded {
		return fmt.Sprintf("[%d, ?]", h.Lower)
	}
	return fmt.Sprintf("[%d, %d]", h.Lower, h.Upper)
}
