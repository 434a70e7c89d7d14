package until

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeUntil(t *testing.T) {
	t.Run("SignFlip", func(t *testing.T) {
		items := []int{1, 2, 3, 4, -5, -6, -7, -8}

		assert.Equal(t, []int{1, 2, 3, 4}, drain(TakeWhile(slices.Values(items), func(v int) bool { return v > 0 })))
		assert.Equal(t, []int{1, 2, 3, 4, -5}, drain(TakeUntil(slices.Values(items), func(v int) bool { return v <= 0 })))
	})
	t.Run("EmptySource", func(t *testing.T) {
		calls := 0
		out := drain(TakeUntil(slices.Values([]string{}), Counted(&calls, func(string) bool { return true })))
		assert.Empty(t, out)
		assert.Zero(t, calls)
	})
	t.Run("RelationToTakeWhile", func(t *testing.T) {
		inputs := [][]int{
			{},
			{1},
			{0},
			{1, 2, 3},
			{3, 2, 1, 0, 1, 2, 3},
			{0, 0, 0},
			{9, 8, 7, 6, 5, 4, 3, 2, 1},
		}
		for _, input := range inputs {
			for threshold := -1; threshold <= 10; threshold++ {
				t.Run(fmt.Sprint(input, threshold), func(t *testing.T) {
					prd := func(v int) bool { return v >= threshold }

					inclusive := drain(TakeUntil(slices.Values(input), prd))
					exclusive := drain(TakeWhile(slices.Values(input), Not(prd)))

					idx := slices.IndexFunc(input, prd)
					if idx < 0 {
						assert.Equal(t, input, inclusive)
						assert.Equal(t, exclusive, inclusive)
						return
					}
					assert.Equal(t, input[:idx+1], inclusive)
					assert.Equal(t, append(slices.Clone(exclusive), input[idx]), inclusive)
				})
			}
		}
	})
	t.Run("PredicateCalls", func(t *testing.T) {
		calls := 0
		seq := TakeUntil(slices.Values([]int{1, 2, 3, 4, 5, 6}), Counted(&calls, func(v int) bool { return v == 3 }))
		out := drain(seq)
		assert.Equal(t, []int{1, 2, 3}, out)
		assert.Equal(t, len(out), calls)
	})
	t.Run("ConsumerStopsEarly", func(t *testing.T) {
		calls, pulled := 0, 0
		source := func(yield func(int) bool) {
			for i := 0; ; i++ {
				pulled++
				if !yield(i) {
					return
				}
			}
		}
		for v := range TakeUntil(source, Counted(&calls, func(v int) bool { return v == 100 })) {
			if v == 4 {
				break
			}
		}
		assert.Equal(t, 5, calls)
		assert.Equal(t, 5, pulled)
	})
	t.Run("DoesNotPullPastTermination", func(t *testing.T) {
		pulled := 0
		source := func(yield func(int) bool) {
			for i := 0; i < 10; i++ {
				pulled++
				if !yield(i) {
					return
				}
			}
		}
		assert.Equal(t, []int{0, 1, 2}, drain(TakeUntil(source, func(v int) bool { return v == 2 })))
		assert.Equal(t, 3, pulled)
	})
	t.Run("Restartable", func(t *testing.T) {
		seq := TakeUntil(slices.Values([]int{1, 2, 3}), func(v int) bool { return v == 2 })
		assert.Equal(t, []int{1, 2}, drain(seq))
		assert.Equal(t, []int{1, 2}, drain(seq))
	})
	t.Run("Lazy", func(t *testing.T) {
		called := false
		_ = TakeUntil(func(func(int) bool) { called = true }, func(int) bool { return true })
		assert.False(t, called)
	})
}

func TestTakeUntil2(t *testing.T) {
	errBad := errors.New("bad")
	results := func(yield func(int, error) bool) {
		for _, r := range []struct {
			v   int
			err error
		}{{1, nil}, {2, nil}, {0, errBad}, {4, nil}} {
			if !yield(r.v, r.err) {
				return
			}
		}
	}

	var (
		values []int
		errs   []error
	)
	for v, err := range TakeUntil2(iter.Seq2[int, error](results), func(_ int, err error) bool { return err != nil }) {
		values = append(values, v)
		errs = append(errs, err)
	}
	require.Len(t, errs, 3)
	assert.Equal(t, []int{1, 2, 0}, values)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], errBad)

	t.Run("Break", func(t *testing.T) {
		count := 0
		for range TakeUntil2(iter.Seq2[int, error](results), func(int, error) bool { return false }) {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}
