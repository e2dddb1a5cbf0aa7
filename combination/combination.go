package combination

import "iter"

// Iterator yields every k-subset of {0,...,n-1} exactly once, ascending
// within a subset and lexicographic across subsets.
// An Iterator is not safe for concurrent use.
type Iterator struct {
	n, k  int
	idx   []int // current subset, reused between steps
	state int
	empty bool // n=0 with k>0: the sequence has no elements
}

// Iterator states.
const (
	stateFresh = iota
	stateActive
	stateDone
)

// New returns an Iterator over the k-subsets of n items.
// Negative arguments are treated as zero; k is clamped to n.
func New(n, k int) *Iterator {
	if n < 0 {
		n = 0
	}
	if k < 0 {
		k = 0
	}
	it := &Iterator{n: n, k: k}
	if k > n {
		// Only n=0 asks for a non-empty subset of nothing; otherwise clamp.
		if n == 0 {
			it.empty = true
			it.state = stateDone
		}
		it.k = n
	}

	return it
}

// Size reports the clamped subset size.
func (it *Iterator) Size() int { return it.k }

// Next advances to the next subset. It returns false once the sequence is
// exhausted, after which the buffer is released.
func (it *Iterator) Next() bool {
	switch it.state {
	case stateDone:
		return false
	case stateFresh:
		// 1. First subset: 0,1,...,k-1.
		if it.idx == nil {
			it.idx = make([]int, it.k)
		}
		for i := range it.idx {
			it.idx[i] = i
		}
		it.state = stateActive

		return true
	}

	// 2. Find the right-most position that still has room.
	//    Position i tops out at n-k+i.
	pos := -1
	for i := it.k - 1; i >= 0; i-- {
		if it.idx[i] < it.n-it.k+i {
			pos = i
			break
		}
	}
	if pos < 0 {
		it.idx = nil
		it.state = stateDone

		return false
	}

	// 3. Bump it and lay the tail out consecutively.
	next := it.idx[pos] + 1
	for i := pos; i < it.k; i++ {
		it.idx[i] = next
		next++
	}

	return true
}

// Indices returns the current subset. The slice is owned by the iterator.
func (it *Iterator) Indices() []int { return it.idx }

// Reset rewinds the iterator to before the first subset.
func (it *Iterator) Reset() {
	if it.empty {
		return
	}
	it.state = stateFresh
}

// Seq returns a single-use sequence over the k-subsets of n items.
// Yielded slices are reused; copy them to retain.
func Seq(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		it := New(n, k)
		for it.Next() {
			if !yield(it.Indices()) {
				return
			}
		}
	}
}

// Count returns C(n,k) with the same clamping rules as New.
func Count(n, k int) uint64 {
	if n < 0 {
		n = 0
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		if n == 0 {
			return 0
		}
		k = n
	}
	if k > n-k {
		k = n - k
	}
	var c uint64 = 1
	for i := 1; i <= k; i++ {
		c = c * uint64(n-k+i) / uint64(i)
	}

	return c
}
