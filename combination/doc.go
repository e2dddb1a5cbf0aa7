// Package combination enumerates k-element index subsets of {0,...,n-1}
// in lexicographic order.
//
// What:
//
//   - Iterator: a pull-based cursor. Next advances, Indices exposes the
//     current ascending subset. The index buffer is allocated once and
//     reused for every subset (arena-style), so the slice returned by
//     Indices is only valid until the next call to Next.
//   - Seq: a range-over-func adapter around Iterator.
//   - Count: the binomial coefficient C(n,k).
//
// Edge cases:
//
//   - k > n is clamped to n.
//   - k = 0 yields exactly one empty subset.
//   - n = 0 with k > 0 yields nothing.
//
// Complexity: O(k) per step, O(k) memory, C(n,k) steps in total.
package combination
