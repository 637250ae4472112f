// This file implements the contiguous-range binary search used by the
// store's date queries.
package logfile

import "cmp"

// Span locates the contiguous run of elements whose projected key equals
// goal. It binary-searches for any matching element, then expands linearly
// to the maximal run of equal keys, returning the half-open index span
// elems[lo:hi]. ok reports whether any element matched.
//
// elems must already be sorted by key, non-decreasing when asc is true and
// non-increasing otherwise; the result is unspecified if it is not.
func Span[E any, K cmp.Ordered](elems []E, goal K, key func(E) K, asc bool) (lo, hi int, ok bool) {
	low, high := 0, len(elems)
	found := -1

	for low < high {
		mid := (low + high) / 2
		v := key(elems[mid])
		if v == goal {
			found = mid
			break
		}
		if (v < goal) == asc {
			low = mid + 1
		} else {
			high = mid
		}
	}

	if found < 0 {
		return 0, 0, false
	}

	lo, hi = found, found+1
	for lo > 0 && key(elems[lo-1]) == goal {
		lo--
	}
	for hi < len(elems) && key(elems[hi]) == goal {
		hi++
	}
	return lo, hi, true
}
