// Package search implements searching over sorted sequences.
package search

import "cmp"

// Binary searches the ascending slice s for target and returns its index.
// It returns -1 and false when target is not present or s is empty.
//
// The search narrows [left, right] around the midpoint until at most two
// candidates remain, then compares them directly.
func Binary[S ~[]E, E cmp.Ordered](s S, target E) (int, bool) {
	if len(s) == 0 {
		return -1, false
	}

	left, right := 0, len(s)-1

	for right-left > 1 {
		mid := left + (right-left)/2

		switch {
		case target == s[mid]:
			return mid, true
		case target < s[mid]:
			right = mid - 1
		default:
			left = mid + 1
		}
	}

	if s[left] == target {
		return left, true
	}

	if s[right] == target {
		return right, true
	}

	return -1, false
}
