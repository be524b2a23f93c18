// Package sorting implements classic comparison sorts over slices.
//
// Every function sorts s in place in ascending order.
package sorting

import (
	"cmp"
	"slices"
)

// Bubble repeatedly swaps adjacent out-of-order elements. O(n^2).
func Bubble[S ~[]E, E cmp.Ordered](s S) {
	for i := range len(s) {
		swapped := false

		for j := range len(s) - i - 1 {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

// Insertion grows a sorted prefix by sinking each element into place. O(n^2).
func Insertion[S ~[]E, E cmp.Ordered](s S) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// Selection swaps the minimum of the unsorted suffix into place. O(n^2).
func Selection[S ~[]E, E cmp.Ordered](s S) {
	for i := range len(s) {
		minIdx := i

		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}

		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// Merge splits s in half, sorts both halves and merges them. O(n log n), stable.
func Merge[S ~[]E, E cmp.Ordered](s S) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2

	left := slices.Clone(s[:mid])
	right := slices.Clone(s[mid:])

	Merge(left)
	Merge(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}

	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}

// Quick partitions around the first element of each range. O(n log n) on
// average, O(n^2) on already sorted input.
func Quick[S ~[]E, E cmp.Ordered](s S) {
	if len(s) <= 1 {
		return
	}

	quick(s, 0, len(s)-1)
}

func quick[S ~[]E, E cmp.Ordered](s S, low, high int) {
	for low < high {
		p := partition(s, low, high)

		// Recurse into the smaller side to bound stack depth.
		if p-low < high-p {
			quick(s, low, p-1)
			low = p + 1
		} else {
			quick(s, p+1, high)
			high = p - 1
		}
	}
}

// partition moves everything smaller than s[low] in front of it and returns
// the pivot's final index.
func partition[S ~[]E, E cmp.Ordered](s S, low, high int) int {
	swap := low + 1

	for j := low + 1; j <= high; j++ {
		if s[j] < s[low] {
			if swap != j {
				s[swap], s[j] = s[j], s[swap]
			}
			swap++
		}
	}

	p := swap - 1
	if p != low {
		s[low], s[p] = s[p], s[low]
	}

	return p
}
