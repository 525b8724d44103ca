/*
Package sorting implements textbook comparison sorts and Fibonacci routines.
*/
package sorting

import (
	"cmp"
	"slices"
)

// BubbleSort sorts s in place in ascending order.
func BubbleSort[T cmp.Ordered](s []T) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 0; i < n-1; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// MergeSort returns a sorted copy of s. Equal elements keep their order.
func MergeSort[T cmp.Ordered](s []T) []T {
	if len(s) <= 1 {
		return slices.Clone(s)
	}

	mid := len(s) / 2
	left := MergeSort(s[:mid])
	right := MergeSort(s[mid:])

	result := make([]T, 0, len(s))
	for len(left) > 0 && len(right) > 0 {
		if right[0] < left[0] {
			result = append(result, right[0])
			right = right[1:]
		} else {
			result = append(result, left[0])
			left = left[1:]
		}
	}

	result = append(result, left...)
	return append(result, right...)
}

// Pivot partitions s around its first element and returns the pivot's
// final index p. Elements before p are less than the pivot, elements after
// p are greater or equal.
func Pivot[T cmp.Ordered](s []T) int {
	p := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[p] {
			// Move the pivot forward one slot and put s[i] before it.
			s[p+1], s[i] = s[i], s[p+1]
			s[p], s[p+1] = s[p+1], s[p]
			p++
		}
	}
	return p
}

// QuickSort sorts s in place in ascending order.
func QuickSort[T cmp.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}

	p := Pivot(s)
	QuickSort(s[:p])
	QuickSort(s[p+1:])
}
