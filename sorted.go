// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

// IsSorted eagerly reports whether the sequence is in non-decreasing order under the three-way
// [compare] (see [Ascending] for the convention). Empty and single element sequences are sorted.
// Equal neighbours do not break sortedness. Consumes only up to the first out-of-order pair.
func IsSorted[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return isSorted(seq, compare, +1)
}

// IsSortedDesc is [IsSorted] for non-increasing order.
func IsSortedDesc[T any](seq iter.Seq[T], compare func(T, T) int) bool {
	return isSorted(seq, compare, -1)
}

func isSorted[T any](seq iter.Seq[T], compare func(T, T) int, bad int) bool {
	started := false
	var prev T
	for v := range seq {
		if started && sign(compare(prev, v)) == bad {
			return false
		}
		prev = v
		started = true
	}
	return true
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return +1
	default:
		return 0
	}
}

// MinMax eagerly folds the sequence into its smallest and largest elements under the three-way
// [compare]. A single element is its own min and max; an empty sequence reports ok false. Where
// several elements compare equal the earliest pulled wins, except that the max of the first two
// elements breaks their tie towards the second.
func MinMax[T any](seq iter.Seq[T], compare func(T, T) int) (minimum, maximum T, ok bool) {
	n := 0
	for v := range seq {
		switch {
		case n == 0:
			minimum, maximum = v, v
		case n == 1:
			// Seed both bounds from the first pair with a single comparison.
			if compare(v, minimum) < 0 {
				minimum = v
			} else {
				maximum = v
			}
		case compare(v, minimum) < 0:
			minimum = v
		case compare(v, maximum) > 0:
			maximum = v
		}
		n++
	}
	return minimum, maximum, n > 0
}
