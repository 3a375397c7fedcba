// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

// FindIndex eagerly scans for the first element satisfying f, returning its zero-based index. The
// sequence is consumed up to and including the match, or fully when no element matches (ok false).
func FindIndex[T any](seq iter.Seq[T], f func(T) bool) (index int, ok bool) {
	i := 0
	for v := range seq {
		if f(v) {
			return i, true
		}
		i++
	}
	return 0, false
}

// FindIndices lazily yields the zero-based index of every element satisfying f. The index counts
// every element examined, matching or not, and keeps counting across yields.
func FindIndices[T any](seq iter.Seq[T], f func(T) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		i := 0
		for v := range seq {
			if f(v) && !yield(i) {
				return
			}
			i++
		}
	}
}
