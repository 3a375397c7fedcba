// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

// Flatten lazily concatenates a sequence of slices into a sequence of their elements. Each slice
// is fully drained before the input is advanced; empty slices are skipped transparently.
func Flatten[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}
