// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import (
	"iter"
	"slices"

	"github.com/Lexer747/iterx/utils/check"
)

// Chunk lazily regroups the sequence into slices of exactly [size] elements, except the final
// slice which holds whatever remainder is left over. An empty input produces an empty output, no
// empty slice is ever yielded. Each yielded slice is freshly allocated and owned by the caller.
//
// A size smaller than 1 cannot make progress and panics immediately, before the input is touched.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	check.Checkf(size >= 1, "Chunk size %d should be at least 1", size)
	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)
		for v := range seq {
			buf = append(buf, v)
			if len(buf) == size {
				if !yield(slices.Clone(buf)) {
					return
				}
				buf = buf[:0]
			}
		}
		if len(buf) > 0 {
			yield(slices.Clone(buf))
		}
	}
}
