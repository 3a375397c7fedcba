// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

// GroupBy lazily groups consecutive elements which agree under f, yielding each maximal run
// alongside the shared result of f. Input order is preserved across and within runs, so an element
// sequence is exactly recovered by concatenating the runs, and the run results alternate. This is
// run-length grouping, not a full partition: the same result can recur in later runs.
//
// f is evaluated once per element; membership of a run is decided against the result of its first
// element, which is remembered rather than recomputed per yield.
func GroupBy[T any](seq iter.Seq[T], f func(T) bool) iter.Seq2[[]T, bool] {
	return func(yield func([]T, bool) bool) {
		var run []T
		var shared bool
		for v := range seq {
			if len(run) == 0 {
				run = append(run, v)
				shared = f(v)
				continue
			}
			fv := f(v)
			if fv == shared {
				run = append(run, v)
				continue
			}
			if !yield(run, shared) {
				return
			}
			run = []T{v}
			shared = fv
		}
		if len(run) > 0 {
			yield(run, shared)
		}
	}
}
