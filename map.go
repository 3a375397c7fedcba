// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

func Map[IN, OUT any](in iter.Seq[IN], f func(IN) OUT) iter.Seq[OUT] {
	return func(yield func(OUT) bool) {
		in(func(v IN) bool {
			return yield(f(v))
		})
	}
}

func Filter[T any](in iter.Seq[T], f func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		in(func(v T) bool {
			if f(v) {
				return yield(v)
			}
			return true
		})
	}
}

// Zip pairs the two sequences element-wise, stopping at whichever is exhausted first. Inverse of
// [Unzip] when both inputs share a length.
func Zip[A, B any](s1 iter.Seq[A], s2 iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(s2)
		defer stop()
		for a := range s1 {
			b, ok := next()
			if !ok || !yield(a, b) {
				return
			}
		}
	}
}
