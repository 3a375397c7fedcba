// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import (
	"iter"

	"github.com/Lexer747/iterx/utils/check"
)

// Nth eagerly discards the first n elements and returns the one after, ok false when the sequence
// held fewer than n+1 elements. Consumes at most n+1 elements. A negative n panics.
func Nth[T any](seq iter.Seq[T], n int) (T, bool) {
	check.Checkf(n >= 0, "Nth index %d should not be negative", n)
	i := 0
	for v := range seq {
		if i == n {
			return v, true
		}
		i++
	}
	var zero T
	return zero, false
}

// SplitAt cuts the sequence after its first n elements. The left half is materialized into an
// owned slice, shorter than n when the input ran out first. The right half is the same underlying
// sequence continued lazily from where the left half stopped; it is single use and immediately
// exhausted when the input held at most n elements. A negative n panics.
func SplitAt[T any](seq iter.Seq[T], n int) ([]T, iter.Seq[T]) {
	check.Checkf(n >= 0, "SplitAt index %d should not be negative", n)
	next, stop := iter.Pull(seq)
	var left []T
	for range n {
		v, ok := next()
		if !ok {
			stop()
			return left, func(func(T) bool) {}
		}
		left = append(left, v)
	}
	right := func(yield func(T) bool) {
		defer stop()
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	return left, right
}

// Partition eagerly routes every element into one of two owned slices on the result of f,
// preserving the input order within both.
func Partition[T any](seq iter.Seq[T], f func(T) bool) (matching, rest []T) {
	for v := range seq {
		if f(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matching, rest
}

// Unzip eagerly splits a sequence of pairs into two owned slices of equal length, firsts and
// seconds, preserving order. Inverse of [Zip].
func Unzip[A, B any](seq iter.Seq2[A, B]) ([]A, []B) {
	var as []A
	var bs []B
	for a, b := range seq {
		as = append(as, a)
		bs = append(bs, b)
	}
	return as, bs
}
