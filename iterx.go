// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// iterx is a set of combinators over [iter.Seq], complementing the std [slices] and [maps]
// helpers. Lazy combinators return a new sequence which does no work until ranged over; eager
// combinators consume their whole input before returning. Either way passing a sequence into a
// combinator hands over ownership, the input should not be ranged again by the caller.
package iterx

import (
	"iter"

	"github.com/Lexer747/iterx/peek"
	"golang.org/x/exp/constraints"
)

// ToPeekable wraps the sequence with single element lookahead, see [peek.Peekable].
func ToPeekable[T any](seq iter.Seq[T]) *peek.Peekable[T] {
	return peek.New(seq)
}

// Ascending is a three-way comparison over any ordered type, suitable for [IsSorted] and [MinMax].
// It reports negative when a is smaller than b, positive when larger, and zero when equal. Floats
// compare as with the < operator, therefore NaN is not ordered against anything.
func Ascending[T constraints.Ordered]() func(a, b T) int {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	}
}

// Descending is [Ascending] with the order of every pair reversed.
func Descending[T constraints.Ordered]() func(a, b T) int {
	asc := Ascending[T]()
	return func(a, b T) int {
		return asc(b, a)
	}
}
