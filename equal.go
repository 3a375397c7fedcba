// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx

import "iter"

// Equal consumes both sequences in lockstep, reporting whether they hold equal elements (under
// [equal]) in the same order. Sequences of different lengths are never equal. Returns false as
// soon as a pair disagrees, leaving both sequences partially consumed.
func Equal[T any](s1, s2 iter.Seq[T], equal func(T, T) bool) bool {
	next1, stop1 := iter.Pull(s1)
	defer stop1()
	next2, stop2 := iter.Pull(s2)
	defer stop2()
	for {
		v1, ok1 := next1()
		v2, ok2 := next2()
		switch {
		case ok1 != ok2:
			return false
		case !ok1:
			return true
		case !equal(v1, v2):
			return false
		}
	}
}
