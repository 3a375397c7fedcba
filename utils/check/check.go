// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package check

import "fmt"

// Check asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of a library contract and will result in a panic. E.g.
//
//	check.Check(size >= 1, "size should be at least 1")
//
// It is used for arguments which no caller can meaningfully pass wrong at runtime, only through a
// programming mistake.
func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic("check failed: " + assertMsg)
	}
}

// Checkf asserts that the given condition is true, if it is not this is assumed to be an unrecoverable
// violation of a library contract and will result in a panic. Checkf is a variant which will format the
// message according to normal go printf semantics. E.g.
//
//	check.Checkf(size >= 1, "size %d should be at least 1", size)
func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic("check failed: " + fmt.Sprintf(format, a...))
	}
}
