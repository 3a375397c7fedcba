// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package iterx_test

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Lexer747/iterx"
)

func TestChunk(t *testing.T) {
	t.Parallel()
	t.Run("Exact multiple", chunkCase[int]{
		Input: []int{1, 2, 3, 4, 5, 6},
		Size:  3,
		Output: [][]int{
			{1, 2, 3},
			{4, 5, 6},
		},
	}.Run)
	t.Run("Short final chunk", chunkCase[int]{
		Input: []int{1, 2, 3, 4, 5, 6, 7},
		Size:  3,
		Output: [][]int{
			{1, 2, 3},
			{4, 5, 6},
			{7},
		},
	}.Run)
	t.Run("Size one", chunkCase[rune]{
		Input: []rune("abc"),
		Size:  1,
		Output: [][]rune{
			{'a'},
			{'b'},
			{'c'},
		},
	}.Run)
	t.Run("Size larger than input", chunkCase[int]{
		Input: []int{1, 2},
		Size:  5,
		Output: [][]int{
			{1, 2},
		},
	}.Run)
	t.Run("Empty input", chunkCase[int]{
		Input:  []int{},
		Size:   4,
		Output: [][]int{},
	}.Run)
}

func TestChunk_ZeroSize(t *testing.T) {
	t.Parallel()
	defer func() {
		assert.Check(t, recover() != nil, "Chunk with size 0 should panic")
	}()
	iterx.Chunk(slices.Values([]int{1, 2, 3}), 0)
	t.Error("Chunk with size 0 returned normally")
}

// Each yielded chunk is an owned snapshot, later pulls should never mutate earlier chunks.
func TestChunk_NoAliasing(t *testing.T) {
	t.Parallel()
	var first []int
	for c := range iterx.Chunk(slices.Values([]int{1, 2, 3, 4}), 2) {
		if first == nil {
			first = c
		}
	}
	assert.DeepEqual(t, []int{1, 2}, first)
}

type chunkCase[T comparable] struct {
	Input  []T
	Size   int
	Output [][]T
}

func (tc chunkCase[T]) Run(t *testing.T) {
	t.Helper()
	t.Parallel()
	result := slices.Collect(iterx.Chunk(slices.Values(tc.Input), tc.Size))
	assert.Check(t, is.Equal(len(tc.Output), len(result)))
	for i := range min(len(tc.Output), len(result)) {
		assert.Check(t, is.DeepEqual(tc.Output[i], result[i]), "chunk %d", i)
	}
}
