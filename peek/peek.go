// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// peek wraps any [iter.Seq] with single element lookahead. The wrapped sequence is owned by the
// returned [Peekable] and must not be iterated by anything else afterwards.
package peek

import "iter"

// Peekable pulls from a wrapped sequence on demand, holding at most one value which has been pulled
// from the sequence but not yet handed to the caller (the peek slot). All methods advance the
// underlying sequence by at most one element.
type Peekable[T any] struct {
	next   func() (T, bool)
	stop   func()
	slot   T
	cached bool
}

// New wraps the sequence, taking ownership of it. Wrapping an already exhausted sequence is valid
// and results in a Peekable which always reports no next value.
func New[T any](seq iter.Seq[T]) *Peekable[T] {
	next, stop := iter.Pull(seq)
	return &Peekable[T]{next: next, stop: stop}
}

// Peek returns the next value without consuming it, repeated calls return the same value until
// [Peekable.Next] consumes it. The first Peek after a Next pulls exactly one element from the
// wrapped sequence; exhaustion is never cached, re-pulling an exhausted sequence is cheap.
func (p *Peekable[T]) Peek() (T, bool) {
	if p.cached {
		return p.slot, true
	}
	v, ok := p.next()
	if !ok {
		var zero T
		return zero, false
	}
	p.slot = v
	p.cached = true
	return v, true
}

// Next returns the next value, consuming it. A value held in the peek slot is returned (exactly
// once) before the wrapped sequence is pulled again.
func (p *Peekable[T]) Next() (T, bool) {
	if p.cached {
		v := p.slot
		var zero T
		p.slot = zero
		p.cached = false
		return v, true
	}
	return p.next()
}

// HasNext reports whether another value remains. This may pull one element from the wrapped
// sequence into the peek slot.
func (p *Peekable[T]) HasNext() bool {
	_, ok := p.Peek()
	return ok
}

// IsNext reports whether the next value is equal to [value] under [equal], false when exhausted.
// Like [Peekable.HasNext] this may pull one element into the peek slot.
func (p *Peekable[T]) IsNext(value T, equal func(T, T) bool) bool {
	v, ok := p.Peek()
	return ok && equal(v, value)
}

// All returns the remaining values as a sequence, starting with any value held in the peek slot.
// The sequence is single use and re-takes ownership: the Peekable must not be used again after
// calling All.
func (p *Peekable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer p.stop()
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop releases the wrapped sequence without consuming the rest of it. Safe to call more than
// once; only required when abandoning a Peekable before exhausting it.
func (p *Peekable[T]) Stop() {
	p.stop()
}
