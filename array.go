// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sentinel

import (
	"fmt"
	"iter"
	"unsafe"
)

// Array is a fixed-capacity sequence stored inline in S, with a runtime
// live length (the sentinel) that may be shorter than the capacity.
//
//	                -------------------------
//	New(42, 1337)   | 42 | 1337 | xxx | xxx |   S = [4]int
//	                -------------------------
//	                              ^^^^^^^^^ stale slots, never iterated
//
// Length-aware operations ([Array.Len], [Array.Slice], [Array.All],
// [Array.Backward], [Array.At]) observe only slots [0, Len()).
// Raw operations ([Array.Index], [Array.Set], [Array.Data]) reach the full
// capacity and ignore the live length.
//
// The zero value is an empty Array: live length 0, storage zeroed.
// Array is a value type; assignment copies the storage and the live length.
// It is not safe for concurrent mutation.
type Array[S Storage[T], T any] struct {
	buf S
	n   int
}

// New returns an Array holding elems in order, with live length len(elems).
// Panics if len(elems) exceeds the capacity of S.
func New[S Storage[T], T any](elems ...T) Array[S, T] {
	var a Array[S, T]
	a.Assign(elems...)
	return a
}

// FromSlice returns an Array holding a copy of src, with live length len(src).
// Only slice types are accepted: the source length is checked against the
// capacity before anything is copied. Panics if len(src) exceeds the
// capacity of S.
func FromSlice[S Storage[T], T any, R ~[]T](src R) Array[S, T] {
	var a Array[S, T]
	a.Assign(src...)
	return a
}

// Assign overwrites the first len(elems) slots and sets the live length to
// len(elems). Slots past the new live length keep their previous values.
// Panics if len(elems) exceeds the capacity.
func (a *Array[S, T]) Assign(elems ...T) {
	if len(elems) > len(a.buf) {
		panic(fmt.Sprintf("sentinel: %d elements exceed capacity %d", len(elems), len(a.buf)))
	}
	copy(a.storage(), elems)
	a.n = len(elems)
}

// Len returns the live length.
func (a *Array[S, T]) Len() int {
	return a.n
}

// Cap returns the fixed capacity N of S.
func (a *Array[S, T]) Cap() int {
	return len(a.buf)
}

// SetSentinel sets the live length to s without validation.
// The caller guarantees 0 <= s <= Cap(); stored values are not touched.
func (a *Array[S, T]) SetSentinel(s int) {
	a.n = s
}

// Slice returns the live prefix as a slice aliasing a's storage.
// Its length and capacity are both Len(), so appending to it reallocates
// instead of writing into stale slots.
func (a *Array[S, T]) Slice() []T {
	return a.storage()[:a.n:a.n]
}

// All returns an iterator over index/value pairs of the live prefix.
func (a *Array[S, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live prefix.
func (a *Array[S, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs of the live prefix,
// starting at the last live element.
func (a *Array[S, T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.n - 1; i >= 0; i-- {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// At returns the element at pos, or a *RangeError matching ErrOutOfRange
// if pos is outside [0, Len()).
func (a *Array[S, T]) At(pos int) (T, error) {
	if pos < 0 || pos >= a.n {
		var zero T
		return zero, &RangeError{Pos: pos, Len: a.n}
	}
	return a.buf[pos], nil
}

// AtPtr is the mutable form of At.
func (a *Array[S, T]) AtPtr(pos int) (*T, error) {
	if pos < 0 || pos >= a.n {
		return nil, &RangeError{Pos: pos, Len: a.n}
	}
	return &a.buf[pos], nil
}

// Front returns physical slot 0 regardless of the live length.
func (a *Array[S, T]) Front() T {
	return a.buf[0]
}

// Back returns the last live element.
// On an empty Array it returns the slot at the logical end, which is
// physical slot 0 and holds a stale or zero value.
func (a *Array[S, T]) Back() T {
	if a.n > 0 {
		return a.buf[a.n-1]
	}
	return a.buf[a.n]
}

// Index returns physical slot i, unchecked against the live length.
func (a *Array[S, T]) Index(i int) T {
	return a.buf[i]
}

// Set stores v in physical slot i, unchecked against the live length.
func (a *Array[S, T]) Set(i int, v T) {
	a.buf[i] = v
}

// Data returns a pointer to the inline storage.
func (a *Array[S, T]) Data() *S {
	return &a.buf
}

// String formats the live prefix like a slice.
func (a Array[S, T]) String() string {
	return fmt.Sprint(a.Slice())
}

// Format implements fmt.Formatter over the live prefix.
func (a Array[S, T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), a.Slice())
}

// storage views the whole inline buffer as a slice of length Cap().
// S is always [N]T, so its first element sits at its address.
func (a *Array[S, T]) storage() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf)), len(a.buf))
}
