// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sentinel provides a fixed-capacity array with a variable live length.
//
// The core type [Array] stores its elements inline in a Go array type S
// (for example [4]int) and tracks how many leading slots are live. The
// capacity is part of the type, so an Array never allocates and can be
// copied by value into worker goroutines, ring slots or shared-memory
// records without pointer chasing.
//
//	a := sentinel.New[[4]int](42, 1337)
//	a.Len()  // 2
//	a.Cap()  // 4
//	for _, v := range a.All() {
//		// 42, 1337
//	}
//
// # Live Length
//
// The live length (the sentinel) is the only thing length-aware operations
// look at. The live region is always a prefix starting at physical slot 0.
//
//   - [Array.Len]: Live length
//   - [Array.Cap]: Fixed capacity of S
//   - [Array.Slice]: Live prefix as a slice aliasing the storage (len == cap == Len)
//   - [Array.All], [Array.Values]: Forward iteration over the live prefix
//   - [Array.Backward]: Reverse iteration starting at the last live element
//   - [Array.SetSentinel]: Set the live length, unchecked
//
// # Construction
//
//   - Zero value: empty Array (live length 0)
//   - [New]: From an initializer sequence
//   - [FromSlice]: From a slice; the length is checked before copying
//   - [Array.Assign]: Overwrite contents and live length
//
// Exceeding the capacity in any of these is a programming error and panics.
// Stale slots past the live length keep whatever they held before.
//
// # Access
//
// Two tiers, deliberately separate:
//
//   - [Array.At], [Array.AtPtr]: Checked against the live length; return a
//     [*RangeError] matching [ErrOutOfRange]
//   - [Array.Index], [Array.Set], [Array.Data], [Array.Front]: Raw physical
//     slots, unchecked against the live length
//   - [Array.Back]: Last live element; on an empty Array, the slot at the
//     logical end (physical slot 0)
//
// # Encoding
//
// [Array] implements json.Marshaler, json.Unmarshaler, yaml.Marshaler and
// yaml.Unmarshaler over the live prefix. Decoding more elements than the
// capacity returns an error matching [ErrCapacity].
package sentinel
