// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sentinel

import (
	"errors"
	"strconv"
)

var (
	// ErrOutOfRange is matched by every error returned from checked access.
	ErrOutOfRange = errors.New("sentinel: position out of range")

	// ErrCapacity is returned when decoded input holds more elements than
	// the capacity. Capacity overflow in New, FromSlice and Assign is a
	// programming error and panics instead.
	ErrCapacity = errors.New("sentinel: capacity exceeded")
)

// RangeError reports a checked access outside the live prefix.
type RangeError struct {
	// Pos is the requested position.
	Pos int
	// Len is the live length at the time of the access.
	Len int
}

func (e *RangeError) Error() string {
	if e.Pos < 0 {
		return "sentinel: at: pos (which is " + strconv.Itoa(e.Pos) + ") < 0"
	}
	return "sentinel: at: pos (which is " + strconv.Itoa(e.Pos) +
		") >= sentinel (which is " + strconv.Itoa(e.Len) + ")"
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
