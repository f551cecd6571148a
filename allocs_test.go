// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sentinel_test

import (
	"testing"

	"code.hybscloud.com/sentinel"
)

func TestAllocationsAccess(t *testing.T) {
	a := sentinel.New[[64]int](1, 2, 3)
	src := []int{4, 5, 6, 7}
	var sink int

	allocs := testing.AllocsPerRun(100, func() {
		a.Assign(src...)
	})
	if allocs > 0 {
		t.Errorf("Assign allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		v, _ := a.At(2)
		sink += v + a.Len() + a.Index(10) + a.Back()
	})
	if allocs > 0 {
		t.Errorf("At/Len/Index/Back allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		for _, v := range a.Slice() {
			sink += v
		}
	})
	if allocs > 0 {
		t.Errorf("Slice allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		a.SetSentinel(2)
		a.SetSentinel(4)
	})
	if allocs > 0 {
		t.Errorf("SetSentinel allocs = %v; want 0", allocs)
	}
	_ = sink
}

func TestAllocationsCopyByValue(t *testing.T) {
	a := sentinel.New[[16]float64](0.5, 1.5)
	var b sentinel.Array[[16]float64, float64]

	allocs := testing.AllocsPerRun(100, func() {
		b = a
	})
	if allocs > 0 {
		t.Errorf("copy allocs = %v; want 0", allocs)
	}
	if b.Len() != 2 {
		t.Fatalf("b.Len() = %d; want 2", b.Len())
	}
}
