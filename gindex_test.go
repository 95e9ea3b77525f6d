// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"errors"
	"reflect"
	"testing"
)

// Tests generalized index resolution over the various composite shapes.
func TestGetGeneralizedIndex(t *testing.T) {
	t.Parallel()

	typ, _ := hashingFixture(t)
	tests := []struct {
		path  []uint64
		index uint64
	}{
		{nil, 1},
		{[]uint64{0}, 8},
		{[]uint64{5}, 13},
		{[]uint64{1, 2}, 9<<2 + 2},
		{[]uint64{2, LengthIndex}, 21},
		{[]uint64{2, 0}, 10 << 5},
		{[]uint64{2, 7}, 10<<5 + 1},
		{[]uint64{2, 63}, 10<<5 + 15},
		{[]uint64{3, 2}, 11<<4 + 2},
		{[]uint64{3, 2, 1}, (11<<4+2)*2 + 1},
		{[]uint64{3, 2, 1, LengthIndex}, ((11<<4+2)*2+1)*2 + 1},
		{[]uint64{3, 2, 1, 39}, ((11<<4+2)*2+1)<<2 + 1},
		{[]uint64{4, 299}, 12<<2 + 1},
		{[]uint64{4, LengthIndex}, 25},
	}
	for _, tt := range tests {
		index, err := GetGeneralizedIndex(typ, tt.path...)
		if err != nil {
			t.Errorf("%v: failed to resolve: %v", tt.path, err)
			continue
		}
		if index != tt.index {
			t.Errorf("%v: index mismatch: have %d, want %d", tt.path, index, tt.index)
		}
	}
	fails := [][]uint64{
		{6},
		{0, 0},
		{1, 3},
		{2, 64},
		{5, 0},
		{1, LengthIndex},
		{4, 300},
	}
	for _, path := range fails {
		if _, err := GetGeneralizedIndex(typ, path...); !errors.Is(err, ErrInvalidGeneralizedIndex) {
			t.Errorf("%v: error mismatch: have %v, want %v", path, err, ErrInvalidGeneralizedIndex)
		}
	}
}

// Tests that paths too deep for 64 bit indices are rejected.
func TestGetGeneralizedIndexOverflow(t *testing.T) {
	t.Parallel()

	typ := Must(NewList(Must(NewList(Must(NewList(Uint64Type, 1<<40)), 1<<20)), 1<<10))
	if _, err := GetGeneralizedIndex(typ, 0, 0); err != nil {
		t.Fatalf("failed to resolve shallow path: %v", err)
	}
	if _, err := GetGeneralizedIndex(typ, 0, 0, 0); !errors.Is(err, ErrIndexOverflow) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrIndexOverflow)
	}
}

// Tests the index arithmetic helpers.
func TestGeneralizedIndexHelpers(t *testing.T) {
	t.Parallel()

	if GeneralizedIndexParent(13) != 6 || GeneralizedIndexSibling(13) != 12 || GeneralizedIndexChild(6, true) != 13 || GeneralizedIndexChild(6, false) != 12 {
		t.Errorf("family helpers mismatch")
	}
	if GetGeneralizedIndexLength(1) != 0 || GetGeneralizedIndexLength(13) != 3 || GetGeneralizedIndexLength(1<<63) != 63 {
		t.Errorf("depth helper mismatch")
	}
	if !GetGeneralizedIndexBit(13, 0) || GetGeneralizedIndexBit(13, 1) || !GetGeneralizedIndexBit(13, 2) {
		t.Errorf("bit helper mismatch")
	}
	if have := GetBranchIndices(13); !reflect.DeepEqual(have, []uint64{12, 7, 2}) {
		t.Errorf("branch mismatch: have %v, want [12 7 2]", have)
	}
	if have := GetPathIndices(13); !reflect.DeepEqual(have, []uint64{13, 6, 3}) {
		t.Errorf("path mismatch: have %v, want [13 6 3]", have)
	}
	if have := GetHelperIndices([]uint64{8, 9, 14}); !reflect.DeepEqual(have, []uint64{15, 6, 5}) {
		t.Errorf("helpers mismatch: have %v, want [15 6 5]", have)
	}
	if have, err := ConcatGeneralizedIndices(2, 3, 5); err != nil || have != 0b10_1_01 {
		t.Errorf("concat mismatch: have %b (%v), want %b", have, err, 0b10101)
	}
	if _, err := ConcatGeneralizedIndices(2, 0); !errors.Is(err, ErrInvalidGeneralizedIndex) {
		t.Errorf("concat error mismatch: have %v, want %v", err, ErrInvalidGeneralizedIndex)
	}
}

// Tests that concatenating the indices of nested paths matches resolving the
// path in one go.
func TestConcatMatchesNestedPath(t *testing.T) {
	t.Parallel()

	typ, _ := hashingFixture(t)
	outer, err := GetGeneralizedIndex(typ, 3, 2)
	if err != nil {
		t.Fatalf("failed to resolve outer path: %v", err)
	}
	elem := typ.(*ContainerType).Fields()[3].Type.(*ListType).Elem()
	inner, err := GetGeneralizedIndex(elem, 1, LengthIndex)
	if err != nil {
		t.Fatalf("failed to resolve inner path: %v", err)
	}
	full, err := GetGeneralizedIndex(typ, 3, 2, 1, LengthIndex)
	if err != nil {
		t.Fatalf("failed to resolve full path: %v", err)
	}
	if have, err := ConcatGeneralizedIndices(outer, inner); err != nil || have != full {
		t.Fatalf("concat mismatch: have %d (%v), want %d", have, err, full)
	}
}
