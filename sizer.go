// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math"
)

// checkSize converts an accumulated size into the 32 bit domain of offsets.
func checkSize(t Type, size uint64) (uint32, error) {
	if size > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s of %d bytes", ErrMaxLengthExceeded, t, size)
	}
	return uint32(size), nil
}

func (t *BooleanType) Size(v Value) (uint32, error) {
	if _, ok := v.(Bool); !ok {
		return 0, fmt.Errorf("%w: %T for bool", ErrValueMismatch, v)
	}
	return 1, nil
}

func (t *UintType) Size(v Value) (uint32, error) {
	u, ok := v.(Uint)
	if !ok {
		return 0, fmt.Errorf("%w: %T for %s", ErrValueMismatch, v, t)
	}
	if int(u.bits) != t.bits {
		return 0, fmt.Errorf("%w: uint%d value for %s", ErrValueMismatch, u.bits, t)
	}
	return t.FixedSize(), nil
}

func (t *VectorType) Size(v Value) (uint32, error) {
	n, err := itemCount(v)
	if err != nil {
		return 0, err
	}
	if uint64(n) != t.count {
		return 0, fmt.Errorf("%w: %s with %d items", ErrCountMismatch, t, n)
	}
	size, err := sizeElements(t.elem, v)
	if err != nil {
		return 0, err
	}
	return checkSize(t, size)
}

func (t *ListType) Size(v Value) (uint32, error) {
	n, err := itemCount(v)
	if err != nil {
		return 0, err
	}
	if uint64(n) > t.limit {
		return 0, fmt.Errorf("%w: %s with %d items", ErrCapacityExceeded, t, n)
	}
	size, err := sizeElements(t.elem, v)
	if err != nil {
		return 0, err
	}
	return checkSize(t, size)
}

// sizeElements sums the encoded sizes of the items of a vector or list, adding
// an offset slot for each variable length item.
func sizeElements(elem Type, v Value) (uint64, error) {
	if blob, ok := v.(Bytes); ok {
		if !isByte(elem) {
			return 0, fmt.Errorf("%w: bytes for elements of %s", ErrValueMismatch, elem)
		}
		return uint64(len(blob)), nil
	}
	items := v.(Sequence)

	var size uint64
	for i, item := range items {
		s, err := elem.Size(item)
		if err != nil {
			return 0, fmt.Errorf("index %d: %w", i, err)
		}
		size += uint64(s)
		if !elem.Fixed() {
			size += BytesPerLengthOffset
		}
	}
	return size, nil
}

func (t *BitvectorType) Size(v Value) (uint32, error) {
	bits, err := asBits(v)
	if err != nil {
		return 0, err
	}
	if uint64(len(bits)) != t.bits {
		return 0, fmt.Errorf("%w: %s with %d bits", ErrCountMismatch, t, len(bits))
	}
	return t.FixedSize(), nil
}

func (t *BitlistType) Size(v Value) (uint32, error) {
	bits, err := asBits(v)
	if err != nil {
		return 0, err
	}
	if uint64(len(bits)) > t.limit {
		return 0, fmt.Errorf("%w: %s with %d bits", ErrCapacityExceeded, t, len(bits))
	}
	return checkSize(t, uint64(len(bits))/8+1)
}

func (t *UnionType) Size(v Value) (uint32, error) {
	sel, err := t.selection(v)
	if err != nil {
		return 0, err
	}
	variant := t.variants[sel.Selector]
	if variant == nil {
		return 1, nil
	}
	size, err := variant.Size(sel.Value)
	if err != nil {
		return 0, fmt.Errorf("selector %d: %w", sel.Selector, err)
	}
	return checkSize(t, 1+uint64(size))
}

func (t *ContainerType) Size(v Value) (uint32, error) {
	values, err := t.values(v)
	if err != nil {
		return 0, err
	}
	size := uint64(t.size)
	for i, field := range t.schema.Fields {
		s, err := field.Type.Size(values[i])
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", field.Name, err)
		}
		if !field.Type.Fixed() {
			size += uint64(s)
		}
	}
	return checkSize(t, size)
}
