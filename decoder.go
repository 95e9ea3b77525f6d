// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"

	"github.com/prysmaticlabs/go-bitfield"
)

// Decoding works on the byte range a value was assigned by its parent. Fixed
// types read their constant size from the start of the range; variable types
// own the whole range and must consume it completely, which the parent checks
// against its offsets.
//
// Every decode returns the value and the number of bytes it consumed. Errors
// abort the whole decode, any partially built value is dropped.

func (t *BooleanType) decode(buf []byte) (Value, uint32, error) {
	if len(buf) < 1 {
		return nil, 0, fmt.Errorf("%w: bool needs 1 byte, have 0", ErrBufferTooSmall)
	}
	// Only 1 reads as true, any other byte is false.
	return Bool(buf[0] == 1), 1, nil
}

func (t *UintType) decode(buf []byte) (Value, uint32, error) {
	size := t.bits / 8
	if len(buf) < size {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, t, size, len(buf))
	}
	return uintFromLittleEndian(buf[:size]), uint32(size), nil
}

func (t *VectorType) decode(buf []byte) (Value, uint32, error) {
	if t.elem.Fixed() {
		if uint64(len(buf)) < uint64(t.size) {
			return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, t, t.size, len(buf))
		}
		items, err := decodeStaticElements(t.elem, buf[:t.size], int(t.count))
		if err != nil {
			return nil, 0, err
		}
		return items, t.size, nil
	}
	if uint64(len(buf)) < t.count*BytesPerLengthOffset {
		return nil, 0, fmt.Errorf("%w: %s needs %d offset bytes, have %d", ErrBufferTooSmall, t, t.count*BytesPerLengthOffset, len(buf))
	}
	items, err := decodeDynamicElements(t.elem, buf, int(t.count))
	if err != nil {
		return nil, 0, err
	}
	return items, uint32(len(buf)), nil
}

func (t *ListType) decode(buf []byte) (Value, uint32, error) {
	if t.elem.Fixed() {
		size := uint64(t.elem.FixedSize())
		if uint64(len(buf))%size != 0 {
			return nil, 0, fmt.Errorf("%w: %d bytes of %d byte items", ErrDynamicStaticsIndivisible, len(buf), size)
		}
		n := uint64(len(buf)) / size
		if n > t.limit {
			return nil, 0, fmt.Errorf("%w: %s with %d items", ErrCapacityExceeded, t, n)
		}
		items, err := decodeStaticElements(t.elem, buf, int(n))
		if err != nil {
			return nil, 0, err
		}
		return items, uint32(len(buf)), nil
	}
	if len(buf) == 0 {
		return Sequence{}, 0, nil
	}
	if len(buf) < BytesPerLengthOffset {
		return nil, 0, fmt.Errorf("%w: %s needs %d offset bytes, have %d", ErrBufferTooSmall, t, BytesPerLengthOffset, len(buf))
	}
	first := binary.LittleEndian.Uint32(buf)
	if first == 0 || first%BytesPerLengthOffset != 0 {
		return nil, 0, fmt.Errorf("%w: first offset %d", ErrBadCounterOffset, first)
	}
	if uint64(first) > uint64(len(buf)) {
		return nil, 0, fmt.Errorf("%w: first offset %d, %d bytes", ErrOffsetOutOfRange, first, len(buf))
	}
	n := uint64(first / BytesPerLengthOffset)
	if n > t.limit {
		return nil, 0, fmt.Errorf("%w: %s with %d items", ErrCapacityExceeded, t, n)
	}
	items, err := decodeDynamicElements(t.elem, buf, int(n))
	if err != nil {
		return nil, 0, err
	}
	return items, uint32(len(buf)), nil
}

// decodeStaticElements splits buf into n equally sized items.
func decodeStaticElements(elem Type, buf []byte, n int) (Value, error) {
	if isByte(elem) {
		return append(Bytes{}, buf...), nil
	}
	var (
		size  = int(elem.FixedSize())
		items = make(Sequence, n)
	)
	for i := 0; i < n; i++ {
		item, _, err := elem.decode(buf[i*size : (i+1)*size])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

// decodeDynamicElements reads a table of n offsets from the start of buf and
// decodes the items between them, the last one extending to the end of buf.
func decodeDynamicElements(elem Type, buf []byte, n int) (Value, error) {
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(buf[i*BytesPerLengthOffset:])
	}
	if n > 0 && offsets[0] != uint32(n*BytesPerLengthOffset) {
		return nil, fmt.Errorf("%w: first offset %d, offset table ends at %d", ErrOffsetGap, offsets[0], n*BytesPerLengthOffset)
	}
	items := make(Sequence, n)
	for i := range offsets {
		start, end, err := offsetRange(offsets, i, len(buf))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		item, err := decodeSlot(elem, buf[start:end])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

// offsetRange validates the i-th offset against its successor (or the end of
// the enclosing value) and returns the byte range it designates.
func offsetRange(offsets []uint32, i int, size int) (uint32, uint32, error) {
	start, end := offsets[i], uint32(size)
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	if uint64(start) > uint64(size) {
		return 0, 0, fmt.Errorf("%w: offset %d, %d bytes", ErrOffsetOutOfRange, start, size)
	}
	if uint64(end) > uint64(size) {
		return 0, 0, fmt.Errorf("%w: offset %d, %d bytes", ErrOffsetOutOfRange, end, size)
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: offset %d after %d", ErrOffsetRegression, end, start)
	}
	return start, end, nil
}

// decodeSlot decodes a variable item that must consume its entire slot.
func decodeSlot(t Type, slot []byte) (Value, error) {
	v, n, err := t.decode(slot)
	if err != nil {
		return nil, err
	}
	if int(n) != len(slot) {
		return nil, fmt.Errorf("%w: %s consumed %d of %d bytes", ErrOffsetGap, t, n, len(slot))
	}
	return v, nil
}

func (t *BitvectorType) decode(buf []byte) (Value, uint32, error) {
	size := t.FixedSize()
	if uint64(len(buf)) < uint64(size) {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, t, size, len(buf))
	}
	// Padding bits past the length are ignored.
	bits := make(Bits, t.bits)
	for i := range bits {
		bits[i] = buf[i/8]&(1<<(i%8)) != 0
	}
	return bits, size, nil
}

func (t *BitlistType) decode(buf []byte) (Value, uint32, error) {
	if len(buf) == 0 {
		return nil, 0, fmt.Errorf("%w: length bit missing", ErrMalformedBitlist)
	}
	if buf[len(buf)-1] == 0 {
		return nil, 0, fmt.Errorf("%w: trailing zero byte", ErrMalformedBitlist)
	}
	if uint64(len(buf)) > t.limit/8+1 {
		return nil, 0, fmt.Errorf("%w: %d bytes for %s", ErrMalformedBitlist, len(buf), t)
	}
	list := bitfield.Bitlist(buf)

	n := list.Len()
	if n > t.limit {
		return nil, 0, fmt.Errorf("%w: length bit at %d, %s", ErrMalformedBitlist, n, t)
	}
	bits := make(Bits, n)
	for i := range bits {
		bits[i] = list.BitAt(uint64(i))
	}
	return bits, uint32(len(buf)), nil
}

func (t *UnionType) decode(buf []byte) (Value, uint32, error) {
	if len(buf) < 1 {
		return nil, 0, fmt.Errorf("%w: union needs a selector byte", ErrBufferTooSmall)
	}
	selector := buf[0]
	if selector >= maxUnionVariants || int(selector) >= len(t.variants) {
		return nil, 0, fmt.Errorf("%w: selector %d, %d variants", ErrUnrecognizedSelector, selector, len(t.variants))
	}
	variant := t.variants[selector]
	if variant == nil {
		if selector != 0 {
			return nil, 0, fmt.Errorf("%w: none at selector %d", ErrUnrecognizedSelector, selector)
		}
		return Selection{}, 1, nil
	}
	v, n, err := variant.decode(buf[1:])
	if err != nil {
		return nil, 0, fmt.Errorf("selector %d: %w", selector, err)
	}
	return Selection{Selector: selector, Value: v}, 1 + n, nil
}

func (t *ContainerType) decode(buf []byte) (Value, uint32, error) {
	if uint64(len(buf)) < uint64(t.size) {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, t, t.size, len(buf))
	}
	var (
		values  = make([]Value, len(t.schema.Fields))
		dynamic []int    // Field indices of the dynamic fields
		offsets []uint32 // Offsets of the dynamic fields
		pos     uint32
	)
	// Decode all the static fields and collect the offsets of the dynamic ones
	for i, field := range t.schema.Fields {
		size := field.Type.FixedSize()
		if field.Type.Fixed() {
			v, _, err := field.Type.decode(buf[pos : pos+size])
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", field.Name, err)
			}
			values[i] = v
		} else {
			dynamic = append(dynamic, i)
			offsets = append(offsets, binary.LittleEndian.Uint32(buf[pos:]))
		}
		pos += size
	}
	consumed := t.size
	if len(dynamic) > 0 {
		if offsets[0] != t.size {
			if uint64(offsets[0]) > uint64(len(buf)) {
				return nil, 0, fmt.Errorf("field %q: %w: offset %d, %d bytes", t.schema.Fields[dynamic[0]].Name, ErrOffsetOutOfRange, offsets[0], len(buf))
			}
			return nil, 0, fmt.Errorf("field %q: %w: first offset %d, fixed area ends at %d", t.schema.Fields[dynamic[0]].Name, ErrOffsetGap, offsets[0], t.size)
		}
		for j, i := range dynamic {
			field := t.schema.Fields[i]

			start, end, err := offsetRange(offsets, j, len(buf))
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", field.Name, err)
			}
			v, err := decodeSlot(field.Type, buf[start:end])
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", field.Name, err)
			}
			values[i] = v
		}
		consumed = uint32(len(buf))
	}
	// Everything decoded, assemble the container through its accessors
	obj := t.schema.New()
	for i, field := range t.schema.Fields {
		if err := field.Set(obj, values[i]); err != nil {
			return nil, 0, fmt.Errorf("field %q: %w", field.Name, err)
		}
	}
	return obj, consumed, nil
}
