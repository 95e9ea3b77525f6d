// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"

	"github.com/prysmaticlabs/go-bitfield"
)

// Encoder writes the SSZ encoding of values into a caller owned buffer. It has
// the following behaviors:
//
//  1. The encoder never grows its buffer. Writes past the end halt encoding with
//     ErrBufferTooSmall; callers are expected to size the buffer up front.
//
//  2. The encoder does not return errors from individual encoding methods. User
//     code can be denser if error checking is done at the end. Internally, of
//     course, an error will halt all future output operations.
//
//  3. The offsets of variable length items are written as placeholders during
//     the fixed pass and backfilled when the items themselves are appended.
type Encoder struct {
	buf []byte // Destination buffer, never resized
	pos uint32 // Write cursor within buf
	err error  // Any error to halt future encoding calls
}

// write appends a blob to the output.
func (enc *Encoder) write(blob []byte) {
	if enc.err != nil {
		return
	}
	if uint64(len(enc.buf))-uint64(enc.pos) < uint64(len(blob)) {
		enc.err = fmt.Errorf("%w: writing %d bytes at %d of %d", ErrBufferTooSmall, len(blob), enc.pos, len(enc.buf))
		return
	}
	copy(enc.buf[enc.pos:], blob)
	enc.pos += uint32(len(blob))
}

// reserve writes an offset placeholder, returning its position for backfilling.
func (enc *Encoder) reserve() uint32 {
	pos := enc.pos
	enc.write([]byte{0, 0, 0, 0})
	return pos
}

// backfill sets the offset placeholder at slot to the current write cursor,
// measured from the start of the enclosing value.
func (enc *Encoder) backfill(slot uint32, start uint32) {
	if enc.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(enc.buf[slot:], enc.pos-start)
}

// fail halts encoding with the given error, unless one was already hit.
func (enc *Encoder) fail(err error) {
	if enc.err == nil {
		enc.err = err
	}
}

// annotate prefixes a freshly hit error with the location it was hit at.
func (enc *Encoder) annotate(format string, args ...any) {
	if enc.err != nil {
		enc.err = fmt.Errorf(format+": %w", append(args, enc.err)...)
	}
}

func (t *BooleanType) encode(enc *Encoder, v Value) {
	b, ok := v.(Bool)
	if !ok {
		enc.fail(fmt.Errorf("%w: %T for bool", ErrValueMismatch, v))
		return
	}
	if b {
		enc.write([]byte{1})
	} else {
		enc.write([]byte{0})
	}
}

func (t *UintType) encode(enc *Encoder, v Value) {
	u, ok := v.(Uint)
	if !ok || int(u.bits) != t.bits {
		enc.fail(fmt.Errorf("%w: %v for %s", ErrValueMismatch, v, t))
		return
	}
	var buf [32]byte
	u.putLittleEndian(buf[:])
	enc.write(buf[:t.bits/8])
}

func (t *VectorType) encode(enc *Encoder, v Value) {
	n, err := itemCount(v)
	if err != nil {
		enc.fail(err)
		return
	}
	if uint64(n) != t.count {
		enc.fail(fmt.Errorf("%w: %s with %d items", ErrCountMismatch, t, n))
		return
	}
	encodeElements(enc, t.elem, v)
}

func (t *ListType) encode(enc *Encoder, v Value) {
	n, err := itemCount(v)
	if err != nil {
		enc.fail(err)
		return
	}
	if uint64(n) > t.limit {
		enc.fail(fmt.Errorf("%w: %s with %d items", ErrCapacityExceeded, t, n))
		return
	}
	encodeElements(enc, t.elem, v)
}

// encodeElements writes the items of a vector or list. Fixed items are simply
// concatenated, variable ones are preceded by a table of offsets.
func encodeElements(enc *Encoder, elem Type, v Value) {
	if blob, ok := v.(Bytes); ok {
		if !isByte(elem) {
			enc.fail(fmt.Errorf("%w: bytes for elements of %s", ErrValueMismatch, elem))
			return
		}
		enc.write(blob)
		return
	}
	items := v.(Sequence)
	if elem.Fixed() {
		for i, item := range items {
			elem.encode(enc, item)
			if enc.err != nil {
				enc.annotate("index %d", i)
				return
			}
		}
		return
	}
	start := enc.pos
	slots := make([]uint32, len(items))
	for i := range items {
		slots[i] = enc.reserve()
	}
	for i, item := range items {
		enc.backfill(slots[i], start)
		elem.encode(enc, item)
		if enc.err != nil {
			enc.annotate("index %d", i)
			return
		}
	}
}

func (t *BitvectorType) encode(enc *Encoder, v Value) {
	bits, err := asBits(v)
	if err != nil {
		enc.fail(err)
		return
	}
	if uint64(len(bits)) != t.bits {
		enc.fail(fmt.Errorf("%w: %s with %d bits", ErrCountMismatch, t, len(bits)))
		return
	}
	blob := make([]byte, t.FixedSize())
	for i, bit := range bits {
		if bit {
			blob[i/8] |= 1 << (i % 8)
		}
	}
	enc.write(blob)
}

func (t *BitlistType) encode(enc *Encoder, v Value) {
	bits, err := asBits(v)
	if err != nil {
		enc.fail(err)
		return
	}
	if uint64(len(bits)) > t.limit {
		enc.fail(fmt.Errorf("%w: %s with %d bits", ErrCapacityExceeded, t, len(bits)))
		return
	}
	// NewBitlist already carries the length bit past the last data bit
	list := bitfield.NewBitlist(uint64(len(bits)))
	for i, bit := range bits {
		if bit {
			list.SetBitAt(uint64(i), true)
		}
	}
	enc.write(list)
}

func (t *UnionType) encode(enc *Encoder, v Value) {
	sel, err := t.selection(v)
	if err != nil {
		enc.fail(err)
		return
	}
	enc.write([]byte{sel.Selector})

	if variant := t.variants[sel.Selector]; variant != nil {
		variant.encode(enc, sel.Value)
		enc.annotate("selector %d", sel.Selector)
	}
}

func (t *ContainerType) encode(enc *Encoder, v Value) {
	values, err := t.values(v)
	if err != nil {
		enc.fail(err)
		return
	}
	// Write all the fixed fields and reserve the offsets of the dynamic ones
	var (
		start = enc.pos
		slots = make([]uint32, len(values))
	)
	for i, field := range t.schema.Fields {
		if field.Type.Fixed() {
			field.Type.encode(enc, values[i])
			if enc.err != nil {
				enc.annotate("field %q", field.Name)
				return
			}
			continue
		}
		slots[i] = enc.reserve()
	}
	// Append the dynamic fields, pointing their offsets at them
	for i, field := range t.schema.Fields {
		if field.Type.Fixed() {
			continue
		}
		enc.backfill(slots[i], start)
		field.Type.encode(enc, values[i])
		if enc.err != nil {
			enc.annotate("field %q", field.Name)
			return
		}
	}
}
