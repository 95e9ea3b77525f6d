// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"bytes"
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

// Value is the in-memory form of an SSZ value. Depending on the descriptor it
// is checked against, it holds one of:
//
//   - Bool for booleans
//   - Uint for integers of any width
//   - Sequence (or Bytes for uint8 elements) for vectors and lists
//   - Bits for bitvectors and bitlists
//   - Selection for unions
//   - *Record, or whatever the container's schema constructs, for containers
//
// Values carry no reference to their descriptor.
type Value = any

// Bool is a boolean value.
type Bool bool

// Bytes is a compact sequence of uint8 values, used for byte vectors and lists.
type Bytes []byte

// Sequence is the element list of a vector or list.
type Sequence []Value

// Bits is the content of a bitvector or bitlist.
type Bits []bool

// Selection is a union value: the selected variant and its content, nil when the
// selected variant is none.
type Selection struct {
	Selector uint8
	Value    Value
}

// Record is the value of a container declared without a host type. The field
// values are stored in declaration order; nil entries read as the field type's
// default value.
type Record struct {
	Values []Value
}

// Uint is an unsigned integer of a fixed wire width between 8 and 256 bits.
type Uint struct {
	bits uint16
	val  uint256.Int
}

// NewUint8 creates an 8 bit integer value.
func NewUint8(v uint8) Uint { return newUint(8, uint64(v)) }

// NewUint16 creates a 16 bit integer value.
func NewUint16(v uint16) Uint { return newUint(16, uint64(v)) }

// NewUint32 creates a 32 bit integer value.
func NewUint32(v uint32) Uint { return newUint(32, uint64(v)) }

// NewUint64 creates a 64 bit integer value.
func NewUint64(v uint64) Uint { return newUint(64, v) }

func newUint(bits uint16, v uint64) Uint {
	u := Uint{bits: bits}
	u.val.SetUint64(v)
	return u
}

// NewUintValue creates an integer value of the given width, rejecting widths
// outside the supported set and magnitudes that do not fit.
func NewUintValue(bits int, v *uint256.Int) (Uint, error) {
	if _, err := NewUint(bits); err != nil {
		return Uint{}, err
	}
	u := Uint{bits: uint16(bits)}
	if v != nil {
		if v.BitLen() > bits {
			return Uint{}, fmt.Errorf("%w: %s does not fit uint%d", ErrValueMismatch, v.Dec(), bits)
		}
		u.val.Set(v)
	}
	return u, nil
}

// NewUintFromBig creates an integer value of the given width from a big integer.
func NewUintFromBig(bits int, v *big.Int) (Uint, error) {
	if v == nil {
		return NewUintValue(bits, nil)
	}
	if v.Sign() < 0 {
		return Uint{}, fmt.Errorf("%w: negative integer %s", ErrValueMismatch, v)
	}
	x, overflow := uint256.FromBig(v)
	if overflow {
		return Uint{}, fmt.Errorf("%w: %s does not fit uint256", ErrValueMismatch, v)
	}
	return NewUintValue(bits, x)
}

// Bits returns the wire width of the integer.
func (u Uint) Bits() int { return int(u.bits) }

// Uint8 converts the value to a uint8, failing if it does not fit.
func (u Uint) Uint8() (uint8, error) {
	v, err := u.narrow(math.MaxUint8)
	return uint8(v), err
}

// Uint16 converts the value to a uint16, failing if it does not fit.
func (u Uint) Uint16() (uint16, error) {
	v, err := u.narrow(math.MaxUint16)
	return uint16(v), err
}

// Uint32 converts the value to a uint32, failing if it does not fit.
func (u Uint) Uint32() (uint32, error) {
	v, err := u.narrow(math.MaxUint32)
	return uint32(v), err
}

// Uint64 converts the value to a uint64, failing if it does not fit.
func (u Uint) Uint64() (uint64, error) {
	return u.narrow(math.MaxUint64)
}

func (u Uint) narrow(max uint64) (uint64, error) {
	if !u.val.IsUint64() || u.val.Uint64() > max {
		return 0, fmt.Errorf("%w: %s overflows %d", ErrValueMismatch, u.val.Dec(), max)
	}
	return u.val.Uint64(), nil
}

// Int returns a copy of the magnitude.
func (u Uint) Int() *uint256.Int {
	return new(uint256.Int).Set(&u.val)
}

// Big returns the magnitude as a big integer.
func (u Uint) Big() *big.Int {
	return u.val.ToBig()
}

// String implements fmt.Stringer.
func (u Uint) String() string {
	return u.val.Dec()
}

// putLittleEndian writes the integer into dst as bits/8 little endian bytes.
func (u Uint) putLittleEndian(dst []byte) {
	be := u.val.Bytes32()
	for i := 0; i < int(u.bits)/8; i++ {
		dst[i] = be[31-i]
	}
}

// uintFromLittleEndian parses a little endian integer of len(src) bytes.
func uintFromLittleEndian(src []byte) Uint {
	be := make([]byte, len(src))
	for i := range src {
		be[len(src)-1-i] = src[i]
	}
	u := Uint{bits: uint16(8 * len(src))}
	u.val.SetBytes(be)
	return u
}

// Default returns the zero value of a type.
func Default(t Type) Value {
	switch t := t.(type) {
	case *BooleanType:
		return Bool(false)
	case *UintType:
		return Uint{bits: uint16(t.bits)}
	case *VectorType:
		if isByte(t.elem) {
			return make(Bytes, t.count)
		}
		seq := make(Sequence, t.count)
		for i := range seq {
			seq[i] = Default(t.elem)
		}
		return seq
	case *ListType:
		if isByte(t.elem) {
			return Bytes{}
		}
		return Sequence{}
	case *BitvectorType:
		return make(Bits, t.bits)
	case *BitlistType:
		return Bits{}
	case *UnionType:
		if t.variants[0] == nil {
			return Selection{}
		}
		return Selection{Value: Default(t.variants[0])}
	case *ContainerType:
		return t.schema.New()
	default:
		panic(fmt.Sprintf("ssz: unknown type %T", t))
	}
}

// Equal reports whether two values are the same under the given type. Values
// that do not match the type are never equal.
func Equal(t Type, a, b Value) bool {
	switch t := t.(type) {
	case *BooleanType:
		x, ok1 := a.(Bool)
		y, ok2 := b.(Bool)
		return ok1 && ok2 && x == y

	case *UintType:
		x, ok1 := a.(Uint)
		y, ok2 := b.(Uint)
		return ok1 && ok2 && x.bits == y.bits && x.val.Eq(&y.val)

	case *VectorType:
		return equalElements(t.elem, a, b)

	case *ListType:
		return equalElements(t.elem, a, b)

	case *BitvectorType, *BitlistType:
		x, ok1 := a.(Bits)
		y, ok2 := b.(Bits)
		if !ok1 || !ok2 || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true

	case *UnionType:
		x, ok1 := a.(Selection)
		y, ok2 := b.(Selection)
		if !ok1 || !ok2 || x.Selector != y.Selector || int(x.Selector) >= len(t.variants) {
			return false
		}
		variant := t.variants[x.Selector]
		if variant == nil {
			return x.Value == nil && y.Value == nil
		}
		return Equal(variant, x.Value, y.Value)

	case *ContainerType:
		for _, field := range t.schema.Fields {
			x, err := field.Get(a)
			if err != nil {
				return false
			}
			y, err := field.Get(b)
			if err != nil {
				return false
			}
			if !Equal(field.Type, x, y) {
				return false
			}
		}
		return true
	}
	return false
}

func equalElements(elem Type, a, b Value) bool {
	if x, ok := a.(Bytes); ok {
		if y, ok := b.(Bytes); ok {
			return bytes.Equal(x, y)
		}
	}
	x, err := elements(elem, a)
	if err != nil {
		return false
	}
	y, err := elements(elem, b)
	if err != nil || len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(elem, x[i], y[i]) {
			return false
		}
	}
	return true
}

// elements returns the items of a vector or list value as a sequence, expanding
// byte blobs if needed.
func elements(elem Type, v Value) (Sequence, error) {
	switch v := v.(type) {
	case Sequence:
		return v, nil
	case Bytes:
		if !isByte(elem) {
			return nil, fmt.Errorf("%w: bytes for elements of %s", ErrValueMismatch, elem)
		}
		seq := make(Sequence, len(v))
		for i, b := range v {
			seq[i] = NewUint8(b)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: %T for sequence of %s", ErrValueMismatch, v, elem)
	}
}

// itemCount returns the number of items in a vector or list value.
func itemCount(v Value) (int, error) {
	switch v := v.(type) {
	case Sequence:
		return len(v), nil
	case Bytes:
		return len(v), nil
	default:
		return 0, fmt.Errorf("%w: %T is not a sequence", ErrValueMismatch, v)
	}
}

// asBits returns the value as a bit sequence.
func asBits(v Value) (Bits, error) {
	bits, ok := v.(Bits)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a bit sequence", ErrValueMismatch, v)
	}
	return bits, nil
}

// selection returns the value as a union selection, validating it against the
// union's variants.
func (t *UnionType) selection(v Value) (Selection, error) {
	sel, ok := v.(Selection)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %T is not a union selection", ErrValueMismatch, v)
	}
	if int(sel.Selector) >= len(t.variants) {
		return Selection{}, fmt.Errorf("%w: selector %d, %d variants", ErrUnrecognizedSelector, sel.Selector, len(t.variants))
	}
	if t.variants[sel.Selector] == nil && sel.Value != nil {
		return Selection{}, fmt.Errorf("%w: selector %d is none but holds %T", ErrUnrecognizedSelector, sel.Selector, sel.Value)
	}
	if t.variants[sel.Selector] != nil && sel.Value == nil {
		return Selection{}, fmt.Errorf("%w: selector %d of %s holds no value", ErrValueMismatch, sel.Selector, t.variants[sel.Selector])
	}
	return sel, nil
}

// values reads every field of a container value through the schema accessors.
func (t *ContainerType) values(v Value) ([]Value, error) {
	values := make([]Value, len(t.schema.Fields))
	for i, field := range t.schema.Fields {
		fv, err := field.Get(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}
		values[i] = fv
	}
	return values, nil
}
