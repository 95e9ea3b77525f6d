// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math"
	"strings"
)

// BytesPerLengthOffset is the size of the offsets used to reference the dynamic
// part of variable length items.
const BytesPerLengthOffset = 4

// BytesPerChunk is the size of a Merkle tree leaf.
const BytesPerChunk = 32

// maxUnionVariants is the number of selector values a union may use, the top bit
// of the selector byte being reserved.
const maxUnionVariants = 128

// Kind enumerates the shapes a type descriptor can have.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindUint
	KindVector
	KindList
	KindBitvector
	KindBitlist
	KindUnion
	KindContainer
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindUint:
		return "uint"
	case KindVector:
		return "vector"
	case KindList:
		return "list"
	case KindBitvector:
		return "bitvector"
	case KindBitlist:
		return "bitlist"
	case KindUnion:
		return "union"
	case KindContainer:
		return "container"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type is an immutable description of one SSZ shape. Every method is safe for
// concurrent use; a type can be shared freely once constructed.
//
// The set of implementations is closed: *BooleanType, *UintType, *VectorType,
// *ListType, *BitvectorType, *BitlistType, *UnionType and *ContainerType.
type Type interface {
	// Kind returns the shape of the type.
	Kind() Kind

	// String returns the canonical descriptor string of the type.
	String() string

	// Fixed reports whether every value of the type encodes to the same number
	// of bytes.
	Fixed() bool

	// FixedSize returns the encoded size of a fixed type, or the size of the
	// offset slot a variable type occupies within its parent.
	FixedSize() uint32

	// Size returns the encoded size of a value, validating its shape.
	Size(v Value) (uint32, error)

	// ChunkCount returns the number of 32 byte leaves the value's data tree is
	// padded to before merkleization.
	ChunkCount() uint64

	encode(enc *Encoder, v Value)
	decode(buf []byte) (Value, uint32, error)
}

// BooleanType is the descriptor of a single byte boolean.
type BooleanType struct{}

// UintType is the descriptor of a little endian unsigned integer.
type UintType struct {
	bits int
}

// VectorType is the descriptor of a fixed count sequence of a single type.
type VectorType struct {
	elem   Type
	count  uint64
	size   uint32 // Encoded size if the elements are fixed
	chunks uint64
}

// ListType is the descriptor of a capacity bounded sequence of a single type.
type ListType struct {
	elem   Type
	limit  uint64
	chunks uint64
}

// BitvectorType is the descriptor of a fixed length packed bit sequence.
type BitvectorType struct {
	bits uint64
}

// BitlistType is the descriptor of a capacity bounded packed bit sequence.
type BitlistType struct {
	limit uint64
}

// UnionType is the descriptor of a tagged sum type. A nil variant is the "none"
// option, only permitted at selector 0.
type UnionType struct {
	variants []Type
}

// ContainerType is the descriptor of an ordered collection of named fields.
type ContainerType struct {
	schema *Schema
	index  map[string]int
	fixed  bool
	size   uint32 // Size of the fixed area (including offset slots)
}

// Predeclared descriptors of the basic types.
var (
	BoolType    = &BooleanType{}
	Uint8Type   = &UintType{bits: 8}
	Uint16Type  = &UintType{bits: 16}
	Uint32Type  = &UintType{bits: 32}
	Uint64Type  = &UintType{bits: 64}
	Uint128Type = &UintType{bits: 128}
	Uint256Type = &UintType{bits: 256}
)

// NewUint returns the descriptor of an unsigned integer of the given width.
func NewUint(bits int) (*UintType, error) {
	switch bits {
	case 8:
		return Uint8Type, nil
	case 16:
		return Uint16Type, nil
	case 32:
		return Uint32Type, nil
	case 64:
		return Uint64Type, nil
	case 128:
		return Uint128Type, nil
	case 256:
		return Uint256Type, nil
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bits)
	}
}

// NewVector returns the descriptor of a vector of count elements.
func NewVector(elem Type, count uint64) (*VectorType, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: vector without element type", ErrInvalidType)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: zero length vector of %s", ErrInvalidType, elem)
	}
	t := &VectorType{elem: elem, count: count, chunks: count}
	if isBasic(elem) {
		t.chunks = packedChunks(count, uint64(elem.FixedSize()))
	}
	if elem.Fixed() {
		if count > math.MaxUint32/uint64(elem.FixedSize()) {
			return nil, fmt.Errorf("%w: vector of %d %s", ErrMaxLengthExceeded, count, elem)
		}
		t.size = uint32(count) * elem.FixedSize()
	}
	return t, nil
}

// NewList returns the descriptor of a list of at most limit elements.
func NewList(elem Type, limit uint64) (*ListType, error) {
	if elem == nil {
		return nil, fmt.Errorf("%w: list without element type", ErrInvalidType)
	}
	t := &ListType{elem: elem, limit: limit, chunks: limit}
	if isBasic(elem) {
		t.chunks = packedChunks(limit, uint64(elem.FixedSize()))
	}
	return t, nil
}

// NewBitvector returns the descriptor of a vector of bits.
func NewBitvector(bits uint64) (*BitvectorType, error) {
	if bits == 0 {
		return nil, fmt.Errorf("%w: zero length bitvector", ErrInvalidType)
	}
	if bits/8 >= math.MaxUint32 {
		return nil, fmt.Errorf("%w: bitvector of %d bits", ErrMaxLengthExceeded, bits)
	}
	return &BitvectorType{bits: bits}, nil
}

// NewBitlist returns the descriptor of a list of at most limit bits.
func NewBitlist(limit uint64) *BitlistType {
	return &BitlistType{limit: limit}
}

// NewUnion returns the descriptor of a union over the given variants. A nil
// variant denotes "none" and is only allowed in the first position of a union
// with at least one other option.
func NewUnion(variants ...Type) (*UnionType, error) {
	switch {
	case len(variants) == 0:
		return nil, fmt.Errorf("%w: union without variants", ErrInvalidType)
	case len(variants) > maxUnionVariants:
		return nil, fmt.Errorf("%w: union of %d variants, max %d", ErrInvalidType, len(variants), maxUnionVariants)
	case len(variants) == 1 && variants[0] == nil:
		return nil, fmt.Errorf("%w: union of a single none variant", ErrInvalidType)
	}
	for i := 1; i < len(variants); i++ {
		if variants[i] == nil {
			return nil, fmt.Errorf("%w: none variant at selector %d", ErrInvalidType, i)
		}
	}
	return &UnionType{variants: append([]Type(nil), variants...)}, nil
}

// NamedType is a field declaration of a generic container.
type NamedType struct {
	Name string
	Type Type
}

// NewContainer returns the descriptor of a container whose values are *Record
// instances holding the fields in declaration order.
func NewContainer(name string, fields ...NamedType) (*ContainerType, error) {
	return NewContainerFromSchema(recordSchema(name, fields))
}

// NewContainerFromSchema returns the descriptor of a container whose values are
// accessed through the given field table. The table is copied, later changes
// to it do not affect the descriptor.
func NewContainerFromSchema(schema *Schema) (*ContainerType, error) {
	if schema == nil || len(schema.Fields) == 0 {
		return nil, fmt.Errorf("%w: container without fields", ErrInvalidType)
	}
	if schema.New == nil {
		return nil, fmt.Errorf("%w: container %s without constructor", ErrInvalidType, schema.Name)
	}
	schema = schema.clone()
	t := &ContainerType{
		schema: schema,
		index:  make(map[string]int, len(schema.Fields)),
		fixed:  true,
	}
	var size uint64
	for i, field := range schema.Fields {
		if field.Type == nil || field.Get == nil || field.Set == nil {
			return nil, fmt.Errorf("%w: container %s field %q incomplete", ErrInvalidType, schema.Name, field.Name)
		}
		if _, ok := t.index[field.Name]; ok {
			return nil, fmt.Errorf("%w: container %s duplicate field %q", ErrInvalidType, schema.Name, field.Name)
		}
		t.index[field.Name] = i
		if !field.Type.Fixed() {
			t.fixed = false
		}
		size += uint64(field.Type.FixedSize())
	}
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: container %s fixed size %d", ErrMaxLengthExceeded, schema.Name, size)
	}
	t.size = uint32(size)
	return t, nil
}

// Must is a helper that unwraps a descriptor constructor, panicking on failure.
// It is meant for package level declarations of known good types.
func Must[T Type](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// BytesType returns the descriptor of a Vector[uint8, n].
func BytesType(n uint64) *VectorType {
	return Must(NewVector(Uint8Type, n))
}

// ByteListType returns the descriptor of a List[uint8, n].
func ByteListType(n uint64) *ListType {
	return Must(NewList(Uint8Type, n))
}

// isBasic reports whether values of the type are packed into chunks rather than
// getting their own subtree.
func isBasic(t Type) bool {
	switch t.(type) {
	case *BooleanType, *UintType:
		return true
	}
	return false
}

// isByte reports whether the type is a uint8.
func isByte(t Type) bool {
	u, ok := t.(*UintType)
	return ok && u.bits == 8
}

// packedChunks returns the number of chunks n basic items of the given size are
// packed into.
func packedChunks(n uint64, size uint64) uint64 {
	perChunk := BytesPerChunk / size
	chunks := n / perChunk
	if n%perChunk != 0 {
		chunks++
	}
	return chunks
}

func (t *BooleanType) Kind() Kind        { return KindBoolean }
func (t *BooleanType) String() string    { return "bool" }
func (t *BooleanType) Fixed() bool       { return true }
func (t *BooleanType) FixedSize() uint32 { return 1 }
func (t *BooleanType) ChunkCount() uint64 {
	return 1
}

func (t *UintType) Kind() Kind        { return KindUint }
func (t *UintType) String() string    { return fmt.Sprintf("uint%d", t.bits) }
func (t *UintType) Fixed() bool       { return true }
func (t *UintType) FixedSize() uint32 { return uint32(t.bits / 8) }
func (t *UintType) ChunkCount() uint64 {
	return 1
}

// Bits returns the width of the integer.
func (t *UintType) Bits() int { return t.bits }

func (t *VectorType) Kind() Kind         { return KindVector }
func (t *VectorType) Fixed() bool        { return t.elem.Fixed() }
func (t *VectorType) ChunkCount() uint64 { return t.chunks }

func (t *VectorType) String() string {
	return fmt.Sprintf("Vector[%s, %d]", t.elem, t.count)
}

func (t *VectorType) FixedSize() uint32 {
	if t.elem.Fixed() {
		return t.size
	}
	return BytesPerLengthOffset
}

// Elem returns the element type of the vector.
func (t *VectorType) Elem() Type { return t.elem }

// Count returns the number of elements of the vector.
func (t *VectorType) Count() uint64 { return t.count }

func (t *ListType) Kind() Kind         { return KindList }
func (t *ListType) Fixed() bool        { return false }
func (t *ListType) FixedSize() uint32  { return BytesPerLengthOffset }
func (t *ListType) ChunkCount() uint64 { return t.chunks }

func (t *ListType) String() string {
	return fmt.Sprintf("List[%s, %d]", t.elem, t.limit)
}

// Elem returns the element type of the list.
func (t *ListType) Elem() Type { return t.elem }

// Limit returns the maximum number of elements of the list.
func (t *ListType) Limit() uint64 { return t.limit }

func (t *BitvectorType) Kind() Kind        { return KindBitvector }
func (t *BitvectorType) String() string    { return fmt.Sprintf("Bitvector[%d]", t.bits) }
func (t *BitvectorType) Fixed() bool       { return true }
func (t *BitvectorType) FixedSize() uint32 { return uint32((t.bits + 7) / 8) }
func (t *BitvectorType) ChunkCount() uint64 {
	return packedBitChunks(t.bits)
}

// Len returns the number of bits in the vector.
func (t *BitvectorType) Len() uint64 { return t.bits }

func (t *BitlistType) Kind() Kind        { return KindBitlist }
func (t *BitlistType) String() string    { return fmt.Sprintf("Bitlist[%d]", t.limit) }
func (t *BitlistType) Fixed() bool       { return false }
func (t *BitlistType) FixedSize() uint32 { return BytesPerLengthOffset }
func (t *BitlistType) ChunkCount() uint64 {
	return packedBitChunks(t.limit)
}

// Limit returns the maximum number of bits in the list.
func (t *BitlistType) Limit() uint64 { return t.limit }

func packedBitChunks(bits uint64) uint64 {
	chunks := bits / 256
	if bits%256 != 0 {
		chunks++
	}
	return chunks
}

func (t *UnionType) Kind() Kind         { return KindUnion }
func (t *UnionType) Fixed() bool        { return false }
func (t *UnionType) FixedSize() uint32  { return BytesPerLengthOffset }
func (t *UnionType) ChunkCount() uint64 { return 1 }

func (t *UnionType) String() string {
	names := make([]string, len(t.variants))
	for i, variant := range t.variants {
		if variant == nil {
			names[i] = "none"
		} else {
			names[i] = variant.String()
		}
	}
	return "Union[" + strings.Join(names, ", ") + "]"
}

// Variants returns the options of the union, nil standing for none.
func (t *UnionType) Variants() []Type {
	return append([]Type(nil), t.variants...)
}

func (t *ContainerType) Kind() Kind         { return KindContainer }
func (t *ContainerType) Fixed() bool        { return t.fixed }
func (t *ContainerType) ChunkCount() uint64 { return uint64(len(t.schema.Fields)) }

func (t *ContainerType) String() string {
	if t.schema.Name == "" {
		return "Container"
	}
	return "Container[" + t.schema.Name + "]"
}

func (t *ContainerType) FixedSize() uint32 {
	if t.fixed {
		return t.size
	}
	return BytesPerLengthOffset
}

// Schema returns a copy of the field table backing the container.
func (t *ContainerType) Schema() *Schema { return t.schema.clone() }

// Fields returns the declared fields in order.
func (t *ContainerType) Fields() []NamedType {
	fields := make([]NamedType, len(t.schema.Fields))
	for i, field := range t.schema.Fields {
		fields[i] = NamedType{Name: field.Name, Type: field.Type}
	}
	return fields
}

// FieldIndex returns the position of the named field.
func (t *ContainerType) FieldIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}
