// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Schema is the statically declared field table of a record type: the only
// thing a container descriptor knows about the values it encodes.
type Schema struct {
	Name   string
	Fields []Field
	New    func() Value // Creates a default valued record
}

// clone returns a copy of the field table that shares no slices with it.
func (s *Schema) clone() *Schema {
	cpy := *s
	cpy.Fields = append([]Field(nil), s.Fields...)
	return &cpy
}

// Field is a single entry of a record's field table.
type Field struct {
	Name string
	Type Type
	Get  func(obj Value) (Value, error)    // Reads the field out of a record
	Set  func(obj Value, field Value) error // Stores a decoded field into a record
}

// SchemaFunc constructs the field table of a record type, resolving descriptor
// strings through the given scope.
type SchemaFunc func(scope *Scope) (*Schema, error)

// recordSchema creates the field table of a container holding *Record values.
func recordSchema(name string, fields []NamedType) *Schema {
	schema := &Schema{
		Name: name,
		New:  func() Value { return &Record{Values: make([]Value, len(fields))} },
	}
	for i, field := range fields {
		i, typ := i, field.Type
		schema.Fields = append(schema.Fields, Field{
			Name: field.Name,
			Type: typ,
			Get: func(obj Value) (Value, error) {
				rec, ok := obj.(*Record)
				if !ok || rec == nil {
					return nil, fmt.Errorf("%w: %T for record %s", ErrValueMismatch, obj, name)
				}
				if i >= len(rec.Values) {
					return nil, fmt.Errorf("%w: record %s has %d values", ErrValueMismatch, name, len(rec.Values))
				}
				if rec.Values[i] == nil {
					return Default(typ), nil
				}
				return rec.Values[i], nil
			},
			Set: func(obj Value, v Value) error {
				rec, ok := obj.(*Record)
				if !ok || rec == nil || i >= len(rec.Values) {
					return fmt.Errorf("%w: %T for record %s", ErrValueMismatch, obj, name)
				}
				rec.Values[i] = v
				return nil
			},
		})
	}
	return schema
}

// Builder collects the field table of the host record type T. Errors are
// sticky; the first one aborts the schema construction.
type Builder[T any] struct {
	scope  *Scope
	fields []Field
	err    error
}

// Define creates the schema function of a host record type from a list of
// field bindings.
func Define[T any](name string, define func(b *Builder[T])) SchemaFunc {
	return func(scope *Scope) (*Schema, error) {
		b := &Builder[T]{scope: scope}
		define(b)
		if b.err != nil {
			return nil, fmt.Errorf("record %s: %w", name, b.err)
		}
		return &Schema{
			Name:   name,
			Fields: b.fields,
			New:    func() Value { return new(T) },
		}, nil
	}
}

// resolve parses the descriptor of a field, recording any failure.
func (b *Builder[T]) resolve(name, desc string) Type {
	if b.err != nil {
		return nil
	}
	typ, err := b.scope.Resolve(desc)
	if err != nil {
		b.err = fmt.Errorf("field %q: %w", name, err)
		return nil
	}
	return typ
}

// fail records a binding error.
func (b *Builder[T]) fail(name string, err error) {
	if b.err == nil {
		b.err = fmt.Errorf("field %q: %w", name, err)
	}
}

// add appends a field with typed accessors to the table.
func (b *Builder[T]) add(name string, typ Type, get func(obj *T) (Value, error), set func(obj *T, v Value) error) {
	b.fields = append(b.fields, Field{
		Name: name,
		Type: typ,
		Get: func(obj Value) (Value, error) {
			rec, ok := obj.(*T)
			if !ok || rec == nil {
				return nil, fmt.Errorf("%w: %T for %T", ErrValueMismatch, obj, rec)
			}
			return get(rec)
		},
		Set: func(obj Value, v Value) error {
			rec, ok := obj.(*T)
			if !ok || rec == nil {
				return fmt.Errorf("%w: %T for %T", ErrValueMismatch, obj, rec)
			}
			return set(rec, v)
		},
	})
}

// DefineField binds a basic, binary or bit sequence Go field to a descriptor.
// Supported field types are bool, uint8..uint64, *uint256.Int, *big.Int,
// []byte, []bool, bitfield.Bitlist, []uint64, [][]byte and Value (raw).
func DefineField[T any, F any](b *Builder[T], name string, desc string, ref func(obj *T) *F) {
	typ := b.resolve(name, desc)
	if typ == nil {
		return
	}
	var probe F
	if err := checkBinding(typ, &probe); err != nil {
		b.fail(name, err)
		return
	}
	b.add(name, typ,
		func(obj *T) (Value, error) { return lift(typ, ref(obj)) },
		func(obj *T, v Value) error { return lower(v, ref(obj)) },
	)
}

// DefineArray binds a fixed size binary blob to a byte vector of equal length.
func DefineArray[T any, A commonBinaryLengths](b *Builder[T], name string, desc string, ref func(obj *T) *A) {
	typ := b.resolve(name, desc)
	if typ == nil {
		return
	}
	var probe A
	if !isByteVector(typ, uint64(len(probe))) {
		b.fail(name, fmt.Errorf("%w: [%d]byte bound to %s", ErrSchemaResolution, len(probe), typ))
		return
	}
	b.add(name, typ,
		func(obj *T) (Value, error) {
			return append(Bytes{}, blobOf(ref(obj))...), nil
		},
		func(obj *T, v Value) error {
			return lowerArray(v, ref(obj))
		},
	)
}

// DefineArrays binds a slice of fixed size binary blobs to a vector or list of
// byte vectors. A nil slice bound to a vector encodes as the default vector.
func DefineArrays[T any, A commonBinaryLengths](b *Builder[T], name string, desc string, ref func(obj *T) *[]A) {
	typ := b.resolve(name, desc)
	if typ == nil {
		return
	}
	var probe A
	if elem := elemOf(typ); elem == nil || !isByteVector(elem, uint64(len(probe))) {
		b.fail(name, fmt.Errorf("%w: [][%d]byte bound to %s", ErrSchemaResolution, len(probe), typ))
		return
	}
	b.add(name, typ,
		func(obj *T) (Value, error) {
			blobs := *ref(obj)
			if blobs == nil && typ.Kind() == KindVector {
				return Default(typ), nil
			}
			items := make(Sequence, len(blobs))
			for i := range blobs {
				items[i] = append(Bytes{}, blobOf(&blobs[i])...)
			}
			return items, nil
		},
		func(obj *T, v Value) error {
			items, ok := v.(Sequence)
			if !ok {
				return fmt.Errorf("%w: %T for binary blobs", ErrValueMismatch, v)
			}
			blobs := make([]A, len(items))
			for i, item := range items {
				if err := lowerArray(item, &blobs[i]); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			*ref(obj) = blobs
			return nil
		},
	)
}

// DefineRecord binds a nested record pointer to a container descriptor whose
// schema creates *U values. A nil pointer encodes as the default record.
func DefineRecord[T any, U any](b *Builder[T], name string, desc string, ref func(obj *T) **U) {
	typ := b.resolve(name, desc)
	if typ == nil {
		return
	}
	cont, ok := typ.(*ContainerType)
	if !ok {
		b.fail(name, fmt.Errorf("%w: record bound to %s", ErrSchemaResolution, typ))
		return
	}
	if _, ok := cont.schema.New().(*U); !ok {
		b.fail(name, fmt.Errorf("%w: %T bound to %s", ErrSchemaResolution, (*U)(nil), typ))
		return
	}
	b.add(name, typ,
		func(obj *T) (Value, error) {
			if rec := *ref(obj); rec != nil {
				return rec, nil
			}
			return cont.schema.New(), nil
		},
		func(obj *T, v Value) error {
			rec, ok := v.(*U)
			if !ok {
				return fmt.Errorf("%w: %T for %T", ErrValueMismatch, v, rec)
			}
			*ref(obj) = rec
			return nil
		},
	)
}

// DefineRecords binds a slice of nested record pointers to a vector or list of
// containers whose schema creates *U values.
func DefineRecords[T any, U any](b *Builder[T], name string, desc string, ref func(obj *T) *[]*U) {
	typ := b.resolve(name, desc)
	if typ == nil {
		return
	}
	cont, ok := elemOf(typ).(*ContainerType)
	if !ok {
		b.fail(name, fmt.Errorf("%w: record slice bound to %s", ErrSchemaResolution, typ))
		return
	}
	if _, ok := cont.schema.New().(*U); !ok {
		b.fail(name, fmt.Errorf("%w: []%T bound to %s", ErrSchemaResolution, (*U)(nil), typ))
		return
	}
	b.add(name, typ,
		func(obj *T) (Value, error) {
			recs := *ref(obj)
			if recs == nil && typ.Kind() == KindVector {
				return Default(typ), nil
			}
			items := make(Sequence, len(recs))
			for i, rec := range recs {
				if rec == nil {
					items[i] = cont.schema.New()
				} else {
					items[i] = rec
				}
			}
			return items, nil
		},
		func(obj *T, v Value) error {
			items, ok := v.(Sequence)
			if !ok {
				return fmt.Errorf("%w: %T for records", ErrValueMismatch, v)
			}
			recs := make([]*U, len(items))
			for i, item := range items {
				if recs[i], ok = item.(*U); !ok {
					return fmt.Errorf("index %d: %w: %T for %T", i, ErrValueMismatch, item, recs[i])
				}
			}
			*ref(obj) = recs
			return nil
		},
	)
}

// elemOf returns the element type of a vector or list, nil otherwise.
func elemOf(t Type) Type {
	switch t := t.(type) {
	case *VectorType:
		return t.elem
	case *ListType:
		return t.elem
	}
	return nil
}

// isByteVector reports whether t is a Vector[uint8, n].
func isByteVector(t Type, n uint64) bool {
	vec, ok := t.(*VectorType)
	return ok && isByte(vec.elem) && vec.count == n
}

// isByteSequence reports whether t is a vector or list of uint8.
func isByteSequence(t Type) bool {
	elem := elemOf(t)
	return elem != nil && isByte(elem)
}

// checkBinding verifies that a Go field type can hold the values of t.
func checkBinding(t Type, ptr any) error {
	var ok bool
	switch ptr.(type) {
	case *bool:
		ok = t.Kind() == KindBoolean
	case *uint8:
		ok = isUintOf(t, 8)
	case *uint16:
		ok = isUintOf(t, 16)
	case *uint32:
		ok = isUintOf(t, 32)
	case *uint64:
		ok = isUintOf(t, 64)
	case **uint256.Int, **big.Int:
		ok = t.Kind() == KindUint
	case *[]byte:
		ok = isByteSequence(t)
	case *[]bool:
		ok = t.Kind() == KindBitvector || t.Kind() == KindBitlist
	case *bitfield.Bitlist:
		ok = t.Kind() == KindBitlist
	case *[]uint64:
		elem := elemOf(t)
		ok = elem != nil && isUintOf(elem, 64)
	case *[][]byte:
		elem := elemOf(t)
		ok = elem != nil && isByteSequence(elem)
	case *Value:
		ok = true
	}
	if !ok {
		return fmt.Errorf("%w: %T bound to %s", ErrSchemaResolution, ptr, t)
	}
	return nil
}

func isUintOf(t Type, bits int) bool {
	u, ok := t.(*UintType)
	return ok && u.bits == bits
}

// lift converts a Go field into a value of type t. The binding was validated by
// checkBinding, so only the Go side needs switching on.
func lift(t Type, ptr any) (Value, error) {
	switch p := ptr.(type) {
	case *bool:
		return Bool(*p), nil
	case *uint8:
		return NewUint8(*p), nil
	case *uint16:
		return NewUint16(*p), nil
	case *uint32:
		return NewUint32(*p), nil
	case *uint64:
		return NewUint64(*p), nil
	case **uint256.Int:
		return NewUintValue(t.(*UintType).bits, *p)
	case **big.Int:
		return NewUintFromBig(t.(*UintType).bits, *p)
	case *[]byte:
		if *p == nil && t.Kind() == KindVector {
			return make(Bytes, t.(*VectorType).count), nil
		}
		return Bytes(*p), nil
	case *[]bool:
		if *p == nil && t.Kind() == KindBitvector {
			return make(Bits, t.(*BitvectorType).bits), nil
		}
		return Bits(*p), nil
	case *bitfield.Bitlist:
		if len(*p) == 0 {
			return Bits{}, nil
		}
		bits := make(Bits, p.Len())
		for i := range bits {
			bits[i] = p.BitAt(uint64(i))
		}
		return bits, nil
	case *[]uint64:
		if *p == nil && t.Kind() == KindVector {
			return Default(t), nil
		}
		items := make(Sequence, len(*p))
		for i, n := range *p {
			items[i] = NewUint64(n)
		}
		return items, nil
	case *[][]byte:
		if *p == nil && t.Kind() == KindVector {
			return Default(t), nil
		}
		items := make(Sequence, len(*p))
		for i, blob := range *p {
			items[i] = Bytes(blob)
		}
		return items, nil
	case *Value:
		if *p == nil {
			return Default(t), nil
		}
		return *p, nil
	default:
		return nil, fmt.Errorf("%w: unsupported field type %T", ErrValueMismatch, ptr)
	}
}

// lower stores a decoded value into a Go field, rejecting lossy conversions.
func lower(v Value, ptr any) error {
	switch p := ptr.(type) {
	case *bool:
		b, ok := v.(Bool)
		if !ok {
			return fmt.Errorf("%w: %T for bool", ErrValueMismatch, v)
		}
		*p = bool(b)
	case *uint8:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p, err = u.Uint8()
		return err
	case *uint16:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p, err = u.Uint16()
		return err
	case *uint32:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p, err = u.Uint32()
		return err
	case *uint64:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p, err = u.Uint64()
		return err
	case **uint256.Int:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p = u.Int()
	case **big.Int:
		u, err := asUint(v)
		if err != nil {
			return err
		}
		*p = u.Big()
	case *[]byte:
		blob, err := bytesOf(v)
		if err != nil {
			return err
		}
		*p = blob
	case *[]bool:
		bits, err := asBits(v)
		if err != nil {
			return err
		}
		*p = append([]bool{}, bits...)
	case *bitfield.Bitlist:
		bits, err := asBits(v)
		if err != nil {
			return err
		}
		list := bitfield.NewBitlist(uint64(len(bits)))
		for i, bit := range bits {
			if bit {
				list.SetBitAt(uint64(i), true)
			}
		}
		*p = list
	case *[]uint64:
		items, ok := v.(Sequence)
		if !ok {
			return fmt.Errorf("%w: %T for []uint64", ErrValueMismatch, v)
		}
		ns := make([]uint64, len(items))
		for i, item := range items {
			u, err := asUint(item)
			if err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			if ns[i], err = u.Uint64(); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		*p = ns
	case *[][]byte:
		items, ok := v.(Sequence)
		if !ok {
			return fmt.Errorf("%w: %T for [][]byte", ErrValueMismatch, v)
		}
		blobs := make([][]byte, len(items))
		for i, item := range items {
			blob, err := bytesOf(item)
			if err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
			blobs[i] = blob
		}
		*p = blobs
	case *Value:
		*p = v
	default:
		return fmt.Errorf("%w: unsupported field type %T", ErrValueMismatch, ptr)
	}
	return nil
}

// lowerArray stores a decoded byte vector into a fixed size binary blob.
func lowerArray[A commonBinaryLengths](v Value, blob *A) error {
	data, err := bytesOf(v)
	if err != nil {
		return err
	}
	if len(data) != len(*blob) {
		return fmt.Errorf("%w: %d bytes for [%d]byte", ErrValueMismatch, len(data), len(*blob))
	}
	copy(blobOf(blob), data)
	return nil
}

func asUint(v Value) (Uint, error) {
	u, ok := v.(Uint)
	if !ok {
		return Uint{}, fmt.Errorf("%w: %T is not an integer", ErrValueMismatch, v)
	}
	return u, nil
}

// bytesOf flattens a byte vector or list value into a fresh byte slice.
func bytesOf(v Value) ([]byte, error) {
	switch v := v.(type) {
	case Bytes:
		return append([]byte{}, v...), nil
	case Sequence:
		blob := make([]byte, len(v))
		for i, item := range v {
			u, err := asUint(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			if u.bits != 8 {
				return nil, fmt.Errorf("index %d: %w: uint%d in byte sequence", i, ErrValueMismatch, u.bits)
			}
			blob[i] = byte(u.val.Uint64())
		}
		return blob, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a byte sequence", ErrValueMismatch, v)
	}
}
