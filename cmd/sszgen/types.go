// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
)

// Binding helpers of the ssz package a field may be wired through.
const (
	defineField   = "DefineField"
	defineArray   = "DefineArray"
	defineArrays  = "DefineArrays"
	defineRecord  = "DefineRecord"
	defineRecords = "DefineRecords"
)

// binaryLengths are the array sizes DefineArray and DefineArrays accept.
var binaryLengths = map[int64]bool{4: true, 20: true, 32: true, 48: true, 96: true}

type sszContainer struct {
	named  *types.Named
	fields []*sszField
}

// sszField is a struct field resolved into a schema binding.
type sszField struct {
	name   string     // Go field name
	wire   string     // Field name in the ssz schema
	desc   string     // Type descriptor of the field
	define string     // Binding helper wiring the field
	typ    types.Type // Go type of the field
}

func newContainer(pkg *types.Package, named *types.Named, typ *types.Struct) (*sszContainer, error) {
	var fields []*sszField

	// Iterate over all the fields of the struct
	for i := 0; i < typ.NumFields(); i++ {
		// Skip private fields, and skip ignored ssz fields
		f := typ.Field(i)
		if !f.Exported() {
			continue
		}
		tags, err := parseTags(typ.Tag(i))
		if err != nil {
			return nil, fmt.Errorf("failed to parse tags of %s.%s: %v", named.Obj().Name(), f.Name(), err)
		}
		if tags.ignored {
			continue
		}
		// Required field found, validate type with tag content
		define, desc, err := resolveField(f.Type(), tags)
		if err != nil {
			return nil, fmt.Errorf("failed to validate field %s.%s: %v", named.Obj().Name(), f.Name(), err)
		}
		if tags.desc != "" {
			desc = tags.desc
		}
		wire := tags.name
		if wire == "" {
			wire = toSnakeCase(f.Name())
		}
		fields = append(fields, &sszField{
			name:   f.Name(),
			wire:   wire,
			desc:   desc,
			define: define,
			typ:    f.Type(),
		})
	}
	return &sszContainer{named: named, fields: fields}, nil
}

// resolveField picks the binding helper of a Go field type and infers its type
// descriptor from the size tags. The descriptor may be empty if the field type
// alone cannot determine it, in which case an explicit ssz tag is required.
func resolveField(typ types.Type, tags *fieldTags) (string, string, error) {
	switch {
	case isBitlist(typ):
		limit := tags.dim(0).limit
		if limit == "" && tags.desc == "" {
			return "", "", fmt.Errorf("bitlist requires ssz-max tag")
		}
		return defineField, fmt.Sprintf("Bitlist[%s]", limit), nil

	case isValue(typ):
		if tags.desc == "" {
			return "", "", fmt.Errorf("raw value requires ssz type tag")
		}
		return defineField, "", nil
	}
	switch t := typ.(type) {
	case *types.Named:
		switch u := t.Underlying().(type) {
		case *types.Array:
			return resolveArray(u)
		case *types.Basic:
			return "", "", fmt.Errorf("named basic type %s unsupported, use %s", typ, u)
		}
		return "", "", fmt.Errorf("unsupported named type %s", typ)

	case *types.Basic:
		desc, err := resolveBasic(t)
		if err != nil {
			return "", "", err
		}
		return defineField, desc, nil

	case *types.Array:
		return resolveArray(t)

	case *types.Slice:
		return resolveSlice(t.Elem(), tags)

	case *types.Pointer:
		switch {
		case isUint256(t.Elem()), isBigInt(t.Elem()):
			return defineField, "uint256", nil
		case isStruct(t.Elem()):
			return defineRecord, fmt.Sprintf("Container[%s]", t.Elem().(*types.Named).Obj().Name()), nil
		}
		return "", "", fmt.Errorf("unsupported pointer type %s", typ)
	}
	return "", "", fmt.Errorf("unsupported type %s", typ)
}

func resolveBasic(typ *types.Basic) (string, error) {
	switch typ.Kind() {
	case types.Bool:
		return "bool", nil
	case types.Uint8:
		return "uint8", nil
	case types.Uint16:
		return "uint16", nil
	case types.Uint32:
		return "uint32", nil
	case types.Uint64:
		return "uint64", nil
	}
	return "", fmt.Errorf("unsupported basic type: %s", typ)
}

func resolveArray(typ *types.Array) (string, string, error) {
	if !isByte(typ.Elem()) {
		return "", "", fmt.Errorf("unsupported array type %s", typ)
	}
	if !binaryLengths[typ.Len()] {
		return "", "", fmt.Errorf("unsupported binary length %d", typ.Len())
	}
	return defineArray, fmt.Sprintf("Bytes%d", typ.Len()), nil
}

// resolveSlice maps a slice field onto a vector or list, depending on whether
// its outer dimension has a size or a limit.
func resolveSlice(elem types.Type, tags *fieldTags) (string, string, error) {
	wrap := func(inner string) (string, error) {
		switch dim := tags.dim(0); {
		case dim.size != "":
			return fmt.Sprintf("Vector[%s, %s]", inner, dim.size), nil
		case dim.limit != "":
			return fmt.Sprintf("List[%s, %s]", inner, dim.limit), nil
		case tags.desc != "":
			return "", nil
		}
		return "", fmt.Errorf("slice requires ssz-size or ssz-max tag")
	}
	switch e := elem.(type) {
	case *types.Basic:
		switch e.Kind() {
		case types.Uint8:
			desc, err := wrap("uint8")
			return defineField, desc, err
		case types.Uint64:
			desc, err := wrap("uint64")
			return defineField, desc, err
		case types.Bool:
			switch dim := tags.dim(0); {
			case dim.size != "":
				return defineField, fmt.Sprintf("Bitvector[%s]", dim.size), nil
			case dim.limit != "":
				return defineField, fmt.Sprintf("Bitlist[%s]", dim.limit), nil
			case tags.desc != "":
				return defineField, "", nil
			}
			return "", "", fmt.Errorf("bit slice requires ssz-size or ssz-max tag")
		}
	case *types.Slice:
		if isByte(e.Elem()) {
			var inner string
			switch dim := tags.dim(1); {
			case dim.size != "":
				inner = fmt.Sprintf("Vector[uint8, %s]", dim.size)
			case dim.limit != "":
				inner = fmt.Sprintf("List[uint8, %s]", dim.limit)
			case tags.desc == "":
				return "", "", fmt.Errorf("nested byte slice requires a second tag dimension")
			}
			desc, err := wrap(inner)
			return defineField, desc, err
		}
	case *types.Array:
		if _, inner, err := resolveArray(e); err == nil {
			desc, err := wrap(inner)
			return defineArrays, desc, err
		}
	case *types.Named:
		if u, ok := e.Underlying().(*types.Array); ok {
			if _, inner, err := resolveArray(u); err == nil {
				desc, err := wrap(inner)
				return defineArrays, desc, err
			}
		}
	case *types.Pointer:
		if isStruct(e.Elem()) {
			desc, err := wrap(fmt.Sprintf("Container[%s]", e.Elem().(*types.Named).Obj().Name()))
			return defineRecords, desc, err
		}
	}
	return "", "", fmt.Errorf("unsupported slice element %s", elem)
}

// isByte checks whether 'typ' is an unnamed byte.
func isByte(typ types.Type) bool {
	basic, ok := typ.(*types.Basic)
	return ok && basic.Kind() == types.Uint8
}

// isStruct checks whether 'typ' is a named struct.
func isStruct(typ types.Type) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok && !isBigInt(typ) && !isUint256(typ)
}

// isNamed checks whether 'typ' is the named type pkg.name.
func isNamed(typ types.Type, pkg string, name string) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkg && obj.Name() == name
}

// isBigInt checks whether 'typ' is "math/big".Int.
func isBigInt(typ types.Type) bool {
	return isNamed(typ, "math/big", "Int")
}

// isUint256 checks whether 'typ' is "github.com/holiman/uint256".Int.
func isUint256(typ types.Type) bool {
	return isNamed(typ, "github.com/holiman/uint256", "Int")
}

// isBitlist checks whether 'typ' is "github.com/prysmaticlabs/go-bitfield".Bitlist.
func isBitlist(typ types.Type) bool {
	return isNamed(typ, "github.com/prysmaticlabs/go-bitfield", "Bitlist")
}

// isValue checks whether 'typ' is an empty interface, the raw ssz.Value.
func isValue(typ types.Type) bool {
	if _, ok := typ.(*types.Named); ok {
		return false
	}
	iface, ok := typ.Underlying().(*types.Interface)
	return ok && iface.Empty()
}
