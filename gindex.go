// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// LengthIndex is the path hop addressing the length mix-in of a list.
const LengthIndex = math.MaxUint64

// lengthHopName is the textual form of LengthIndex in string paths.
const lengthHopName = "__len__"

// GeneralizedIndexParent returns the parent of a tree node.
func GeneralizedIndexParent(index uint64) uint64 {
	return index / 2
}

// GeneralizedIndexChild returns the left or right child of a tree node.
func GeneralizedIndexChild(index uint64, right bool) uint64 {
	if right {
		return 2*index + 1
	}
	return 2 * index
}

// GeneralizedIndexSibling returns the other child of a node's parent.
func GeneralizedIndexSibling(index uint64) uint64 {
	return index ^ 1
}

// GetGeneralizedIndexLength returns the depth of a node, floor(log2(index)).
func GetGeneralizedIndexLength(index uint64) int {
	if index == 0 {
		return 0
	}
	return bits.Len64(index) - 1
}

// GetGeneralizedIndexBit returns whether the step taken position levels above
// the node went right.
func GetGeneralizedIndexBit(index uint64, position int) bool {
	return index&(1<<position) != 0
}

// GetGeneralizedIndex walks a path of hops down a type and returns the
// generalized index of the addressed node. Hops are field positions for
// containers, element positions for vectors, lists and bit sequences, or
// LengthIndex for the length of a list.
func GetGeneralizedIndex(t Type, path ...uint64) (uint64, error) {
	root := uint64(1)
	for i, hop := range path {
		if isBasic(t) {
			return 0, fmt.Errorf("%w: hop %d into basic type %s", ErrInvalidGeneralizedIndex, i, t)
		}
		var err error
		if hop == LengthIndex {
			switch t.(type) {
			case *ListType, *BitlistType:
			default:
				return 0, fmt.Errorf("%w: length hop %d into %s", ErrInvalidGeneralizedIndex, i, t)
			}
			if root, err = descend(root, 1, 1); err != nil {
				return 0, err
			}
			t = Uint64Type
			continue
		}
		pos, elem, err := itemPosition(t, hop)
		if err != nil {
			return 0, fmt.Errorf("hop %d: %w", i, err)
		}
		// Lists hang their data tree off the left child of the length mix-in
		depth := depthOf(t.ChunkCount())
		switch t.(type) {
		case *ListType, *BitlistType:
			depth++
		}
		if root, err = descend(root, depth, pos); err != nil {
			return 0, err
		}
		t = elem
	}
	return root, nil
}

// descend moves depth levels down from root and picks the pos-th node there.
func descend(root uint64, depth int, pos uint64) (uint64, error) {
	if depth >= 64 || bits.Len64(root)+depth > 64 {
		return 0, fmt.Errorf("%w: %d levels below %d", ErrIndexOverflow, depth, root)
	}
	return root<<depth + pos, nil
}

// itemPosition returns the chunk holding the i-th item of a composite type, and
// the type of that item.
func itemPosition(t Type, i uint64) (uint64, Type, error) {
	switch t := t.(type) {
	case *VectorType:
		if i >= t.count {
			return 0, nil, fmt.Errorf("%w: index %d of %s", ErrInvalidGeneralizedIndex, i, t)
		}
		return elementChunk(t.elem, i), t.elem, nil
	case *ListType:
		if i >= t.limit {
			return 0, nil, fmt.Errorf("%w: index %d of %s", ErrInvalidGeneralizedIndex, i, t)
		}
		return elementChunk(t.elem, i), t.elem, nil
	case *BitvectorType:
		if i >= t.bits {
			return 0, nil, fmt.Errorf("%w: bit %d of %s", ErrInvalidGeneralizedIndex, i, t)
		}
		return i / 256, BoolType, nil
	case *BitlistType:
		if i >= t.limit {
			return 0, nil, fmt.Errorf("%w: bit %d of %s", ErrInvalidGeneralizedIndex, i, t)
		}
		return i / 256, BoolType, nil
	case *ContainerType:
		if i >= uint64(len(t.schema.Fields)) {
			return 0, nil, fmt.Errorf("%w: field %d of %s", ErrInvalidGeneralizedIndex, i, t)
		}
		return i, t.schema.Fields[i].Type, nil
	default:
		return 0, nil, fmt.Errorf("%w: cannot index into %s", ErrInvalidGeneralizedIndex, t)
	}
}

// elementChunk returns the chunk holding the i-th element of a collection.
func elementChunk(elem Type, i uint64) uint64 {
	if isBasic(elem) {
		return i / uint64(BytesPerChunk/elem.FixedSize())
	}
	return i
}

// GetGeneralizedIndexByPath is like GetGeneralizedIndex, but the hops are given
// textually: field names for containers, decimal positions for collections and
// "__len__" for list lengths.
func GetGeneralizedIndexByPath(t Type, path ...string) (uint64, error) {
	hops := make([]uint64, len(path))
	cur := t
	for i, name := range path {
		switch {
		case name == lengthHopName:
			hops[i] = LengthIndex
			cur = Uint64Type
			continue
		case cur.Kind() == KindContainer:
			pos, ok := cur.(*ContainerType).FieldIndex(name)
			if !ok {
				return 0, fmt.Errorf("%w: no field %q in %s", ErrInvalidGeneralizedIndex, name, cur)
			}
			hops[i] = uint64(pos)
		default:
			pos, err := strconv.ParseUint(name, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: hop %q into %s", ErrInvalidGeneralizedIndex, name, cur)
			}
			hops[i] = pos
		}
		_, elem, err := itemPosition(cur, hops[i])
		if err != nil {
			return 0, fmt.Errorf("hop %d: %w", i, err)
		}
		cur = elem
	}
	return GetGeneralizedIndex(t, hops...)
}

// ConcatGeneralizedIndices joins the indices of nested subtrees into the index
// of the innermost node relative to the outermost root.
func ConcatGeneralizedIndices(indices ...uint64) (uint64, error) {
	o := uint64(1)
	for _, index := range indices {
		if index == 0 {
			return 0, fmt.Errorf("%w: index 0", ErrInvalidGeneralizedIndex)
		}
		depth := GetGeneralizedIndexLength(index)
		var err error
		if o, err = descend(o, depth, index-(1<<depth)); err != nil {
			return 0, err
		}
	}
	return o, nil
}
