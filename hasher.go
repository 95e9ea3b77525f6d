// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/prysmaticlabs/gohashtree"
)

// Merkleizer computes hash tree roots, interior tree nodes and proofs of SSZ
// values. It owns the zero subtree cache, so a single instance should be shared
// by everything hashing in a process. It is safe for concurrent use.
type Merkleizer struct {
	zeroes zeroHashes
}

// NewMerkleizer creates a Merkleizer with an empty zero hash cache.
func NewMerkleizer() *Merkleizer {
	return new(Merkleizer)
}

// defaultMerkleizer backs the package level hashing helpers.
var defaultMerkleizer = NewMerkleizer()

// ZeroHash returns the root of an all-zero subtree of the given depth.
func (m *Merkleizer) ZeroHash(depth int) [32]byte {
	return m.zeroes.get(depth)
}

// Pack serializes a vector or list of basic items and splits the result into
// zero padded chunks.
func Pack(elem Type, v Value) ([][32]byte, error) {
	if !isBasic(elem) {
		return nil, fmt.Errorf("%w: cannot pack %s", ErrInvalidType, elem)
	}
	n, err := itemCount(v)
	if err != nil {
		return nil, err
	}
	enc := &Encoder{buf: make([]byte, uint64(n)*uint64(elem.FixedSize()))}
	encodeElements(enc, elem, v)
	if enc.err != nil {
		return nil, enc.err
	}
	return chunkify(enc.buf), nil
}

// PackBits packs a bit sequence LSB first into zero padded chunks.
func PackBits(bits Bits) [][32]byte {
	chunks := make([][32]byte, packedBitChunks(uint64(len(bits))))
	for i, bit := range bits {
		if bit {
			chunks[i/256][(i%256)/8] |= 1 << (i % 8)
		}
	}
	return chunks
}

// chunkify splits a blob into 32 byte chunks, zero padding the last one.
func chunkify(blob []byte) [][32]byte {
	chunks := make([][32]byte, (len(blob)+BytesPerChunk-1)/BytesPerChunk)
	for i := range chunks {
		copy(chunks[i][:], blob[i*BytesPerChunk:])
	}
	return chunks
}

// depthOf returns the depth of the tree a chunk limit is padded to.
func depthOf(limit uint64) int {
	if limit <= 1 {
		return 0
	}
	return bits.Len64(limit - 1)
}

// Merkleize hashes the chunks into a binary tree padded to the next power of two
// of limit. A zero limit pads to the number of chunks instead.
func (m *Merkleizer) Merkleize(chunks [][32]byte, limit uint64) ([32]byte, error) {
	count := uint64(len(chunks))
	if limit == 0 {
		limit = count
	} else if count > limit {
		return [32]byte{}, fmt.Errorf("%w: %d chunks, limit %d", ErrCapacityExceeded, count, limit)
	}
	depth := depthOf(limit)
	if count == 0 {
		return m.ZeroHash(depth), nil
	}
	layer := make([][32]byte, count, count+1)
	copy(layer, chunks)

	for i := 0; i < depth; i++ {
		if len(layer)%2 == 1 {
			layer = append(layer, m.ZeroHash(i))
		}
		if err := gohashtree.Hash(layer, layer); err != nil {
			return [32]byte{}, err
		}
		layer = layer[:len(layer)/2]
	}
	return layer[0], nil
}

// layers builds every level of a tree over the leaves padded to the given depth.
// Level 0 is the root, level depth the leaves; nodes beyond a level's slice are
// zero subtrees.
func (m *Merkleizer) layers(leaves [][32]byte, depth int) ([][][32]byte, error) {
	levels := make([][][32]byte, depth+1)
	levels[depth] = leaves

	for level := depth - 1; level >= 0; level-- {
		below := levels[level+1]
		if len(below) == 0 {
			continue
		}
		if len(below)%2 == 1 {
			below = append(below[:len(below):len(below)], m.ZeroHash(depth-level-1))
		}
		above := make([][32]byte, len(below)/2)
		if err := gohashtree.Hash(above, below); err != nil {
			return nil, err
		}
		levels[level] = above
	}
	return levels, nil
}

// node returns the j-th node of a level built by layers.
func (m *Merkleizer) node(levels [][][32]byte, level int, j uint64) [32]byte {
	if j < uint64(len(levels[level])) {
		return levels[level][j]
	}
	return m.ZeroHash(len(levels) - 1 - level)
}

// MixInLength binds a length into a root.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[:], length)
	return hashPair(root, chunk)
}

// MixInSelector binds a union selector into a root.
func MixInSelector(root [32]byte, selector uint8) [32]byte {
	var chunk [32]byte
	chunk[0] = selector
	return hashPair(root, chunk)
}

// HashTreeRoot computes the Merkle root of a value using the shared Merkleizer.
func HashTreeRoot(t Type, v Value) ([32]byte, error) {
	return defaultMerkleizer.HashTreeRoot(t, v)
}

// HashTreeRoot computes the Merkle root of a value.
func (m *Merkleizer) HashTreeRoot(t Type, v Value) ([32]byte, error) {
	st, err := expand(t, v)
	if err != nil {
		return [32]byte{}, err
	}
	leaves := st.leaves
	if st.child != nil {
		leaves = make([][32]byte, st.count)
		for i := range leaves {
			ct, cv := st.child(i)
			if leaves[i], err = m.HashTreeRoot(ct, cv); err != nil {
				return [32]byte{}, st.annotate(i, err)
			}
		}
	}
	root, err := m.Merkleize(leaves, st.limit)
	if err != nil {
		return [32]byte{}, err
	}
	if st.mixin != nil {
		root = hashPair(root, *st.mixin)
	}
	return root, nil
}

// subtree is the local shape of a value's Merkle tree: a data tree of at most
// limit leaves, optionally mixed with an auxiliary chunk at the root. Leaves are
// either packed chunks or the roots of composite children.
type subtree struct {
	limit  uint64                   // Number of leaves the data tree is padded to
	leaves [][32]byte               // Packed leaves (nil for composite children)
	count  int                      // Number of composite children
	child  func(i int) (Type, Value) // Accessor of the composite children
	label  func(i int) string       // Error context of the composite children
	mixin  *[32]byte                // Length or selector chunk, if any
}

// annotate prefixes a child's error with its location.
func (st *subtree) annotate(i int, err error) error {
	return fmt.Errorf("%s: %w", st.label(i), err)
}

func indexLabel(i int) string { return fmt.Sprintf("index %d", i) }

// expand validates a value against its type and describes its local tree.
func expand(t Type, v Value) (*subtree, error) {
	switch t := t.(type) {
	case *BooleanType, *UintType:
		enc := &Encoder{buf: make([]byte, BytesPerChunk)}
		t.encode(enc, v)
		if enc.err != nil {
			return nil, enc.err
		}
		return &subtree{limit: 1, leaves: chunkify(enc.buf)}, nil

	case *VectorType:
		n, err := itemCount(v)
		if err != nil {
			return nil, err
		}
		if uint64(n) != t.count {
			return nil, fmt.Errorf("%w: %s with %d items", ErrCountMismatch, t, n)
		}
		return expandElements(t.elem, v, t.chunks)

	case *ListType:
		n, err := itemCount(v)
		if err != nil {
			return nil, err
		}
		if uint64(n) > t.limit {
			return nil, fmt.Errorf("%w: %s with %d items", ErrCapacityExceeded, t, n)
		}
		st, err := expandElements(t.elem, v, t.chunks)
		if err != nil {
			return nil, err
		}
		st.mixin = lengthChunk(uint64(n))
		return st, nil

	case *BitvectorType:
		bits, err := asBits(v)
		if err != nil {
			return nil, err
		}
		if uint64(len(bits)) != t.bits {
			return nil, fmt.Errorf("%w: %s with %d bits", ErrCountMismatch, t, len(bits))
		}
		return &subtree{limit: t.ChunkCount(), leaves: PackBits(bits)}, nil

	case *BitlistType:
		bits, err := asBits(v)
		if err != nil {
			return nil, err
		}
		if uint64(len(bits)) > t.limit {
			return nil, fmt.Errorf("%w: %s with %d bits", ErrCapacityExceeded, t, len(bits))
		}
		return &subtree{limit: t.ChunkCount(), leaves: PackBits(bits), mixin: lengthChunk(uint64(len(bits)))}, nil

	case *UnionType:
		sel, err := t.selection(v)
		if err != nil {
			return nil, err
		}
		mixin := new([32]byte)
		mixin[0] = sel.Selector

		variant := t.variants[sel.Selector]
		if variant == nil {
			return &subtree{limit: 1, leaves: [][32]byte{{}}, mixin: mixin}, nil
		}
		return &subtree{
			limit: 1,
			count: 1,
			child: func(int) (Type, Value) { return variant, sel.Value },
			label: func(int) string { return fmt.Sprintf("selector %d", sel.Selector) },
			mixin: mixin,
		}, nil

	case *ContainerType:
		values, err := t.values(v)
		if err != nil {
			return nil, err
		}
		fields := t.schema.Fields
		return &subtree{
			limit: uint64(len(fields)),
			count: len(fields),
			child: func(i int) (Type, Value) { return fields[i].Type, values[i] },
			label: func(i int) string { return fmt.Sprintf("field %q", fields[i].Name) },
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown type %T", ErrInvalidType, t)
	}
}

// expandElements describes the data tree of a vector or list.
func expandElements(elem Type, v Value, limit uint64) (*subtree, error) {
	if isBasic(elem) {
		chunks, err := Pack(elem, v)
		if err != nil {
			return nil, err
		}
		return &subtree{limit: limit, leaves: chunks}, nil
	}
	items, err := elements(elem, v)
	if err != nil {
		return nil, err
	}
	return &subtree{
		limit: limit,
		count: len(items),
		child: func(i int) (Type, Value) { return elem, items[i] },
		label: indexLabel,
	}, nil
}

// lengthChunk returns the mix-in chunk of a length.
func lengthChunk(n uint64) *[32]byte {
	chunk := new([32]byte)
	binary.LittleEndian.PutUint64(chunk[:], n)
	return chunk
}
