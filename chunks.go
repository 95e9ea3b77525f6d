// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
)

// GetChunks retrieves the tree nodes at the given generalized indices of a
// value using the shared Merkleizer.
func GetChunks(t Type, v Value, indices []uint64) ([][32]byte, error) {
	return defaultMerkleizer.GetChunks(t, v, indices)
}

// GetChunks retrieves the tree nodes at the given generalized indices of a
// value's Merkle tree. Only the subtrees containing requested nodes are walked
// into; everything else contributes just its root.
func (m *Merkleizer) GetChunks(t Type, v Value, indices []uint64) ([][32]byte, error) {
	for _, index := range indices {
		if index == 0 {
			return nil, fmt.Errorf("%w: index 0", ErrInvalidGeneralizedIndex)
		}
	}
	return m.chunks(t, v, indices)
}

// childRequest is a node wanted from within a composite child: the position in
// the caller's result and the index relative to the child's root.
type childRequest struct {
	pos   int
	index uint64
}

func (m *Merkleizer) chunks(t Type, v Value, indices []uint64) ([][32]byte, error) {
	st, err := expand(t, v)
	if err != nil {
		return nil, err
	}
	var (
		result = make([][32]byte, len(indices))
		depth  = depthOf(st.limit)

		local  []childRequest // Nodes within the local data tree
		mixins []int          // Requests for the mix-in chunk
		roots  []int          // Requests for the root above a mix-in
		nested = make(map[int][]childRequest)
	)
	for pos, index := range indices {
		// Strip the mix-in layer, rebasing the index onto the data tree
		if st.mixin != nil {
			switch index {
			case 1:
				roots = append(roots, pos)
				continue
			case 3:
				mixins = append(mixins, pos)
				continue
			}
			level := GetGeneralizedIndexLength(index)
			if GetGeneralizedIndexBit(index, level-1) {
				return nil, fmt.Errorf("%w: %d descends into the mix-in of %s", ErrInvalidGeneralizedIndex, index, t)
			}
			index -= 1 << (level - 1)
		}
		// Nodes inside the data tree are served from its layers, anything deeper
		// is delegated to the child owning that subtree
		level := GetGeneralizedIndexLength(index)
		if level <= depth {
			local = append(local, childRequest{pos: pos, index: index})
			continue
		}
		shift := level - depth
		leaf := (index >> shift) - (1 << depth)
		if st.child == nil || leaf >= uint64(st.count) {
			return nil, fmt.Errorf("%w: %d below leaf %d of %s", ErrInvalidGeneralizedIndex, indices[pos], leaf, t)
		}
		rel := uint64(1)<<shift | index&(uint64(1)<<shift-1)
		nested[int(leaf)] = append(nested[int(leaf)], childRequest{pos: pos, index: rel})
	}
	// Gather the leaves, recursing into the children that were asked about
	leaves := st.leaves
	if st.child != nil {
		leaves = make([][32]byte, st.count)
		for i := range leaves {
			ct, cv := st.child(i)

			reqs := nested[i]
			if len(reqs) == 0 {
				if leaves[i], err = m.HashTreeRoot(ct, cv); err != nil {
					return nil, st.annotate(i, err)
				}
				continue
			}
			sub := make([]uint64, 1, len(reqs)+1)
			sub[0] = 1
			for _, req := range reqs {
				sub = append(sub, req.index)
			}
			res, err := m.chunks(ct, cv, sub)
			if err != nil {
				return nil, st.annotate(i, err)
			}
			leaves[i] = res[0]
			for j, req := range reqs {
				result[req.pos] = res[j+1]
			}
		}
	}
	levels, err := m.layers(leaves, depth)
	if err != nil {
		return nil, err
	}
	for _, req := range local {
		level := GetGeneralizedIndexLength(req.index)
		result[req.pos] = m.node(levels, level, req.index-(1<<level))
	}
	if st.mixin != nil {
		root := hashPair(m.node(levels, 0, 0), *st.mixin)
		for _, pos := range roots {
			result[pos] = root
		}
		for _, pos := range mixins {
			result[pos] = *st.mixin
		}
	}
	return result, nil
}
