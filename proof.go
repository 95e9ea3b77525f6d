// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"sort"
)

// GetBranchIndices returns the siblings along the path from a node to the root,
// bottom up: the nodes a single-leaf proof consists of.
func GetBranchIndices(index uint64) []uint64 {
	o := []uint64{GeneralizedIndexSibling(index)}
	for o[len(o)-1] > 1 {
		o = append(o, GeneralizedIndexSibling(GeneralizedIndexParent(o[len(o)-1])))
	}
	return o[:len(o)-1]
}

// GetPathIndices returns the node and its ancestors, excluding the root.
func GetPathIndices(index uint64) []uint64 {
	o := []uint64{index}
	for o[len(o)-1] > 1 {
		o = append(o, GeneralizedIndexParent(o[len(o)-1]))
	}
	return o[:len(o)-1]
}

// GetHelperIndices returns the nodes needed to prove a set of leaves, in
// decreasing order: every branch node that is not itself on a leaf's path.
func GetHelperIndices(indices []uint64) []uint64 {
	var (
		helpers = make(map[uint64]struct{})
		paths   = make(map[uint64]struct{})
	)
	for _, index := range indices {
		for _, branch := range GetBranchIndices(index) {
			helpers[branch] = struct{}{}
		}
		for _, path := range GetPathIndices(index) {
			paths[path] = struct{}{}
		}
	}
	o := make([]uint64, 0, len(helpers))
	for index := range helpers {
		if _, ok := paths[index]; !ok {
			o = append(o, index)
		}
	}
	sort.Slice(o, func(i, j int) bool { return o[i] > o[j] })
	return o
}

// CalculateMerkleRoot folds a leaf with its bottom up proof into the root of the
// tree it was taken from.
func CalculateMerkleRoot(leaf [32]byte, proof [][32]byte, index uint64) ([32]byte, error) {
	if index == 0 {
		return [32]byte{}, fmt.Errorf("%w: index 0", ErrInvalidGeneralizedIndex)
	}
	if depth := GetGeneralizedIndexLength(index); len(proof) != depth {
		return [32]byte{}, fmt.Errorf("%w: %d proof items for depth %d", ErrInvalidProof, len(proof), depth)
	}
	for i, h := range proof {
		if GetGeneralizedIndexBit(index, i) {
			leaf = hashPair(h, leaf)
		} else {
			leaf = hashPair(leaf, h)
		}
	}
	return leaf, nil
}

// VerifyMerkleProof checks a single leaf proof against a root.
func VerifyMerkleProof(leaf [32]byte, proof [][32]byte, index uint64, root [32]byte) bool {
	have, err := CalculateMerkleRoot(leaf, proof, index)
	return err == nil && have == root
}

// CalculateMultiMerkleRoot folds a set of leaves and the helper nodes proving
// them (ordered as GetHelperIndices returns them) into a root.
func CalculateMultiMerkleRoot(leaves [][32]byte, proof [][32]byte, indices []uint64) ([32]byte, error) {
	if len(leaves) != len(indices) {
		return [32]byte{}, fmt.Errorf("%w: %d leaves for %d indices", ErrInvalidProof, len(leaves), len(indices))
	}
	helpers := GetHelperIndices(indices)
	if len(proof) != len(helpers) {
		return [32]byte{}, fmt.Errorf("%w: %d proof items, %d needed", ErrInvalidProof, len(proof), len(helpers))
	}
	objects := make(map[uint64][32]byte, len(indices)+len(helpers))
	for i, index := range indices {
		if index == 0 {
			return [32]byte{}, fmt.Errorf("%w: index 0", ErrInvalidGeneralizedIndex)
		}
		objects[index] = leaves[i]
	}
	for i, index := range helpers {
		objects[index] = proof[i]
	}
	keys := make([]uint64, 0, len(objects))
	for index := range objects {
		keys = append(keys, index)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	for pos := 0; pos < len(keys); pos++ {
		k := keys[pos]
		_, self := objects[k]
		_, sibling := objects[k^1]
		_, parent := objects[k/2]
		if self && sibling && !parent {
			objects[k/2] = hashPair(objects[(k|1)^1], objects[k|1])
			keys = append(keys, k/2)
		}
	}
	root, ok := objects[1]
	if !ok {
		return [32]byte{}, fmt.Errorf("%w: proof does not reach the root", ErrInvalidProof)
	}
	return root, nil
}

// Proof is a single leaf Merkle proof.
type Proof struct {
	Index  uint64     // Generalized index of the leaf
	Leaf   [32]byte   // Node being proven
	Branch [][32]byte // Siblings from the leaf up to the root
}

// Verify checks the proof against a root.
func (p *Proof) Verify(root [32]byte) bool {
	return VerifyMerkleProof(p.Leaf, p.Branch, p.Index, root)
}

// Multiproof proves several nodes of the same tree at once.
type Multiproof struct {
	Indices []uint64   // Generalized indices of the leaves
	Leaves  [][32]byte // Nodes being proven
	Hashes  [][32]byte // Helper nodes, in GetHelperIndices order
}

// Verify checks the multiproof against a root.
func (p *Multiproof) Verify(root [32]byte) bool {
	have, err := CalculateMultiMerkleRoot(p.Leaves, p.Hashes, p.Indices)
	return err == nil && have == root
}

// Prove builds the proof of a node of a value's tree using the shared
// Merkleizer.
func Prove(t Type, v Value, index uint64) (*Proof, error) {
	return defaultMerkleizer.Prove(t, v, index)
}

// Prove builds the proof of a node of a value's tree.
func (m *Merkleizer) Prove(t Type, v Value, index uint64) (*Proof, error) {
	branch := GetBranchIndices(index)
	chunks, err := m.GetChunks(t, v, append([]uint64{index}, branch...))
	if err != nil {
		return nil, err
	}
	return &Proof{Index: index, Leaf: chunks[0], Branch: chunks[1:]}, nil
}

// ProveMulti builds a proof of several nodes of a value's tree using the shared
// Merkleizer.
func ProveMulti(t Type, v Value, indices []uint64) (*Multiproof, error) {
	return defaultMerkleizer.ProveMulti(t, v, indices)
}

// ProveMulti builds a proof of several nodes of a value's tree.
func (m *Merkleizer) ProveMulti(t Type, v Value, indices []uint64) (*Multiproof, error) {
	helpers := GetHelperIndices(indices)

	wanted := make([]uint64, 0, len(indices)+len(helpers))
	wanted = append(wanted, indices...)
	wanted = append(wanted, helpers...)

	chunks, err := m.GetChunks(t, v, wanted)
	if err != nil {
		return nil, err
	}
	return &Multiproof{
		Indices: append([]uint64(nil), indices...),
		Leaves:  chunks[:len(indices)],
		Hashes:  chunks[len(indices):],
	}, nil
}
