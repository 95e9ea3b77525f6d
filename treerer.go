// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"io"
	"strings"
)

// TreeNode is a node of a fully materialized Merkle tree. All-zero subtrees are
// not expanded; such a node has no children and records its height instead.
type TreeNode struct {
	Hash   [32]byte
	Left   *TreeNode
	Right  *TreeNode
	IsLeaf bool

	zeroes int         // Height of the all-zero subtree this node stands for
	merkle *Merkleizer // Zero hash source for nodes below a zero subtree
}

// Tree builds the complete Merkle tree of a value. It is the slow counterpart of
// GetChunks, hashing every node one pair at a time; meant for debugging and for
// cross-checking the partial retrieval.
func (m *Merkleizer) Tree(t Type, v Value) (*TreeNode, error) {
	st, err := expand(t, v)
	if err != nil {
		return nil, err
	}
	var level []*TreeNode
	if st.child != nil {
		for i := 0; i < st.count; i++ {
			ct, cv := st.child(i)
			node, err := m.Tree(ct, cv)
			if err != nil {
				return nil, st.annotate(i, err)
			}
			level = append(level, node)
		}
	} else {
		for _, chunk := range st.leaves {
			level = append(level, &TreeNode{Hash: chunk, IsLeaf: true})
		}
	}
	depth := depthOf(st.limit)

	var root *TreeNode
	if len(level) == 0 {
		root = &TreeNode{Hash: m.ZeroHash(depth), zeroes: depth, merkle: m}
	} else {
		for d := 0; d < depth; d++ {
			if len(level)%2 == 1 {
				level = append(level, &TreeNode{Hash: m.ZeroHash(d), zeroes: d, merkle: m})
			}
			next := make([]*TreeNode, 0, len(level)/2)
			for i := 0; i < len(level); i += 2 {
				next = append(next, &TreeNode{
					Hash:  hashPair(level[i].Hash, level[i+1].Hash),
					Left:  level[i],
					Right: level[i+1],
				})
			}
			level = next
		}
		root = level[0]
	}
	if st.mixin != nil {
		root = &TreeNode{
			Hash:  hashPair(root.Hash, *st.mixin),
			Left:  root,
			Right: &TreeNode{Hash: *st.mixin, IsLeaf: true},
		}
	}
	return root, nil
}

// Get walks down to the node at a generalized index relative to this node.
func (n *TreeNode) Get(index uint64) ([32]byte, error) {
	if index == 0 {
		return [32]byte{}, fmt.Errorf("%w: index 0", ErrInvalidGeneralizedIndex)
	}
	node := n
	for bit := GetGeneralizedIndexLength(index) - 1; bit >= 0; bit-- {
		if node.Left == nil {
			// Below a zero subtree every node is a zero subtree too
			if node.zeroes > bit {
				return node.merkle.ZeroHash(node.zeroes - bit - 1), nil
			}
			return [32]byte{}, fmt.Errorf("%w: %d descends below a leaf", ErrInvalidGeneralizedIndex, index)
		}
		if GetGeneralizedIndexBit(index, bit) {
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return node.Hash, nil
}

// Print writes an indented dump of the tree.
func (n *TreeNode) Print(w io.Writer) {
	n.print(w, 0, 1)
}

func (n *TreeNode) print(w io.Writer, level int, index uint64) {
	indent := strings.Repeat("  ", level)
	switch {
	case n.Left != nil:
		fmt.Fprintf(w, "%s%d: %x\n", indent, index, n.Hash)
		n.Left.print(w, level+1, 2*index)
		n.Right.print(w, level+1, 2*index+1)
	case n.zeroes > 0:
		fmt.Fprintf(w, "%s%d: %x (zero subtree, height %d)\n", indent, index, n.Hash, n.zeroes)
	default:
		fmt.Fprintf(w, "%s%d: %x\n", indent, index, n.Hash)
	}
}
