// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
	"sync/atomic"
	"testing"
)

// sum hashes two chunks with the standard library, independent of the hashers
// used by the package.
func sum(a, b [32]byte) [32]byte {
	return sha256.Sum256(append(a[:], b[:]...))
}

func chunkOf(blob ...byte) [32]byte {
	var chunk [32]byte
	copy(chunk[:], blob)
	return chunk
}

func lengthOf(n uint64) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[:], n)
	return chunk
}

// Tests hash tree roots against manually assembled trees.
func TestHashTreeRoot(t *testing.T) {
	t.Parallel()

	var (
		zero  [32]byte
		zero1 = sum(zero, zero)
		zero2 = sum(zero1, zero1)
	)
	container := Must(NewContainer("Triple",
		NamedType{"a", Uint64Type},
		NamedType{"b", ByteListType(64)},
		NamedType{"c", BoolType},
	))
	tests := []struct {
		name  string
		typ   Type
		value Value
		root  [32]byte
	}{
		{"bool", BoolType, Bool(true), chunkOf(1)},
		{"uint64", Uint64Type, NewUint64(5), chunkOf(5)},
		{"bytes32", BytesType(32), Bytes(make([]byte, 32)), zero},
		{"bytes48", BytesType(48), Bytes(make([]byte, 48)), zero1},
		{"vector-uint64", Must(NewVector(Uint64Type, 5)), Sequence{NewUint64(1), NewUint64(2), NewUint64(3), NewUint64(4), NewUint64(5)},
			sum(chunkOf(1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 4), chunkOf(5))},
		{"list-empty-small", Must(NewList(Uint64Type, 4)), Sequence{}, sum(zero, lengthOf(0))},
		{"list-empty", Must(NewList(Uint64Type, 16)), Sequence{}, sum(zero2, lengthOf(0))},
		{"list-uint64", Must(NewList(Uint64Type, 16)), Sequence{NewUint64(1)}, sum(sum(sum(chunkOf(1), zero), zero1), lengthOf(1))},
		{"bitvector", Must(NewBitvector(10)), bitsOf(10, 0, 9), chunkOf(0x01, 0x02)},
		{"bitlist", NewBitlist(512), bitsOf(3, 1), sum(sum(chunkOf(0x02), zero), lengthOf(3))},
		{"union-none", Must(NewUnion(nil, Uint32Type)), Selection{}, sum(zero, zero)},
		{"union-value", Must(NewUnion(nil, Uint32Type)), Selection{Selector: 1, Value: NewUint32(9)}, sum(chunkOf(9), chunkOf(1))},
		{"container", container, &Record{Values: []Value{NewUint64(7), Bytes{0xaa}, Bool(true)}},
			sum(sum(chunkOf(7), sum(sum(chunkOf(0xaa), zero), lengthOf(1))), sum(chunkOf(1), zero))},
	}
	for _, tt := range tests {
		root, err := HashTreeRoot(tt.typ, tt.value)
		if err != nil {
			t.Errorf("%s: failed to hash: %v", tt.name, err)
			continue
		}
		if root != tt.root {
			t.Errorf("%s: root mismatch: have %x, want %x", tt.name, root, tt.root)
		}
	}
}

// Tests that merkleizing against a limit pads to the next power of two.
func TestMerkleizeLimits(t *testing.T) {
	t.Parallel()

	m := NewMerkleizer()
	chunks := [][32]byte{chunkOf(1), chunkOf(2), chunkOf(3)}

	root, err := m.Merkleize(chunks, 0)
	if err != nil {
		t.Fatalf("failed to merkleize: %v", err)
	}
	if want := sum(sum(chunkOf(1), chunkOf(2)), sum(chunkOf(3), [32]byte{})); root != want {
		t.Fatalf("root mismatch: have %x, want %x", root, want)
	}
	root, err = m.Merkleize(chunks, 5)
	if err != nil {
		t.Fatalf("failed to merkleize: %v", err)
	}
	if want := sum(sum(sum(chunkOf(1), chunkOf(2)), sum(chunkOf(3), [32]byte{})), m.ZeroHash(2)); root != want {
		t.Fatalf("root mismatch: have %x, want %x", root, want)
	}
	if _, err := m.Merkleize(chunks, 2); err == nil {
		t.Fatalf("merkleized more chunks than the limit")
	}
	if root, _ := m.Merkleize(nil, 8); root != m.ZeroHash(3) {
		t.Fatalf("empty root mismatch: have %x, want %x", root, m.ZeroHash(3))
	}
}

// Tests that concurrent zero hash lookups compute every depth exactly once.
func TestZeroHashesConcurrent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	m := NewMerkleizer()
	m.zeroes.pair = func(a, b [32]byte) [32]byte {
		calls.Add(1)
		return hashPair(a, b)
	}
	var (
		wg    sync.WaitGroup
		roots = make([][32]byte, 32)
	)
	for i := 0; i < len(roots); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			roots[i] = m.ZeroHash(9 + i)
		}(i)
	}
	wg.Wait()

	if computed := calls.Load(); computed != 40 {
		t.Fatalf("zero hashes computed %d times, want 40", computed)
	}
	want := [32]byte{}
	for d := 0; d <= 40; d++ {
		if have := m.ZeroHash(d); have != want {
			t.Fatalf("zero hash %d mismatch: have %x, want %x", d, have, want)
		}
		want = sum(want, want)
	}
	if computed := calls.Load(); computed != 40 {
		t.Fatalf("cached lookups recomputed hashes: %d", computed)
	}
}

// Tests that nodes below a zero subtree are served from the zero hash cache.
func TestTreeZeroSubtreeLookups(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	m := NewMerkleizer()
	m.zeroes.pair = func(a, b [32]byte) [32]byte {
		calls.Add(1)
		return hashPair(a, b)
	}
	typ := Must(NewList(Uint64Type, 1<<20))
	tree, err := m.Tree(typ, Sequence{})
	if err != nil {
		t.Fatalf("failed to build tree: %v", err)
	}
	warm := calls.Load()
	if warm != 18 {
		t.Fatalf("zero hashes computed %d times, want 18", warm)
	}
	for k := 0; k <= 18; k++ {
		have, err := tree.Get(uint64(2) << k)
		if err != nil {
			t.Fatalf("depth %d: failed to get node: %v", k, err)
		}
		if want := m.ZeroHash(18 - k); have != want {
			t.Fatalf("depth %d: node mismatch: have %x, want %x", k, have, want)
		}
	}
	if calls.Load() != warm {
		t.Fatalf("zero subtree lookups rehashed: %d calls, want %d", calls.Load(), warm)
	}
	if _, err := tree.Get(uint64(2) << 19); err == nil {
		t.Fatalf("descended below the data leaves")
	}
}

// hashingFixture is a value with lists, nested containers, bit sequences and
// a union, exercising every shape of the tree walkers.
func hashingFixture(t *testing.T) (Type, Value) {
	t.Helper()

	inner := Must(NewContainer("Inner",
		NamedType{"x", Uint32Type},
		NamedType{"y", ByteListType(40)},
	))
	outer := Must(NewContainer("Outer",
		NamedType{"slot", Uint64Type},
		NamedType{"roots", Must(NewVector(BytesType(32), 3))},
		NamedType{"balances", Must(NewList(Uint64Type, 64))},
		NamedType{"inners", Must(NewList(inner, 8))},
		NamedType{"flags", NewBitlist(300)},
		NamedType{"choice", Must(NewUnion(nil, inner, Uint16Type))},
	))
	value := &Record{Values: []Value{
		NewUint64(42),
		Sequence{Bytes(make([]byte, 32)), Bytes(append(make([]byte, 31), 1)), Bytes(make([]byte, 32))},
		Sequence{NewUint64(1), NewUint64(2), NewUint64(3), NewUint64(4), NewUint64(5)},
		Sequence{
			&Record{Values: []Value{NewUint32(1), Bytes{1, 2, 3}}},
			&Record{Values: []Value{NewUint32(2), Bytes(make([]byte, 40))}},
			&Record{Values: []Value{NewUint32(3), Bytes{}}},
		},
		bitsOf(270, 0, 100, 269),
		Selection{Selector: 1, Value: &Record{Values: []Value{NewUint32(9), Bytes{9}}}},
	}}
	return outer, value
}

// collectNodes gathers the generalized index and hash of every materialized
// node of a tree.
func collectNodes(n *TreeNode, index uint64, nodes map[uint64][32]byte) {
	nodes[index] = n.Hash
	if n.Left != nil {
		collectNodes(n.Left, 2*index, nodes)
		collectNodes(n.Right, 2*index+1, nodes)
	}
}

// Tests that partial retrieval of tree nodes matches the fully built tree.
func TestGetChunksMatchesTree(t *testing.T) {
	t.Parallel()

	typ, value := hashingFixture(t)
	m := NewMerkleizer()

	tree, err := m.Tree(typ, value)
	if err != nil {
		t.Fatalf("failed to build tree: %v", err)
	}
	root, err := m.HashTreeRoot(typ, value)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	if tree.Hash != root {
		t.Fatalf("tree root mismatch: have %x, want %x", tree.Hash, root)
	}
	nodes := make(map[uint64][32]byte)
	collectNodes(tree, 1, nodes)

	// Query every node one by one and all of them at once
	var (
		indices []uint64
		hashes  [][32]byte
	)
	for index, hash := range nodes {
		indices = append(indices, index)
		hashes = append(hashes, hash)

		chunks, err := m.GetChunks(typ, value, []uint64{index})
		if err != nil {
			t.Fatalf("failed to retrieve node %d: %v", index, err)
		}
		if chunks[0] != hash {
			t.Errorf("node %d mismatch: have %x, want %x", index, chunks[0], hash)
		}
		if have, err := tree.Get(index); err != nil || have != hash {
			t.Errorf("tree node %d mismatch: have %x (%v), want %x", index, have, err, hash)
		}
	}
	chunks, err := m.GetChunks(typ, value, indices)
	if err != nil {
		t.Fatalf("failed to retrieve nodes: %v", err)
	}
	for i := range indices {
		if chunks[i] != hashes[i] {
			t.Errorf("batched node %d mismatch: have %x, want %x", indices[i], chunks[i], hashes[i])
		}
	}
	if _, err := m.GetChunks(typ, value, []uint64{0}); err == nil {
		t.Errorf("retrieved node 0")
	}
}

// Tests that the roots of nested values show up at their generalized indices.
func TestGetChunksByPath(t *testing.T) {
	t.Parallel()

	typ, value := hashingFixture(t)
	fields := value.(*Record).Values

	paths := []struct {
		path  []string
		typ   Type
		value Value
	}{
		{[]string{"slot"}, Uint64Type, fields[0]},
		{[]string{"roots", "1"}, BytesType(32), fields[1].(Sequence)[1]},
		{[]string{"balances", "__len__"}, Uint64Type, NewUint64(5)},
		{[]string{"inners", "1"}, typ.(*ContainerType).Fields()[3].Type.(*ListType).Elem(), fields[3].(Sequence)[1]},
		{[]string{"inners", "2", "y"}, ByteListType(40), Bytes{}},
		{[]string{"inners", "__len__"}, Uint64Type, NewUint64(3)},
		{[]string{"flags", "__len__"}, Uint64Type, NewUint64(270)},
	}
	for _, p := range paths {
		index, err := GetGeneralizedIndexByPath(typ, p.path...)
		if err != nil {
			t.Fatalf("%v: failed to resolve path: %v", p.path, err)
		}
		want, err := HashTreeRoot(p.typ, p.value)
		if err != nil {
			t.Fatalf("%v: failed to hash: %v", p.path, err)
		}
		chunks, err := GetChunks(typ, value, []uint64{index})
		if err != nil {
			t.Fatalf("%v: failed to retrieve node %d: %v", p.path, index, err)
		}
		if chunks[0] != want {
			t.Errorf("%v: node %d mismatch: have %x, want %x", p.path, index, chunks[0], want)
		}
	}
}

// Tests that single and multi proofs verify against the value's root and fail
// when tampered with.
func TestProofs(t *testing.T) {
	t.Parallel()

	typ, value := hashingFixture(t)
	root, err := HashTreeRoot(typ, value)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	var indices []uint64
	for _, path := range [][]string{{"slot"}, {"roots", "2"}, {"balances", "4"}, {"inners", "0", "y"}, {"flags", "__len__"}} {
		index, err := GetGeneralizedIndexByPath(typ, path...)
		if err != nil {
			t.Fatalf("%v: failed to resolve path: %v", path, err)
		}
		indices = append(indices, index)

		proof, err := Prove(typ, value, index)
		if err != nil {
			t.Fatalf("%v: failed to prove: %v", path, err)
		}
		if len(proof.Branch) != GetGeneralizedIndexLength(index) {
			t.Errorf("%v: branch length mismatch: have %d, want %d", path, len(proof.Branch), GetGeneralizedIndexLength(index))
		}
		if !proof.Verify(root) {
			t.Errorf("%v: valid proof rejected", path)
		}
		proof.Leaf[0] ^= 1
		if proof.Verify(root) {
			t.Errorf("%v: tampered proof accepted", path)
		}
		if _, err := CalculateMerkleRoot(proof.Leaf, proof.Branch[1:], index); err == nil {
			t.Errorf("%v: short proof accepted", path)
		}
	}
	multi, err := ProveMulti(typ, value, indices)
	if err != nil {
		t.Fatalf("failed to prove multiple nodes: %v", err)
	}
	if len(multi.Hashes) != len(GetHelperIndices(indices)) {
		t.Errorf("helper count mismatch: have %d, want %d", len(multi.Hashes), len(GetHelperIndices(indices)))
	}
	if !multi.Verify(root) {
		t.Errorf("valid multiproof rejected")
	}
	multi.Hashes[0][0] ^= 1
	if multi.Verify(root) {
		t.Errorf("tampered multiproof accepted")
	}
}
