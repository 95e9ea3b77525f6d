// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"sync"
	"sync/atomic"

	"github.com/minio/sha256-simd"
)

// zeroHashes is a lazily grown table of the roots of all-zero subtrees, indexed
// by depth. Readers go through an atomically published snapshot; growth happens
// under a lock, so every depth is hashed at most once for the table's lifetime.
type zeroHashes struct {
	table atomic.Pointer[[][32]byte]
	lock  sync.Mutex

	pair func(a, b [32]byte) [32]byte // Pair hasher override, hashPair if nil
}

// get retrieves the root of an all-zero subtree of the given depth.
func (z *zeroHashes) get(depth int) [32]byte {
	if table := z.table.Load(); table != nil && depth < len(*table) {
		return (*table)[depth]
	}
	z.lock.Lock()
	defer z.lock.Unlock()

	var old [][32]byte
	if table := z.table.Load(); table != nil {
		old = *table
	}
	if depth < len(old) {
		return old[depth]
	}
	table := make([][32]byte, depth+1)
	copy(table, old)

	hash := z.pair
	if hash == nil {
		hash = hashPair
	}
	for d := max(len(old), 1); d <= depth; d++ {
		table[d] = hash(table[d-1], table[d-1])
	}
	z.table.Store(&table)
	return table[depth]
}

// hashPair hashes the concatenation of two chunks.
func hashPair(a, b [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return sha256.Sum256(buf[:])
}
