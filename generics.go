// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "unsafe"

// commonBinaryLengths is a generic type whose purpose is to permit that fixed
// sized binary blobs of different lengths can be bound to byte vectors.
//
// You can add any size to this list really, it's just a limitation of the Go
// generics compiler that it cannot represent arrays of arbitrary sizes with
// one shorthand notation.
type commonBinaryLengths interface {
	// fork version | address | hash | pubkey | signature
	~[4]byte | ~[20]byte | ~[32]byte | ~[48]byte | ~[96]byte
}

// blobOf returns a byte slice aliasing a fixed sized binary blob.
func blobOf[A commonBinaryLengths](blob *A) []byte {
	return unsafe.Slice(&(*blob)[0], len(*blob))
}
