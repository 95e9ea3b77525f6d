// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "errors"

// ErrUnsupportedWidth is returned when an integer type is requested with a bit
// width outside of {8, 16, 32, 64, 128, 256}.
var ErrUnsupportedWidth = errors.New("ssz: unsupported integer width")

// ErrInvalidType is returned when a type descriptor is constructed with invalid
// parameters (zero length vectors, misplaced none variants, etc).
var ErrInvalidType = errors.New("ssz: invalid type")

// ErrValueMismatch is returned when a value does not have the shape required by
// its type descriptor, or a numeric conversion would lose precision.
var ErrValueMismatch = errors.New("ssz: value does not match type")

// ErrBufferTooSmall is returned from encoding if the provided output byte buffer
// is too small to hold the encoding of the object, or from decoding if fewer
// bytes are available than a fixed size read requires.
var ErrBufferTooSmall = errors.New("ssz: output buffer too small")

// ErrOffsetOutOfRange is returned when an offset is parsed, and is larger than
// the total size of the enclosing value.
var ErrOffsetOutOfRange = errors.New("ssz: offset out of range")

// ErrOffsetRegression is returned when an offset is parsed, and is smaller than
// a previously seen offset (meaning negative dynamic data size).
var ErrOffsetRegression = errors.New("ssz: offset smaller than previous")

// ErrOffsetGap is returned when the bytes consumed by a dynamic item do not end
// exactly where the next item (or the enclosing value) starts.
var ErrOffsetGap = errors.New("ssz: offset gap")

// ErrCapacityExceeded is returned when the number of items in a list or bitlist
// is larger than permitted.
var ErrCapacityExceeded = errors.New("ssz: maximum item count exceeded")

// ErrCountMismatch is returned when the number of items in a vector or bitvector
// does not match its declared length.
var ErrCountMismatch = errors.New("ssz: item count mismatch")

// ErrUnrecognizedSelector is returned when a union selector is out of range, or
// references a none variant with a non-zero value.
var ErrUnrecognizedSelector = errors.New("ssz: unrecognized union selector")

// ErrMalformedBitlist is returned when a bitlist has no length bit, or the length
// bit lies beyond the permitted capacity.
var ErrMalformedBitlist = errors.New("ssz: malformed bitlist")


// ErrBadCounterOffset is returned when a list of offsets are consumed and the
// first offset is not a multiple of 4-bytes.
var ErrBadCounterOffset = errors.New("ssz: counter offset not multiple of 4-bytes")

// ErrDynamicStaticsIndivisible is returned when a list of static objects is to
// be decoded, but the list's total length is not divisible by the item size.
var ErrDynamicStaticsIndivisible = errors.New("ssz: list of fixed objects not divisible")

// ErrObjectSlotSizeMismatch is returned when decoding an object and the number
// of bytes consumed does not match the size of the input.
var ErrObjectSlotSizeMismatch = errors.New("ssz: object didn't consume all designated data")

// ErrMaxLengthExceeded is returned when the size calculated for a value does not
// fit into the 4 byte offsets of the format.
var ErrMaxLengthExceeded = errors.New("ssz: maximum item size exceeded")

// ErrSchemaResolution is returned when a symbolic capacity or a nested record
// type cannot be resolved while constructing a type descriptor.
var ErrSchemaResolution = errors.New("ssz: schema resolution failed")

// ErrInvalidGeneralizedIndex is returned when a generalized index does not
// address a node of the value's Merkle tree.
var ErrInvalidGeneralizedIndex = errors.New("ssz: invalid generalized index")

// ErrIndexOverflow is returned when a path descends deeper than a 64 bit
// generalized index can address.
var ErrIndexOverflow = errors.New("ssz: generalized index overflow")

// ErrInvalidProof is returned when a proof's shape does not fit the indices it
// is supposed to prove.
var ErrInvalidProof = errors.New("ssz: invalid proof")
