// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"

	"github.com/golang/snappy"
)

// EncodeSnappy serializes a value and compresses it with the snappy block
// format, the "ssz_snappy" framing used by consensus test vectors.
func EncodeSnappy(t Type, v Value) ([]byte, error) {
	blob, err := Marshal(t, v)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, blob), nil
}

// DecodeSnappy decompresses an ssz_snappy blob and decodes the value inside,
// which must span the entire decompressed payload. The announced payload size
// is checked against the descriptor before anything is inflated.
func DecodeSnappy(t Type, blob []byte) (Value, error) {
	size, err := snappy.DecodedLen(blob)
	if err != nil {
		return nil, fmt.Errorf("snappy: %w", err)
	}
	if t.Fixed() && uint64(size) != uint64(t.FixedSize()) {
		return nil, fmt.Errorf("%w: %s is %d bytes, payload %d", ErrObjectSlotSizeMismatch, t, t.FixedSize(), size)
	}
	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return nil, fmt.Errorf("snappy: %w", err)
	}
	return DecodeFromBytes(t, raw)
}
