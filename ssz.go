// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ssz is a descriptor driven SSZ codec and Merkleization engine.
//
// Values are encoded, decoded and hashed against immutable type descriptors,
// either built directly (NewVector, NewContainer, ...), parsed from descriptor
// strings (ParseType) or resolved from registered record schemas (Registry).
package ssz

import (
	"fmt"
	"io"
	"sync"
)

// encoderPool is a pool of SSZ encoders to reuse some tiny internal helpers
// without hitting Go's GC constantly.
var encoderPool = sync.Pool{
	New: func() any {
		return new(Encoder)
	},
}

// Size returns the length of a value's encoding, validating its shape against
// the descriptor on the way.
func Size(t Type, v Value) (uint32, error) {
	return t.Size(v)
}

// Serialize encodes a value into the beginning of buf, returning the number of
// bytes written. The buffer is never resized; if it is too short, nothing is
// written and ErrBufferTooSmall is returned.
func Serialize(t Type, v Value, buf []byte) (int, error) {
	size, err := t.Size(v)
	if err != nil {
		return 0, err
	}
	if uint64(size) > uint64(len(buf)) {
		return 0, fmt.Errorf("%w: buffer %d bytes, object %d bytes", ErrBufferTooSmall, len(buf), size)
	}
	enc := encoderPool.Get().(*Encoder)
	defer encoderPool.Put(enc)

	enc.buf, enc.pos, enc.err = buf[:size], 0, nil
	t.encode(enc, v)

	// Retrieve any errors, zero out the sink and return
	n, err := int(enc.pos), enc.err
	enc.buf, enc.err = nil, nil

	if err != nil {
		return 0, err
	}
	if n != int(size) {
		return 0, fmt.Errorf("%w: encoded %d bytes, sized %d", ErrObjectSlotSizeMismatch, n, size)
	}
	return n, nil
}

// EncodeToBytes is an alias of Serialize that discards the written length.
func EncodeToBytes(buf []byte, t Type, v Value) error {
	_, err := Serialize(t, v, buf)
	return err
}

// Marshal encodes a value into a freshly allocated byte slice.
func Marshal(t Type, v Value) ([]byte, error) {
	size, err := t.Size(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := Serialize(t, v, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeToStream serializes a value into a data stream. Do not use this method
// with a bytes.Buffer to write into a []byte slice, as that will do double the
// byte copying. For that use case, use Marshal instead.
func EncodeToStream(w io.Writer, t Type, v Value) error {
	blob, err := Marshal(t, v)
	if err != nil {
		return err
	}
	_, err = w.Write(blob)
	return err
}

// Deserialize decodes a value from the beginning of buf, returning it along
// with the number of bytes consumed. Fixed size types consume exactly their
// size and ignore anything after it; variable size types consume the entire
// buffer, as their encoding carries no terminator.
func Deserialize(t Type, buf []byte) (Value, int, error) {
	if t.Fixed() && uint64(len(buf)) < uint64(t.FixedSize()) {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrBufferTooSmall, t, t.FixedSize(), len(buf))
	}
	v, n, err := t.decode(buf)
	if err != nil {
		return nil, 0, err
	}
	return v, int(n), nil
}

// DecodeFromBytes parses a value that must span the entire blob.
func DecodeFromBytes(t Type, blob []byte) (Value, error) {
	v, n, err := Deserialize(t, blob)
	if err != nil {
		return nil, err
	}
	if n != len(blob) {
		return nil, fmt.Errorf("%w: decoded %d bytes, blob %d bytes", ErrObjectSlotSizeMismatch, n, len(blob))
	}
	return v, nil
}

// Unmarshal is an alias of DecodeFromBytes.
func Unmarshal(t Type, blob []byte) (Value, error) {
	return DecodeFromBytes(t, blob)
}

// DecodeFromStream parses a value of a known encoded size out of a stream.
func DecodeFromStream(r io.Reader, t Type, size uint32) (Value, error) {
	if t.Fixed() && size != t.FixedSize() {
		return nil, fmt.Errorf("%w: %s is %d bytes, stream slot %d", ErrObjectSlotSizeMismatch, t, t.FixedSize(), size)
	}
	blob := make([]byte, size)
	if _, err := io.ReadFull(r, blob); err != nil {
		return nil, err
	}
	return DecodeFromBytes(t, blob)
}
