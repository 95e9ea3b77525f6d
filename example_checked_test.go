// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz_test

import (
	"errors"
	"fmt"

	"github.com/sszkit/ssz"
)

type WithdrawalChecked struct {
	Index     uint64
	Validator uint64
	Address   []byte
	Amount    uint64
}

var WithdrawalCheckedSchema = ssz.Define("WithdrawalChecked", func(b *ssz.Builder[WithdrawalChecked]) {
	ssz.DefineField(b, "index", "uint64", func(w *WithdrawalChecked) *uint64 { return &w.Index })              // Field (0) - Index          -  8 bytes
	ssz.DefineField(b, "validator_index", "uint64", func(w *WithdrawalChecked) *uint64 { return &w.Validator }) // Field (1) - ValidatorIndex -  8 bytes
	ssz.DefineField(b, "address", "Vector[uint8, 20]", func(w *WithdrawalChecked) *[]byte { return &w.Address }) // Field (2) - Address        - 20 bytes
	ssz.DefineField(b, "amount", "uint64", func(w *WithdrawalChecked) *uint64 { return &w.Amount })            // Field (3) - Amount         -  8 bytes
})

func ExampleDeserialize() {
	reg := ssz.NewRegistry()
	reg.Register("WithdrawalChecked", WithdrawalCheckedSchema)

	typ, err := reg.Container("WithdrawalChecked", nil)
	if err != nil {
		panic(err)
	}
	// A fixed size record consumes its own size and leaves the rest alone
	blob := make([]byte, 50)
	obj, n, err := ssz.Deserialize(typ, blob)
	if err != nil {
		panic(err)
	}
	fmt.Printf("consumed: %d, address: %d bytes\n", n, len(obj.(*WithdrawalChecked).Address))

	// Decoding from a standalone blob requires it to be fully consumed
	_, err = ssz.DecodeFromBytes(typ, blob)
	fmt.Println("oversized:", errors.Is(err, ssz.ErrObjectSlotSizeMismatch))

	_, err = ssz.DecodeFromBytes(typ, blob[:43])
	fmt.Println("undersized:", errors.Is(err, ssz.ErrBufferTooSmall))

	// Short addresses are caught when sizing, before anything is written
	_, err = ssz.Marshal(typ, &WithdrawalChecked{Address: []byte{1, 2, 3}})
	fmt.Println("bad address:", errors.Is(err, ssz.ErrCountMismatch))
	// Output:
	// consumed: 44, address: 20 bytes
	// oversized: true
	// undersized: true
	// bad address: true
}
