// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package consensus_spec_tests

import (
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sszkit/ssz"
)

//go:generate go run ../../../cmd/sszgen -o gen_ssz.go

type SingleFieldTestStruct struct {
	A byte
}

type SmallTestStruct struct {
	A uint16
	B uint16
}

type FixedTestStruct struct {
	A uint8
	B uint64
	C uint32
}

type VarTestStruct struct {
	A uint16
	B ssz.Value `ssz:"List[uint16, 1024]"`
	C uint8
}

type ComplexTestStruct struct {
	A uint16
	B ssz.Value `ssz:"List[uint16, 128]"`
	C uint8
	D []byte             `ssz-max:"256"`
	E *VarTestStruct
	F []*FixedTestStruct `ssz-size:"4"`
	G []*VarTestStruct   `ssz-size:"2"`
}

type BitsStruct struct {
	A bitfield.Bitlist `ssz-max:"5"`
	B []bool           `ssz-size:"2"`
	C []bool           `ssz-size:"1"`
	D bitfield.Bitlist `ssz-max:"6"`
	E []bool           `ssz-size:"8"`
}
