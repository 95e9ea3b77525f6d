// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package tests

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sszkit/ssz"
	types "github.com/sszkit/ssz/tests/testtypes/consensus-spec-tests"
	"github.com/stretchr/testify/require"
)

func roll(n int, r *rand.Rand) int {
	k := r.Intn(n)
	if k%2 == 0 {
		return 0
	}
	return k
}

func rbytes(n int, r *rand.Rand) []byte {
	rbs := make([]byte, n)
	if n > 0 && r.Intn(n)%2 == 0 {
		r.Read(rbs)
	}
	return rbs
}

type randomPayload struct {
	types.ExecutionPayload
}

func (p *randomPayload) Generate(r *rand.Rand, _ int) reflect.Value {
	p = &randomPayload{}
	p.ParentHash = types.Hash(rbytes(32, r))
	p.FeeRecipient = types.Address(rbytes(20, r))
	p.LogsBloom = rbytes(256, r)
	p.BlockNumber = r.Uint64()
	p.GasLimit = r.Uint64()
	p.ExtraData = rbytes(roll(33, r), r)
	p.BaseFeePerGas = new(uint256.Int).SetBytes(rbytes(32, r))

	p.Transactions = make([][]byte, roll(8, r))
	for i := range p.Transactions {
		p.Transactions[i] = rbytes(1+roll(512, r), r)
	}
	p.Withdrawals = make([]*types.Withdrawal, roll(16, r))
	for i := range p.Withdrawals {
		p.Withdrawals[i] = &types.Withdrawal{
			Index:          r.Uint64(),
			ValidatorIndex: r.Uint64(),
			Address:        types.Address(rbytes(20, r)),
			Amount:         r.Uint64(),
		}
	}
	return reflect.ValueOf(p)
}

type randomAttestation struct {
	types.Attestation
}

func (a *randomAttestation) Generate(r *rand.Rand, _ int) reflect.Value {
	a = &randomAttestation{}
	a.AggregationBits = bitfield.NewBitlist(uint64(roll(2048, r)))
	for i := uint64(0); i < a.AggregationBits.Len(); i++ {
		a.AggregationBits.SetBitAt(i, r.Intn(2) == 1)
	}
	a.Data = &types.AttestationData{
		Slot:            r.Uint64(),
		Index:           r.Uint64(),
		BeaconBlockRoot: types.Hash(rbytes(32, r)),
		Source:          &types.Checkpoint{Epoch: r.Uint64(), Root: types.Hash(rbytes(32, r))},
		Target:          &types.Checkpoint{Epoch: r.Uint64(), Root: types.Hash(rbytes(32, r))},
	}
	a.Signature = types.BLSSignature(rbytes(96, r))
	return reflect.ValueOf(a)
}

// Tests that random payloads survive an encode/decode round with the same root.
func TestRandomizedPayloads(t *testing.T) {
	typ, err := newTestRegistry(t).Container("ExecutionPayload", nil)
	require.NoError(t, err)

	roundtrip := func(p *randomPayload) bool {
		blob, err := ssz.Marshal(typ, &p.ExecutionPayload)
		if err != nil {
			t.Logf("failed to encode: %v", err)
			return false
		}
		obj, err := ssz.DecodeFromBytes(typ, blob)
		if err != nil {
			t.Logf("failed to decode: %v", err)
			return false
		}
		want, _ := ssz.HashTreeRoot(typ, &p.ExecutionPayload)
		have, _ := ssz.HashTreeRoot(typ, obj)
		return want == have && ssz.Equal(typ, &p.ExecutionPayload, obj)
	}
	require.NoError(t, quick.Check(roundtrip, &quick.Config{MaxCount: 64}))
}

// Tests that random attestations survive an encode/decode round, and that the
// generalized index of the aggregation bits proves the packed bits.
func TestRandomizedAttestations(t *testing.T) {
	typ, err := newTestRegistry(t).Container("Attestation", nil)
	require.NoError(t, err)

	index, err := ssz.GetGeneralizedIndexByPath(typ, "aggregation_bits", "__len__")
	require.NoError(t, err)

	roundtrip := func(a *randomAttestation) bool {
		blob, err := ssz.Marshal(typ, &a.Attestation)
		if err != nil {
			return false
		}
		obj, err := ssz.DecodeFromBytes(typ, blob)
		if err != nil {
			return false
		}
		decoded := obj.(*types.Attestation)
		if decoded.AggregationBits.Len() != a.AggregationBits.Len() {
			return false
		}
		root, err := ssz.HashTreeRoot(typ, decoded)
		if err != nil {
			return false
		}
		proof, err := ssz.Prove(typ, &a.Attestation, index)
		if err != nil {
			return false
		}
		var length [32]byte
		length[0], length[1] = byte(a.AggregationBits.Len()), byte(a.AggregationBits.Len()>>8)
		return proof.Leaf == length && proof.Verify(root)
	}
	require.NoError(t, quick.Check(roundtrip, &quick.Config{MaxCount: 64}))
}
