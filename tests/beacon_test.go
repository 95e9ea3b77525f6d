// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package tests

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sszkit/ssz"
	types "github.com/sszkit/ssz/tests/testtypes/consensus-spec-tests"
	"github.com/stretchr/testify/require"
)

// newTestState creates a small beacon state sized for the minimal preset.
func newTestState() *types.BeaconState {
	state := &types.BeaconState{
		GenesisTime: 1606824023,
		Slot:        4096,
		Fork: &types.Fork{
			PreviousVersion: [4]byte{0, 0, 0, 1},
			CurrentVersion:  [4]byte{0, 0, 0, 1},
			Epoch:           512,
		},
		LatestBlockHeader: &types.BeaconBlockHeader{Slot: 4095, ProposerIndex: 3},
		BlockRoots:        make([]types.Hash, 64),
		StateRoots:        make([]types.Hash, 64),
		HistoricalRoots:   []types.Hash{{0xaa}},
		Eth1Data:          &types.Eth1Data{DepositCount: 4},
		Eth1DepositIndex:  4,
		Balances:          []uint64{32e9, 31e9, 33e9, 1},
		RandaoMixes:       make([]types.Hash, 64),
		Slashings:         make([]uint64, 64),
		JustificationBits: []bool{true, true, false, true},
		FinalizedCheckpoint: &types.Checkpoint{
			Epoch: 510,
			Root:  types.Hash{0xfe, 0xed},
		},
	}
	for i := range state.Balances {
		state.Validators = append(state.Validators, &types.Validator{
			Pubkey:           types.BLSPubkey{byte(i)},
			EffectiveBalance: 32e9,
			ExitEpoch:        ^uint64(0),
		})
	}
	state.BlockRoots[63] = types.Hash{0x01}
	state.Slashings[1] = 7

	bits := bitfield.NewBitlist(8)
	bits.SetBitAt(2, true)
	state.CurrentEpochAttestations = []*types.PendingAttestation{{
		AggregationBits: bits,
		Data: &types.AttestationData{
			Slot:   4095,
			Source: &types.Checkpoint{Epoch: 510},
			Target: &types.Checkpoint{Epoch: 511},
		},
		InclusionDelay: 1,
	}}
	return state
}

// Tests that a populated beacon state survives an encode/decode round with the
// same root.
func TestBeaconStateRoundTrip(t *testing.T) {
	typ, err := newTestRegistry(t).Container("BeaconState", ssz.Minimal)
	require.NoError(t, err)
	require.False(t, typ.Fixed())

	state := newTestState()
	blob, err := ssz.Marshal(typ, state)
	require.NoError(t, err)

	size, err := ssz.Size(typ, state)
	require.NoError(t, err)
	require.Equal(t, uint32(len(blob)), size)

	obj, err := ssz.DecodeFromBytes(typ, blob)
	require.NoError(t, err)
	decoded := obj.(*types.BeaconState)
	require.True(t, ssz.Equal(typ, state, decoded))
	require.Equal(t, state.Balances, decoded.Balances)
	require.Equal(t, state.JustificationBits, decoded.JustificationBits)
	require.Equal(t, []byte(state.CurrentEpochAttestations[0].AggregationBits), []byte(decoded.CurrentEpochAttestations[0].AggregationBits))

	want, err := ssz.HashTreeRoot(typ, state)
	require.NoError(t, err)
	have, err := ssz.HashTreeRoot(typ, decoded)
	require.NoError(t, err)
	require.Equal(t, want, have)

	// Any field change must move the root
	decoded.Slashings[1]++
	changed, err := ssz.HashTreeRoot(typ, decoded)
	require.NoError(t, err)
	require.NotEqual(t, want, changed)

	// Vectors must be exactly sized under the resolved preset
	state.RandaoMixes = state.RandaoMixes[:63]
	_, err = ssz.Marshal(typ, state)
	require.ErrorIs(t, err, ssz.ErrCountMismatch)
}

// Tests that the same record resolves to differently shaped descriptors under
// different presets.
func TestBeaconStatePresets(t *testing.T) {
	reg := newTestRegistry(t)

	minimal, err := reg.Container("HistoricalBatch", ssz.Minimal)
	require.NoError(t, err)
	mainnet, err := reg.Container("HistoricalBatch", ssz.Mainnet)
	require.NoError(t, err)

	require.Equal(t, uint32(2*64*32), minimal.FixedSize())
	require.Equal(t, uint32(2*8192*32), mainnet.FixedSize())

	again, err := reg.Container("HistoricalBatch", nil)
	require.NoError(t, err)
	require.Same(t, mainnet, again)
}

// Tests that proofs of individual state fields verify against the state root.
func TestBeaconStateProofs(t *testing.T) {
	typ, err := newTestRegistry(t).Container("BeaconState", ssz.Minimal)
	require.NoError(t, err)

	state := newTestState()
	root, err := ssz.HashTreeRoot(typ, state)
	require.NoError(t, err)

	// Balances are packed four to a chunk
	balanceIdx, err := ssz.GetGeneralizedIndexByPath(typ, "balances", "2")
	require.NoError(t, err)

	var chunk [32]byte
	for i, balance := range state.Balances {
		binary.LittleEndian.PutUint64(chunk[8*i:], balance)
	}
	proof, err := ssz.Prove(typ, state, balanceIdx)
	require.NoError(t, err)
	require.Equal(t, chunk, proof.Leaf)
	require.Len(t, proof.Branch, ssz.GetGeneralizedIndexLength(balanceIdx))
	require.True(t, proof.Verify(root))

	// Nested container fields and list lengths
	finalizedIdx, err := ssz.GetGeneralizedIndexByPath(typ, "finalized_checkpoint", "root")
	require.NoError(t, err)
	lengthIdx, err := ssz.GetGeneralizedIndexByPath(typ, "validators", "__len__")
	require.NoError(t, err)

	chunks, err := ssz.GetChunks(typ, state, []uint64{finalizedIdx, lengthIdx})
	require.NoError(t, err)
	require.Equal(t, [32]byte(state.FinalizedCheckpoint.Root), chunks[0])

	var length [32]byte
	binary.LittleEndian.PutUint64(length[:], uint64(len(state.Validators)))
	require.Equal(t, length, chunks[1])

	// All of the above in a single multiproof
	multi, err := ssz.ProveMulti(typ, state, []uint64{balanceIdx, finalizedIdx, lengthIdx})
	require.NoError(t, err)
	require.True(t, multi.Verify(root))

	multi.Leaves[1][0] ^= 0xff
	require.False(t, multi.Verify(root))

	// The subtree of a validator hashes to the root of the record itself
	validatorIdx, err := ssz.GetGeneralizedIndexByPath(typ, "validators", "1")
	require.NoError(t, err)
	vtyp, err := newTestRegistry(t).Container("Validator", ssz.Minimal)
	require.NoError(t, err)
	vroot, err := ssz.HashTreeRoot(vtyp, state.Validators[1])
	require.NoError(t, err)

	chunks, err = ssz.GetChunks(typ, state, []uint64{validatorIdx})
	require.NoError(t, err)
	require.Equal(t, vroot, chunks[0])
}

// Tests that the execution payload integer and byte fields keep their values
// through the codec, including the 256 bit base fee.
func TestExecutionPayloadRoundTrip(t *testing.T) {
	typ, err := newTestRegistry(t).Container("ExecutionPayload", nil)
	require.NoError(t, err)

	payload := &types.ExecutionPayload{
		FeeRecipient:  types.Address{0xde, 0xad},
		LogsBloom:     bytes.Repeat([]byte{0x11}, 256),
		BlockNumber:   19_000_000,
		GasLimit:      30_000_000,
		ExtraData:     []byte("sszkit"),
		BaseFeePerGas: new(uint256.Int).Lsh(uint256.NewInt(1), 200),
		Transactions:  [][]byte{{0x02, 0xf8}, {}, bytes.Repeat([]byte{0x03}, 100)},
		Withdrawals:   []*types.Withdrawal{{Index: 1, Amount: 2}, {Index: 3, Amount: 4}},
	}
	blob, err := ssz.EncodeSnappy(typ, payload)
	require.NoError(t, err)

	obj, err := ssz.DecodeSnappy(typ, blob)
	require.NoError(t, err)
	decoded := obj.(*types.ExecutionPayload)

	require.Equal(t, payload.BaseFeePerGas, decoded.BaseFeePerGas)
	require.Equal(t, payload.Transactions, decoded.Transactions)
	require.Equal(t, payload.ExtraData, decoded.ExtraData)
	require.Equal(t, payload.Withdrawals, decoded.Withdrawals)

	// Oversized extra data is caught before encoding anything
	payload.ExtraData = make([]byte, 33)
	_, err = ssz.Marshal(typ, payload)
	require.ErrorIs(t, err, ssz.ErrCapacityExceeded)
}

// Tests that a header built from the roots of a payload's lists round trips and
// hashes to the same root as the payload itself.
func TestExecutionPayloadHeaderRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)

	payloadType, err := reg.Container("ExecutionPayload", nil)
	require.NoError(t, err)
	headerType, err := reg.Container("ExecutionPayloadHeader", nil)
	require.NoError(t, err)

	payload := &types.ExecutionPayload{
		ParentHash:    types.Hash{0x01},
		FeeRecipient:  types.Address{0xde, 0xad},
		StateRoot:     types.Hash{0x02},
		ReceiptsRoot:  types.Hash{0x03},
		LogsBloom:     bytes.Repeat([]byte{0x11}, 256),
		PrevRandao:    types.Hash{0x04},
		BlockNumber:   19_000_000,
		GasLimit:      30_000_000,
		GasUsed:       21_000,
		Timestamp:     1_700_000_000,
		ExtraData:     []byte("sszkit"),
		BaseFeePerGas: uint256.NewInt(7),
		BlockHash:     types.Hash{0x05},
		Transactions:  [][]byte{{0x02, 0xf8}, bytes.Repeat([]byte{0x03}, 100)},
		Withdrawals:   []*types.Withdrawal{{Index: 1, Amount: 2}},
	}
	txIndex, err := ssz.GetGeneralizedIndexByPath(payloadType, "transactions")
	require.NoError(t, err)
	wdIndex, err := ssz.GetGeneralizedIndexByPath(payloadType, "withdrawals")
	require.NoError(t, err)

	roots, err := ssz.GetChunks(payloadType, payload, []uint64{txIndex, wdIndex})
	require.NoError(t, err)

	header := &types.ExecutionPayloadHeader{
		ParentHash:       payload.ParentHash,
		FeeRecipient:     payload.FeeRecipient,
		StateRoot:        payload.StateRoot,
		ReceiptsRoot:     payload.ReceiptsRoot,
		LogsBloom:        payload.LogsBloom,
		PrevRandao:       payload.PrevRandao,
		BlockNumber:      payload.BlockNumber,
		GasLimit:         payload.GasLimit,
		GasUsed:          payload.GasUsed,
		Timestamp:        payload.Timestamp,
		ExtraData:        payload.ExtraData,
		BaseFeePerGas:    payload.BaseFeePerGas,
		BlockHash:        payload.BlockHash,
		TransactionsRoot: roots[0],
		WithdrawalsRoot:  roots[1],
	}
	blob, err := ssz.Marshal(headerType, header)
	require.NoError(t, err)
	require.Len(t, blob, 568+len(header.ExtraData))

	obj, err := ssz.DecodeFromBytes(headerType, blob)
	require.NoError(t, err)
	require.Equal(t, header, obj.(*types.ExecutionPayloadHeader))

	payloadRoot, err := ssz.HashTreeRoot(payloadType, payload)
	require.NoError(t, err)
	headerRoot, err := ssz.HashTreeRoot(headerType, obj)
	require.NoError(t, err)
	require.Equal(t, payloadRoot, headerRoot)
}
