// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package consensus_spec_tests

import (
	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

type Hash [32]byte
type Address [20]byte
type BLSPubkey [48]byte
type BLSSignature [96]byte

type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           uint64
}

type Checkpoint struct {
	Epoch uint64
	Root  Hash
}

type AttestationData struct {
	Slot            uint64
	Index           uint64
	BeaconBlockRoot Hash
	Source          *Checkpoint
	Target          *Checkpoint
}

type IndexedAttestation struct {
	AttestingIndices []uint64 `ssz-max:"MAX_VALIDATORS_PER_COMMITTEE"`
	Data             *AttestationData
	Signature        BLSSignature
}

type Attestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"MAX_VALIDATORS_PER_COMMITTEE"`
	Data            *AttestationData
	Signature       BLSSignature
}

type PendingAttestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"MAX_VALIDATORS_PER_COMMITTEE"`
	Data            *AttestationData
	InclusionDelay  uint64
	ProposerIndex   uint64
}

type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}

type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    Hash
	StateRoot     Hash
	BodyRoot      Hash
}

type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature BLSSignature
}

type ProposerSlashing struct {
	SignedHeader1 *SignedBeaconBlockHeader
	SignedHeader2 *SignedBeaconBlockHeader
}

type Eth1Data struct {
	DepositRoot  Hash
	DepositCount uint64
	BlockHash    Hash
}

type DepositData struct {
	Pubkey                BLSPubkey
	WithdrawalCredentials Hash
	Amount                uint64
	Signature             BLSSignature
}

type DepositMessage struct {
	Pubkey                BLSPubkey
	WithdrawalCredentials Hash
	Amount                uint64
}

type Deposit struct {
	Proof []Hash `ssz-size:"DEPOSIT_PROOF_LENGTH"`
	Data  *DepositData
}

type VoluntaryExit struct {
	Epoch          uint64
	ValidatorIndex uint64
}

type SignedVoluntaryExit struct {
	Message   *VoluntaryExit
	Signature BLSSignature
}

type Validator struct {
	Pubkey                     BLSPubkey
	WithdrawalCredentials      Hash
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch uint64
	ActivationEpoch            uint64
	ExitEpoch                  uint64
	WithdrawableEpoch          uint64
}

type HistoricalBatch struct {
	BlockRoots []Hash `ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
	StateRoots []Hash `ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
}

type HistoricalSummary struct {
	BlockSummaryRoot Hash
	StateSummaryRoot Hash
}

type SyncCommittee struct {
	Pubkeys         []BLSPubkey `ssz-size:"SYNC_COMMITTEE_SIZE"`
	AggregatePubkey BLSPubkey
}

type SyncAggregate struct {
	SyncCommitteeBits      []bool `ssz-size:"SYNC_COMMITTEE_SIZE"`
	SyncCommitteeSignature BLSSignature
}

type Withdrawal struct {
	Index          uint64
	ValidatorIndex uint64
	Address        Address
	Amount         uint64
}

type BLSToExecutionChange struct {
	ValidatorIndex     uint64
	FromBLSPubkey      BLSPubkey `ssz-name:"from_bls_pubkey"`
	ToExecutionAddress Address
}

type SignedBLSToExecutionChange struct {
	Message   *BLSToExecutionChange
	Signature BLSSignature
}

type ExecutionPayload struct {
	ParentHash    Hash
	FeeRecipient  Address
	StateRoot     Hash
	ReceiptsRoot  Hash
	LogsBloom     []byte `ssz-size:"BYTES_PER_LOGS_BLOOM"`
	PrevRandao    Hash
	BlockNumber   uint64
	GasLimit      uint64
	GasUsed       uint64
	Timestamp     uint64
	ExtraData     []byte       `ssz-max:"MAX_EXTRA_DATA_BYTES"`
	BaseFeePerGas *uint256.Int
	BlockHash     Hash
	Transactions  [][]byte      `ssz-max:"MAX_TRANSACTIONS_PER_PAYLOAD,MAX_BYTES_PER_TRANSACTION"`
	Withdrawals   []*Withdrawal `ssz-max:"MAX_WITHDRAWALS_PER_PAYLOAD"`
}

type ExecutionPayloadHeader struct {
	ParentHash       Hash
	FeeRecipient     Address
	StateRoot        Hash
	ReceiptsRoot     Hash
	LogsBloom        []byte `ssz-size:"BYTES_PER_LOGS_BLOOM"`
	PrevRandao       Hash
	BlockNumber      uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte `ssz-max:"MAX_EXTRA_DATA_BYTES"`
	BaseFeePerGas    *uint256.Int
	BlockHash        Hash
	TransactionsRoot Hash
	WithdrawalsRoot  Hash
}

type BeaconBlockBody struct {
	RandaoReveal      BLSSignature
	Eth1Data          *Eth1Data
	Graffiti          Hash
	ProposerSlashings []*ProposerSlashing    `ssz-max:"MAX_PROPOSER_SLASHINGS"`
	AttesterSlashings []*AttesterSlashing    `ssz-max:"MAX_ATTESTER_SLASHINGS"`
	Attestations      []*Attestation         `ssz-max:"MAX_ATTESTATIONS"`
	Deposits          []*Deposit             `ssz-max:"MAX_DEPOSITS"`
	VoluntaryExits    []*SignedVoluntaryExit `ssz-max:"MAX_VOLUNTARY_EXITS"`
}

type BeaconBlock struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    Hash
	StateRoot     Hash
	Body          *BeaconBlockBody
}

type BeaconState struct {
	GenesisTime                 uint64
	GenesisValidatorsRoot       Hash
	Slot                        uint64
	Fork                        *Fork
	LatestBlockHeader           *BeaconBlockHeader
	BlockRoots                  []Hash                `ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
	StateRoots                  []Hash                `ssz-size:"SLOTS_PER_HISTORICAL_ROOT"`
	HistoricalRoots             []Hash                `ssz-max:"HISTORICAL_ROOTS_LIMIT"`
	Eth1Data                    *Eth1Data
	Eth1DataVotes               []*Eth1Data           `ssz-max:"EPOCHS_PER_ETH1_VOTING_PERIOD*SLOTS_PER_EPOCH"`
	Eth1DepositIndex            uint64
	Validators                  []*Validator          `ssz-max:"VALIDATOR_REGISTRY_LIMIT"`
	Balances                    []uint64              `ssz-max:"VALIDATOR_REGISTRY_LIMIT"`
	RandaoMixes                 []Hash                `ssz-size:"EPOCHS_PER_HISTORICAL_VECTOR"`
	Slashings                   []uint64              `ssz-size:"EPOCHS_PER_SLASHINGS_VECTOR"`
	PreviousEpochAttestations   []*PendingAttestation `ssz-max:"MAX_ATTESTATIONS*SLOTS_PER_EPOCH"`
	CurrentEpochAttestations    []*PendingAttestation `ssz-max:"MAX_ATTESTATIONS*SLOTS_PER_EPOCH"`
	JustificationBits           []bool                `ssz-size:"JUSTIFICATION_BITS_LENGTH"`
	PreviousJustifiedCheckpoint *Checkpoint
	CurrentJustifiedCheckpoint  *Checkpoint
	FinalizedCheckpoint         *Checkpoint
}
