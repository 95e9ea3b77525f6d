// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Preset is an immutable dictionary of named capacities that descriptor strings
// may reference instead of literal numbers.
type Preset struct {
	name   string
	values map[string]uint64
}

// NewPreset creates a preset from a set of named capacities.
func NewPreset(name string, values map[string]uint64) *Preset {
	p := &Preset{name: name, values: make(map[string]uint64, len(values))}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

// Name returns the identifier of the preset, also used as part of the registry
// cache keys.
func (p *Preset) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Lookup returns the capacity bound to a symbol.
func (p *Preset) Lookup(symbol string) (uint64, bool) {
	if p == nil {
		return 0, false
	}
	v, ok := p.values[symbol]
	return v, ok
}

// Symbols returns the sorted names defined by the preset.
func (p *Preset) Symbols() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a new preset with the given capacities added or overridden.
func (p *Preset) With(name string, overrides map[string]uint64) *Preset {
	values := make(map[string]uint64, len(p.values)+len(overrides))
	if p != nil {
		for k, v := range p.values {
			values[k] = v
		}
	}
	for k, v := range overrides {
		values[k] = v
	}
	return &Preset{name: name, values: values}
}

// LoadPreset reads a preset from a YAML document of KEY: value pairs, in the
// format the consensus specs publish their presets. Non numeric entries (fork
// versions, domain types) are skipped.
func LoadPreset(name string, r io.Reader) (*Preset, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	values := make(map[string]uint64, len(doc))
	for key, node := range doc {
		if node.Kind != yaml.ScalarNode {
			continue
		}
		v, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			continue
		}
		values[key] = v
	}
	return &Preset{name: name, values: values}, nil
}

var (
	// Mainnet is the capacity preset of the Ethereum mainnet beacon chain.
	Mainnet = NewPreset("mainnet", map[string]uint64{
		"MAX_BYTES_PER_TRANSACTION":        1 << 30,
		"MAX_TRANSACTIONS_PER_PAYLOAD":     1 << 20,
		"BYTES_PER_LOGS_BLOOM":             256,
		"MAX_EXTRA_DATA_BYTES":             32,
		"SYNC_COMMITTEE_SIZE":              512,
		"EPOCHS_PER_SYNC_COMMITTEE_PERIOD": 256,
		"VALIDATOR_REGISTRY_LIMIT":         1 << 40,
		"HISTORICAL_ROOTS_LIMIT":           1 << 24,
		"EPOCHS_PER_HISTORICAL_VECTOR":     65536,
		"EPOCHS_PER_SLASHINGS_VECTOR":      8192,
		"EPOCHS_PER_ETH1_VOTING_PERIOD":    64,
		"SLOTS_PER_EPOCH":                  32,
		"ETH1_VOTE_DATA_LIMIT":             64 * 32,
		"JUSTIFICATION_BITS_LENGTH":        4,
		"SLOTS_PER_HISTORICAL_ROOT":        8192,
		"MAX_PROPOSER_SLASHINGS":           16,
		"MAX_ATTESTER_SLASHINGS":           2,
		"MAX_ATTESTATIONS":                 128,
		"MAX_DEPOSITS":                     16,
		"MAX_VOLUNTARY_EXITS":              16,
		"MAX_VALIDATORS_PER_COMMITTEE":     2048,
		"DEPOSIT_PROOF_LENGTH":             33,
		"MAX_WITHDRAWALS_PER_PAYLOAD":      16,
		"MAX_BLS_TO_EXECUTION_CHANGES":     16,
	})

	// Minimal is the reduced capacity preset the consensus spec tests use.
	Minimal = Mainnet.With("minimal", map[string]uint64{
		"SYNC_COMMITTEE_SIZE":              32,
		"EPOCHS_PER_SYNC_COMMITTEE_PERIOD": 8,
		"EPOCHS_PER_HISTORICAL_VECTOR":     64,
		"EPOCHS_PER_SLASHINGS_VECTOR":      64,
		"EPOCHS_PER_ETH1_VOTING_PERIOD":    4,
		"SLOTS_PER_EPOCH":                  8,
		"ETH1_VOTE_DATA_LIMIT":             32,
		"SLOTS_PER_HISTORICAL_ROOT":        64,
		"MAX_WITHDRAWALS_PER_PAYLOAD":      4,
	})
)
