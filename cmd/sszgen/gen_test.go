// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSource = `package beacon

type Root [32]byte

type Checkpoint struct {
	Epoch uint64
	Root  Root
}

type Attestation struct {
	AggregationBits []bool   ` + "`ssz-max:\"MAX_VALIDATORS_PER_COMMITTEE\"`" + `
	Target          *Checkpoint
	Sources         []*Checkpoint ` + "`ssz-max:\"4\"`" + `
	Signature       [96]byte
	Transactions    [][]byte ` + "`ssz-max:\"MAX_TRANSACTIONS_PER_PAYLOAD,MAX_BYTES_PER_TRANSACTION\"`" + `
	Roots           [][32]byte ` + "`ssz-size:\"8\"`" + `
	Balances        []uint64 ` + "`ssz-max:\"VALIDATOR_REGISTRY_LIMIT\"`" + `
	Flag            bool     ` + "`ssz-name:\"is_set\"`" + `
	Extra           []byte   ` + "`ssz:\"List[uint8, 32]\"`" + `
	Cache           map[string]int ` + "`ssz:\"-\"`" + `
	internal        uint64
}

type helper struct {
	Slot uint64
}

func NotAType() {}
`

func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "beacon.go", src, 0)
	require.NoError(t, err)

	pkg, err := new(types.Config).Check("example.com/beacon", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	return pkg
}

func TestParsePackage(t *testing.T) {
	pkg := checkSource(t, testSource)

	conts, err := parsePackage(pkg, nil)
	require.NoError(t, err)
	require.Len(t, conts, 2)
	require.Equal(t, "Attestation", conts[0].named.Obj().Name())
	require.Equal(t, "Checkpoint", conts[1].named.Obj().Name())

	want := []struct {
		name, wire, desc, define string
	}{
		{"AggregationBits", "aggregation_bits", "Bitlist[MAX_VALIDATORS_PER_COMMITTEE]", defineField},
		{"Target", "target", "Container[Checkpoint]", defineRecord},
		{"Sources", "sources", "List[Container[Checkpoint], 4]", defineRecords},
		{"Signature", "signature", "Bytes96", defineArray},
		{"Transactions", "transactions", "List[List[uint8, MAX_BYTES_PER_TRANSACTION], MAX_TRANSACTIONS_PER_PAYLOAD]", defineField},
		{"Roots", "roots", "Vector[Bytes32, 8]", defineArrays},
		{"Balances", "balances", "List[uint64, VALIDATOR_REGISTRY_LIMIT]", defineField},
		{"Flag", "is_set", "bool", defineField},
		{"Extra", "extra", "List[uint8, 32]", defineField},
	}
	fields := conts[0].fields
	require.Len(t, fields, len(want))
	for i, w := range want {
		require.Equal(t, w.name, fields[i].name)
		require.Equal(t, w.wire, fields[i].wire, "field %s", w.name)
		require.Equal(t, w.desc, fields[i].desc, "field %s", w.name)
		require.Equal(t, w.define, fields[i].define, "field %s", w.name)
	}
	// Explicitly requested types must exist and be structs
	_, err = parsePackage(pkg, []string{"Missing"})
	require.Error(t, err)
	_, err = parsePackage(pkg, []string{"NotAType"})
	require.Error(t, err)
	_, err = parsePackage(pkg, []string{"Root"})
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	pkg := checkSource(t, testSource)

	conts, err := parsePackage(pkg, []string{"Checkpoint", "Attestation"})
	require.NoError(t, err)

	code, err := generate(newGenContext(pkg), conts)
	require.NoError(t, err)

	src := string(code)
	require.True(t, strings.HasPrefix(src, "// Code generated by github.com/sszkit/ssz/cmd/sszgen. DO NOT EDIT."))
	require.Contains(t, src, "package beacon")
	require.Contains(t, src, `"github.com/sszkit/ssz"`)
	require.Contains(t, src, `var CheckpointSchema = ssz.Define("Checkpoint", func(b *ssz.Builder[Checkpoint]) {`)
	require.Contains(t, src, `ssz.DefineArray(b, "root", "Bytes32", func(obj *Checkpoint) *Root { return &obj.Root })`)
	require.Contains(t, src, `ssz.DefineRecord(b, "target", "Container[Checkpoint]", func(obj *Attestation) **Checkpoint { return &obj.Target })`)
	require.Contains(t, src, `ssz.DefineRecords(b, "sources", "List[Container[Checkpoint], 4]", func(obj *Attestation) *[]*Checkpoint { return &obj.Sources })`)
	require.Contains(t, src, `ssz.DefineArrays(b, "roots", "Vector[Bytes32, 8]", func(obj *Attestation) *[][32]byte { return &obj.Roots })`)
	require.Contains(t, src, `if err := r.Register("Checkpoint", CheckpointSchema); err != nil {`)
	require.NotContains(t, src, "Cache")
	require.NotContains(t, src, "internal")

	// Registration follows the requested order
	require.Less(t, strings.Index(src, `r.Register("Checkpoint"`), strings.Index(src, `r.Register("Attestation"`))
}

func TestFieldErrors(t *testing.T) {
	tests := []string{
		"Signed int64",
		"Untagged []byte",
		"Odd [7]byte",
		"Strings []string `ssz-max:\"4\"`",
		"Nested [][]byte `ssz-max:\"4\"`",
		"Named Slot",
		"Conflict []byte `ssz-size:\"4\" ssz-max:\"4\"`",
		"Raw any",
	}
	for _, field := range tests {
		src := "package beacon\ntype Slot uint64\ntype Bad struct {\n" + field + "\n}\n"
		pkg := checkSource(t, src)

		_, err := parsePackage(pkg, []string{"Bad"})
		require.Error(t, err, "field %s", field)
	}
}

func TestParseTags(t *testing.T) {
	tags, err := parseTags(`ssz-size:"?,32" ssz-max:"16"`)
	require.NoError(t, err)
	require.Equal(t, []sizeTag{{limit: "16"}, {size: "32"}}, tags.dims)
	require.Equal(t, sizeTag{}, tags.dim(5))

	tags, err = parseTags(`json:"slot" ssz:"-"`)
	require.NoError(t, err)
	require.True(t, tags.ignored)

	tags, err = parseTags(`ssz:" Union[none, uint64] "`)
	require.NoError(t, err)
	require.Equal(t, "Union[none, uint64]", tags.desc)

	_, err = parseTags(`ssz-max:"4,"`)
	require.Error(t, err)
	_, err = parseTags(`ssz-name:""`)
	require.Error(t, err)
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Slot":                  "slot",
		"ValidatorIndex":        "validator_index",
		"BLSToExecutionChanges": "bls_to_execution_changes",
		"Eth1Data":              "eth1_data",
		"ID":                    "id",
		"ParentRoot":            "parent_root",
	}
	for in, want := range tests {
		require.Equal(t, want, toSnakeCase(in))
	}
}

func TestExternalTypes(t *testing.T) {
	var (
		u256 = types.NewPackage("github.com/holiman/uint256", "uint256")
		bits = types.NewPackage("github.com/prysmaticlabs/go-bitfield", "bitfield")
		bigs = types.NewPackage("math/big", "big")

		intType   = types.NewNamed(types.NewTypeName(token.NoPos, u256, "Int", nil), types.NewArray(types.Typ[types.Uint64], 4), nil)
		bigType   = types.NewNamed(types.NewTypeName(token.NoPos, bigs, "Int", nil), types.NewStruct(nil, nil), nil)
		bitsType  = types.NewNamed(types.NewTypeName(token.NoPos, bits, "Bitlist", nil), types.NewSlice(types.Typ[types.Byte]), nil)
		emptyTags = new(fieldTags)
	)
	define, desc, err := resolveField(types.NewPointer(intType), emptyTags)
	require.NoError(t, err)
	require.Equal(t, defineField, define)
	require.Equal(t, "uint256", desc)

	_, desc, err = resolveField(types.NewPointer(bigType), emptyTags)
	require.NoError(t, err)
	require.Equal(t, "uint256", desc)
	require.False(t, isStruct(bigType))

	_, _, err = resolveField(bitsType, emptyTags)
	require.Error(t, err)

	_, desc, err = resolveField(bitsType, &fieldTags{dims: []sizeTag{{limit: "2048"}}})
	require.NoError(t, err)
	require.Equal(t, "Bitlist[2048]", desc)

	ctx := newGenContext(types.NewPackage("example.com/beacon", "beacon"))
	require.Equal(t, "*uint256.Int", types.TypeString(types.NewPointer(intType), ctx.qualifier))
	require.Contains(t, ctx.imports, "github.com/holiman/uint256")
}
