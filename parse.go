// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ParseType builds a descriptor from its textual form:
//
//	bool | boolean | byte | uintN | BytesN
//	Vector[T, N] | List[T, N] | Bitvector[N] | Bitlist[N]
//	Union[none, T, ...] | Container[Name]
//
// Capacities (N) are decimal numbers, preset symbols or products of those, e.g.
// EPOCHS_PER_ETH1_VOTING_PERIOD*SLOTS_PER_EPOCH. Container references are looked
// up in the registry, which may be nil if the descriptor has none.
func ParseType(desc string, preset *Preset, reg *Registry) (Type, error) {
	return parseType(desc, &Scope{reg: reg, preset: preset})
}

func parseType(desc string, s *Scope) (Type, error) {
	desc = strings.TrimSpace(desc)

	name, args, err := splitDescriptor(desc)
	if err != nil {
		return nil, err
	}
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d parameters, have %d in %q", ErrInvalidType, name, n, len(args), desc)
		}
		return nil
	}
	switch name {
	case "bool", "boolean":
		if err := want(0); err != nil {
			return nil, err
		}
		return BoolType, nil

	case "byte":
		if err := want(0); err != nil {
			return nil, err
		}
		return Uint8Type, nil

	case "Vector", "List":
		if err := want(2); err != nil {
			return nil, err
		}
		elem, err := parseType(args[0], s)
		if err != nil {
			return nil, err
		}
		n, err := parseCapacity(args[1], s.preset)
		if err != nil {
			return nil, err
		}
		if name == "Vector" {
			return NewVector(elem, n)
		}
		return NewList(elem, n)

	case "Bitvector", "Bitlist":
		if err := want(1); err != nil {
			return nil, err
		}
		n, err := parseCapacity(args[0], s.preset)
		if err != nil {
			return nil, err
		}
		if name == "Bitvector" {
			return NewBitvector(n)
		}
		return NewBitlist(n), nil

	case "Union":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: union without variants in %q", ErrInvalidType, desc)
		}
		variants := make([]Type, len(args))
		for i, arg := range args {
			if strings.TrimSpace(arg) == "none" {
				continue
			}
			if variants[i], err = parseType(arg, s); err != nil {
				return nil, err
			}
		}
		return NewUnion(variants...)

	case "Container":
		if err := want(1); err != nil {
			return nil, err
		}
		return s.container(strings.TrimSpace(args[0]))
	}
	if err := want(0); err != nil {
		return nil, err
	}
	switch {
	case strings.HasPrefix(name, "uint"):
		width, err := strconv.Atoi(name[4:])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, desc)
		}
		return NewUint(width)

	case strings.HasPrefix(name, "Bytes"):
		n, err := strconv.ParseUint(name[5:], 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, desc)
		}
		return BytesType(n), nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidType, desc)
}

// splitDescriptor splits "Name[a, b[c, d]]" into its name and top level
// parameters.
func splitDescriptor(desc string) (string, []string, error) {
	open := strings.IndexByte(desc, '[')
	if open < 0 {
		if desc == "" || strings.ContainsAny(desc, "],") {
			return "", nil, fmt.Errorf("%w: malformed descriptor %q", ErrInvalidType, desc)
		}
		return desc, nil, nil
	}
	if !strings.HasSuffix(desc, "]") {
		return "", nil, fmt.Errorf("%w: unterminated descriptor %q", ErrInvalidType, desc)
	}
	var (
		name  = strings.TrimSpace(desc[:open])
		inner = desc[open+1 : len(desc)-1]
		args  []string
		depth int
		start int
	)
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			if depth--; depth < 0 {
				return "", nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidType, desc)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrInvalidType, desc)
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	for _, arg := range args {
		if arg == "" {
			return "", nil, fmt.Errorf("%w: empty parameter in %q", ErrInvalidType, desc)
		}
	}
	return name, args, nil
}

// parseCapacity evaluates a product of decimal numbers and preset symbols.
func parseCapacity(expr string, preset *Preset) (uint64, error) {
	result := uint64(1)
	for _, factor := range strings.Split(expr, "*") {
		factor = strings.TrimSpace(factor)

		n, err := strconv.ParseUint(factor, 10, 64)
		if err != nil {
			var ok bool
			if n, ok = preset.Lookup(factor); !ok {
				return 0, fmt.Errorf("%w: unknown capacity %q in preset %q", ErrSchemaResolution, factor, preset.Name())
			}
		}
		hi, lo := bits.Mul64(result, n)
		if hi != 0 {
			return 0, fmt.Errorf("%w: capacity %q overflows", ErrMaxLengthExceeded, expr)
		}
		result = lo
	}
	return result, nil
}
