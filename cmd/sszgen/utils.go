// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"strings"
	"unicode"
)

// toSnakeCase converts a Go identifier into the snake case naming of the
// consensus specs, keeping acronyms together (BLSToExecution -> bls_to_execution).
func toSnakeCase(name string) string {
	var (
		runes = []rune(name)
		b     strings.Builder
	)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			next := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && next) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
