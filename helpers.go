// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ternary

const (
	branchLo = iota
	branchEq
	branchHi
)

func branchFor(diff int) int {
	if diff < 0 {
		return branchLo
	}
	if diff > 0 {
		return branchHi
	}
	return branchEq
}

// lowercase folds ASCII A-Z to a-z and maps every other byte to itself.
// Callers consult it only for bytes below 0x80: Latin-1 uppercase
// (0xC0-0xDE) is deliberately never folded.
var lowercase [256]byte

func init() {
	for i := range lowercase {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lowercase[i] = c
	}
}
