// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package power implements the calculator: three pure integer power
// operations and the result triple derived from one input.
package power

// Square returns the second power of n.
func Square(n int64) int64 {
	return n * n
}

// Cube returns the third power of n.
func Cube(n int64) int64 {
	return n * n * n
}

// FifthPower returns the fifth power of n.
func FifthPower(n int64) int64 {
	return n * n * n * n * n
}

// Triple holds the three powers computed from a single input.
// Arithmetic is exact int64; inputs large enough to wrap are the
// caller's problem.
type Triple struct {
	Input      int64 `json:"input"`
	Square     int64 `json:"square"`
	Cube       int64 `json:"cube"`
	FifthPower int64 `json:"fifth_power"`
}

// Compute returns a fresh Triple for n.
func Compute(n int64) Triple {
	return Triple{
		Input:      n,
		Square:     Square(n),
		Cube:       Cube(n),
		FifthPower: FifthPower(n),
	}
}
