// Package sequence implements uniform random integer sequence generation.
package sequence

import (
	"errors"

	"github.com/louisbranch/randseq/internal/random"
)

// ErrNegativeCount indicates a request asked for a negative number of values.
var ErrNegativeCount = errors.New("count must be non-negative")

// ErrInvertedRange indicates the range minimum exceeds the maximum.
var ErrInvertedRange = errors.New("minimum must not exceed maximum")

// Request describes a sequence to generate.
type Request struct {
	Count int
	Min   int
	Max   int
	Seed  int64
}

// Result holds the generated values in generation order.
type Result struct {
	Values []int
}

// Generate produces Request.Count values drawn uniformly from the closed
// interval [Request.Min, Request.Max].
//
// # Determinism
//
// Generate is deterministic with respect to the Seed field on Request.
// Given the same nonzero Seed and the same Count, Min and Max, Generate
// will always produce the same Result. A Seed of 0 derives the seed from
// the wall clock.
//
// Constraints and errors
//
//   - Count must be non-negative, otherwise ErrNegativeCount is returned.
//   - Min must not exceed Max, otherwise ErrInvertedRange is returned.
func Generate(request Request) (Result, error) {
	if request.Count < 0 {
		return Result{}, ErrNegativeCount
	}
	if request.Min > request.Max {
		return Result{}, ErrInvertedRange
	}

	rng := random.New(request.Seed)
	span := request.Max - request.Min + 1

	values := make([]int, request.Count)
	for i := range values {
		values[i] = request.Min + rng.Intn(span)
	}

	return Result{Values: values}, nil
}
