package rle

import (
	"fmt"

	"github.com/colstore/runlen/errs"
)

// Encode run-length encodes values using structural equality.
//
// It repeatedly takes the maximal leading prefix of equal values and emits
// one (length, value) run for it. The result is canonical: no two adjacent
// runs hold equal values, and expanding the runs in order reproduces values
// exactly. An empty input yields an empty run sequence.
//
// The scan is a single iterative pass, so arbitrarily long inputs encode in
// O(len(values)) time and O(runs) space with no stack growth.
func Encode[T comparable](values []T) []Run[T] {
	return EncodeFunc(values, Equal[T]())
}

// EncodeFunc is Encode with an injected comparator.
func EncodeFunc[T any](values []T, equal EqualFunc[T]) []Run[T] {
	if len(values) == 0 {
		return nil
	}

	runs := make([]Run[T], 0, 8)
	cur := values[0]
	length := int32(1)

	for _, v := range values[1:] {
		if equal(cur, v) {
			length++
			continue
		}

		runs = append(runs, Run[T]{Value: cur, Length: length})
		cur = v
		length = 1
	}

	return append(runs, Run[T]{Value: cur, Length: length})
}

// Decode expands each run into Length repetitions of Value, concatenated in
// run order. It is the inverse of Encode: Decode(Encode(xs)) == xs for all
// finite xs.
//
// A run with a non-positive length is malformed input and fails with
// errs.ErrMalformedRun; no partial result is returned.
func Decode[T any](runs []Run[T]) ([]T, error) {
	total := 0
	for i, r := range runs {
		if r.Length <= 0 {
			return nil, fmt.Errorf("%w: run %d has length %d", errs.ErrMalformedRun, i, r.Length)
		}
		total += int(r.Length)
	}

	if total == 0 {
		return nil, nil
	}

	values := make([]T, 0, total)
	for _, r := range runs {
		for range r.Length {
			values = append(values, r.Value)
		}
	}

	return values, nil
}
