// SPDX-License-Identifier: MIT
// Package partition: sentinel errors. Match with errors.Is.

package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingStatistics is returned when a selector needs bootstrap
	// statistics that were not supplied.
	ErrMissingStatistics = errors.New("partition: missing bootstrap statistics")

	// ErrDimensionMismatch is returned for m < 2 or statistics whose length
	// does not match the spectrum.
	ErrDimensionMismatch = errors.New("partition: dimension mismatch")

	// ErrUnknownKind is returned by Kind.Select for codes outside 0..2.
	ErrUnknownKind = errors.New("partition: unknown kind")
)

const (
	opEig      = "EigPartition"
	opErrBound = "ErrBoundPartition"
	opLadle    = "LadlePartition"
)

func partitionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
