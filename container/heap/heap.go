// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an indexed, mutable priority D-ary min heap.
//
// Each key stored in the heap is associated with an external integer index
// chosen by the caller from a fixed universe [0, n). The index can be used
// to look up, change or delete the key in O(log_d n) time, which makes the
// heap suitable for algorithms such as Dijkstra's shortest paths or
// multiway merges that need to update priorities in place.
//
// IndexedMin is not safe for concurrent use; Locked wraps an IndexedMin
// behind a single mutex for callers that need to share it.
package heap

import (
	"cloudeng.io/errors"
)

var (
	// ErrNotFound is returned when an operation refers to an index that
	// is not currently in the heap.
	ErrNotFound = errors.New("index is not in the priority queue")
	// ErrAlreadyPresent is returned by Insert for an index that is
	// already in the heap.
	ErrAlreadyPresent = errors.New("index is already in the priority queue")
	// ErrUnderflow is returned when reading or removing the minimum of
	// an empty heap.
	ErrUnderflow = errors.New("priority queue underflow")
	// ErrInvalidArgument is returned by DecreaseKey and IncreaseKey when
	// the new key does not strictly move in the requested direction.
	ErrInvalidArgument = errors.New("invalid argument")
)
