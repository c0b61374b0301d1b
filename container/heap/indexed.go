// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cmp"
	"fmt"

	"cloudeng.io/errors"
)

// entry records the key and heap position of an external index.
type entry[K any] struct {
	key     K
	pos     int
	present bool
}

// IndexedMin is a D-ary min heap whose keys are addressed by an external
// index in the range [0, Cap()). Position 0 of the heap always holds the
// index with the smallest key. Keys that compare as equal are not kept in
// any particular order.
//
// Any method that is passed an index outside of [0, Cap()) panics in the
// same manner as an out of range slice access.
type IndexedMin[K any] struct {
	d       int
	compare func(a, b K) int
	heap    []int      // heap position -> index
	entries []entry[K] // index -> key and heap position
	opts    options
}

// NewIndexedMin returns a heap with capacity for n indices and d children
// per node, ordered by cmp.Compare. It panics if d < 2 or n < 0.
func NewIndexedMin[K cmp.Ordered](n, d int, opts ...Option) *IndexedMin[K] {
	return NewIndexedMinFunc(n, d, cmp.Compare[K], opts...)
}

// NewIndexedMinFunc is like NewIndexedMin but orders keys using compare,
// which must return a negative number when a < b, zero when a == b and
// a positive number when a > b, and must define a total order.
func NewIndexedMinFunc[K any](n, d int, compare func(a, b K) int, opts ...Option) *IndexedMin[K] {
	if d < 2 {
		panic(fmt.Sprintf("heap: branching factor %d is less than 2", d))
	}
	if n < 0 {
		panic(fmt.Sprintf("heap: negative capacity %d", n))
	}
	h := &IndexedMin[K]{
		d:       d,
		compare: compare,
		heap:    make([]int, 0, n),
		entries: make([]entry[K], n),
	}
	for _, fn := range opts {
		fn(&h.opts)
	}
	return h
}

// IsEmpty returns true if the heap contains no indices.
func (h *IndexedMin[K]) IsEmpty() bool {
	return len(h.heap) == 0
}

// Len returns the number of indices in the heap.
func (h *IndexedMin[K]) Len() int {
	return len(h.heap)
}

// Cap returns the number of distinct indices the heap can hold.
func (h *IndexedMin[K]) Cap() int {
	return len(h.entries)
}

// BranchingFactor returns the number of children per node.
func (h *IndexedMin[K]) BranchingFactor() int {
	return h.d
}

// Contains returns true if index i is in the heap.
func (h *IndexedMin[K]) Contains(i int) bool {
	h.checkIndex(i)
	return h.entries[i].present
}

// KeyOf returns the key associated with index i.
func (h *IndexedMin[K]) KeyOf(i int) (K, error) {
	e, err := h.lookup(i)
	if err != nil {
		var zero K
		return zero, err
	}
	return e.key, nil
}

// Insert associates key with index i. It returns ErrAlreadyPresent if i is
// already in the heap. An insert into a full heap is silently ignored.
func (h *IndexedMin[K]) Insert(i int, key K) error {
	h.checkIndex(i)
	if h.entries[i].present {
		return fmt.Errorf("insert %d: %w", i, ErrAlreadyPresent)
	}
	n := len(h.heap)
	if n == len(h.entries) {
		return nil
	}
	h.heap = append(h.heap, i)
	h.entries[i] = entry[K]{key: key, pos: n, present: true}
	h.placed(i, n)
	h.up(n)
	return nil
}

// DeleteMin removes the index with the smallest key and returns it.
func (h *IndexedMin[K]) DeleteMin() (int, error) {
	if len(h.heap) == 0 {
		return -1, ErrUnderflow
	}
	i := h.heap[0]
	h.remove(0)
	return i, nil
}

// Delete removes index i and its key from the heap.
func (h *IndexedMin[K]) Delete(i int) error {
	e, err := h.lookup(i)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	h.remove(e.pos)
	return nil
}

// ChangeKey replaces the key associated with index i, the new key may be
// smaller, larger or the same as the existing one.
func (h *IndexedMin[K]) ChangeKey(i int, key K) error {
	e, err := h.lookup(i)
	if err != nil {
		return fmt.Errorf("change key: %w", err)
	}
	e.key = key
	h.up(e.pos)
	h.down(e.pos)
	return nil
}

// DecreaseKey replaces the key associated with index i with a strictly
// smaller one, it returns ErrInvalidArgument otherwise.
func (h *IndexedMin[K]) DecreaseKey(i int, key K) error {
	e, err := h.lookup(i)
	if err != nil {
		return fmt.Errorf("decrease key: %w", err)
	}
	if h.compare(key, e.key) >= 0 {
		return fmt.Errorf("decrease key %d: %v does not strictly decrease %v: %w", i, key, e.key, ErrInvalidArgument)
	}
	e.key = key
	h.up(e.pos)
	return nil
}

// IncreaseKey replaces the key associated with index i with a strictly
// larger one, it returns ErrInvalidArgument otherwise.
func (h *IndexedMin[K]) IncreaseKey(i int, key K) error {
	e, err := h.lookup(i)
	if err != nil {
		return fmt.Errorf("increase key: %w", err)
	}
	if h.compare(key, e.key) <= 0 {
		return fmt.Errorf("increase key %d: %v does not strictly increase %v: %w", i, key, e.key, ErrInvalidArgument)
	}
	e.key = key
	h.down(e.pos)
	return nil
}

// MinKey returns the smallest key in the heap.
func (h *IndexedMin[K]) MinKey() (K, error) {
	if len(h.heap) == 0 {
		var zero K
		return zero, ErrUnderflow
	}
	return h.entries[h.heap[0]].key, nil
}

// MinIndex returns the index associated with the smallest key in the heap.
func (h *IndexedMin[K]) MinIndex() (int, error) {
	if len(h.heap) == 0 {
		return -1, ErrUnderflow
	}
	return h.heap[0], nil
}

// Validate checks that the index to position mappings are consistent
// and that every key is no smaller than its parent's. It returns all of
// the inconsistencies found or nil.
func (h *IndexedMin[K]) Validate() error {
	errs := errors.M{}
	present := 0
	for i, e := range h.entries {
		if !e.present {
			continue
		}
		present++
		if e.pos < 0 || e.pos >= len(h.heap) || h.heap[e.pos] != i {
			errs.Append(fmt.Errorf("index %d: position %d does not refer back to it", i, e.pos))
		}
	}
	if present != len(h.heap) {
		errs.Append(fmt.Errorf("%d indices are present, but the heap has %d positions", present, len(h.heap)))
	}
	for p, i := range h.heap {
		if i < 0 || i >= len(h.entries) || !h.entries[i].present || h.entries[i].pos != p {
			errs.Append(fmt.Errorf("position %d: index %d does not refer back to it", p, i))
		}
	}
	if err := errs.Err(); err != nil {
		// heap order is meaningless without consistent mappings.
		return err
	}
	for p := 1; p < len(h.heap); p++ {
		if q := h.parent(p); h.less(p, q) {
			errs.Append(fmt.Errorf("position %d: key %v is less than key %v of its parent at %d",
				p, h.entries[h.heap[p]].key, h.entries[h.heap[q]].key, q))
		}
	}
	return errs.Err()
}

func (h *IndexedMin[K]) checkIndex(i int) {
	if i < 0 || i >= len(h.entries) {
		panic(fmt.Sprintf("heap: index %d out of range [0:%d]", i, len(h.entries)))
	}
}

func (h *IndexedMin[K]) lookup(i int) (*entry[K], error) {
	h.checkIndex(i)
	e := &h.entries[i]
	if !e.present {
		return nil, fmt.Errorf("%d: %w", i, ErrNotFound)
	}
	return e, nil
}

// remove removes the index at heap position p by moving the last
// index into its place and restoring the heap order from there.
func (h *IndexedMin[K]) remove(p int) {
	i := h.heap[p]
	last := len(h.heap) - 1
	if p < last {
		j := h.heap[last]
		h.heap[p] = j
		h.entries[j].pos = p
		h.placed(j, p)
	}
	h.heap = h.heap[:last]
	h.entries[i] = entry[K]{}
	if p < last {
		h.up(p)
		h.down(p)
	}
}

func (h *IndexedMin[K]) parent(p int) int {
	return (p - 1) / h.d
}

func (h *IndexedMin[K]) up(p int) {
	for p > 0 {
		q := h.parent(p)
		if !h.less(p, q) {
			break
		}
		h.swap(q, p)
		p = q
	}
}

func (h *IndexedMin[K]) down(p int) {
	n := len(h.heap)
	for {
		first := p*h.d + 1
		if first >= n || first < 0 { // first < 0 after int overflow
			break
		}
		last := min(first+h.d, n)
		c := first // smallest child
		for j := first + 1; j < last; j++ {
			if h.less(j, c) {
				c = j
			}
		}
		if !h.less(c, p) {
			break
		}
		h.swap(p, c)
		p = c
	}
}

func (h *IndexedMin[K]) less(p, q int) bool {
	return h.compare(h.entries[h.heap[p]].key, h.entries[h.heap[q]].key) < 0
}

func (h *IndexedMin[K]) swap(p, q int) {
	h.heap[p], h.heap[q] = h.heap[q], h.heap[p]
	h.entries[h.heap[p]].pos = p
	h.entries[h.heap[q]].pos = q
	if p != q {
		h.placed(h.heap[p], p)
		h.placed(h.heap[q], q)
	}
}

func (h *IndexedMin[K]) placed(i, p int) {
	if h.opts.callback != nil {
		h.opts.callback(i, p)
	}
}
