// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "sync"

// Locked provides the same operations as IndexedMin but is safe for
// concurrent use. Every operation holds a single mutex for its duration.
type Locked[K any] struct {
	mu sync.Mutex
	h  *IndexedMin[K]
}

// NewLocked returns a Locked that serializes access to h. h must not be
// used directly once it has been passed to NewLocked.
func NewLocked[K any](h *IndexedMin[K]) *Locked[K] {
	return &Locked[K]{h: h}
}

// Update calls fn with the lock held, allowing for a sequence of
// operations to be applied atomically. fn must not retain h.
func (l *Locked[K]) Update(fn func(h *IndexedMin[K]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.h)
}

// IsEmpty is like IndexedMin.IsEmpty.
func (l *Locked[K]) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.IsEmpty()
}

// Len is like IndexedMin.Len.
func (l *Locked[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Len()
}

// Contains is like IndexedMin.Contains.
func (l *Locked[K]) Contains(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Contains(i)
}

// KeyOf is like IndexedMin.KeyOf.
func (l *Locked[K]) KeyOf(i int) (K, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.KeyOf(i)
}

// Insert is like IndexedMin.Insert.
func (l *Locked[K]) Insert(i int, key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Insert(i, key)
}

// DeleteMin is like IndexedMin.DeleteMin.
func (l *Locked[K]) DeleteMin() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.DeleteMin()
}

// Delete is like IndexedMin.Delete.
func (l *Locked[K]) Delete(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.Delete(i)
}

// ChangeKey is like IndexedMin.ChangeKey.
func (l *Locked[K]) ChangeKey(i int, key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.ChangeKey(i, key)
}

// DecreaseKey is like IndexedMin.DecreaseKey.
func (l *Locked[K]) DecreaseKey(i int, key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.DecreaseKey(i, key)
}

// IncreaseKey is like IndexedMin.IncreaseKey.
func (l *Locked[K]) IncreaseKey(i int, key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.IncreaseKey(i, key)
}

// MinKey is like IndexedMin.MinKey.
func (l *Locked[K]) MinKey() (K, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.MinKey()
}

// MinIndex is like IndexedMin.MinIndex.
func (l *Locked[K]) MinIndex() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.h.MinIndex()
}

// DeleteMinN removes at most the n smallest indices from the heap and
// returns them in ascending key order.
func (l *Locked[K]) DeleteMinN(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n = max(0, min(n, l.h.Len()))
	out := make([]int, 0, n)
	for len(out) < n {
		i, _ := l.h.DeleteMin()
		out = append(out, i)
	}
	return out
}
