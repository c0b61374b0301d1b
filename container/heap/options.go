// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options struct {
	callback func(index, position int)
}

// Option represents the options that can be passed to NewIndexedMin and
// NewIndexedMinFunc.
type Option func(*options)

// WithCallback provides a callback function that is called every time an
// index is placed at a new heap position, ie. when it is inserted and when
// it is moved by a swap or to fill the position vacated by a removal. An
// index is never reported as it is removed, and hence any application that
// needs to track removal should do so explicitly.
func WithCallback(fn func(index, position int)) Option {
	return func(o *options) {
		o.callback = fn
	}
}
