// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// Option configures a Framer at construction time.
type Option func(*options)

type options struct {
	maxFrameSize int32
}

func defaultOptions() options {
	return options{
		maxFrameSize: 2 * 1024 * 1024,
	}
}

// WithMaxFrameSize bounds the length a frame header may declare. Headers
// decoding to a larger (or negative) value fail with ErrDecodeError.
func WithMaxFrameSize(n int32) Option {
	return func(o *options) { o.maxFrameSize = n }
}
