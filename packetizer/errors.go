// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packetizer

// Error unifies a framer or inflater failure encountered while decoding a
// packet. Use errors.Is/errors.As against the sentinel and struct error
// types in package framer and package inflater; Unwrap makes the
// underlying cause visible to both.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "packetizer: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
