// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aescfb8

import "errors"

var (
	// ErrAlreadyStarted is returned by StartCrypto when the cryptor's key
	// schedule has already been installed. A cryptor may only transition
	// out of its no-op state once.
	ErrAlreadyStarted = errors.New("aescfb8: crypto already started")

	// ErrInvalidKeySize is returned by StartCrypto when key is not exactly
	// 16 bytes (AES-128, matching the IV width this cryptor uses).
	ErrInvalidKeySize = errors.New("aescfb8: key must be 16 bytes")
)
