// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aescfb8 implements the AES-CFB8 stream cipher envelope used to
// optionally wrap the wire protocol: a pinned AES-128 key schedule plus a
// 16-byte feedback register, transforming one byte at a time so the cipher
// can be layered directly over a socket's byte stream.
//
// Go's standard library only ships full-block CFB (CFB128, crypto/cipher's
// NewCFBEncrypter/NewCFBDecrypter); CFB8 feeds back one byte per AES block
// operation instead of a full block, which stdlib does not implement. This
// package wraps crypto/aes's block primitive and hand-rolls the CFB8
// feedback loop.
package aescfb8

import "crypto/aes"

// Mode selects which direction Process runs.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

// Cryptor is a pinned cryptographic context: an AES key schedule plus the
// current feedback register. A zero-value Cryptor is in the no-op state;
// Process leaves its input untouched until StartCrypto installs a key.
type Cryptor struct {
	block  cipher
	iv     [aes.BlockSize]byte
	active bool
}

// cipher is the subset of cipher.Block this package needs; named locally so
// the field above doesn't shadow the crypto/cipher package name.
type cipher interface {
	Encrypt(dst, src []byte)
}

// New returns a Cryptor in the no-op state.
func New() *Cryptor {
	return &Cryptor{}
}

// StartCrypto installs key as the AES-128 schedule and seeds the feedback
// register with it, per the wire protocol's convention of using the key
// itself as the initial IV. It may be called exactly once; subsequent
// calls return ErrAlreadyStarted.
func (c *Cryptor) StartCrypto(key []byte) error {
	if c.active {
		return ErrAlreadyStarted
	}
	if len(key) != aes.BlockSize {
		return ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	c.block = block
	copy(c.iv[:], key)
	c.active = true
	return nil
}

// Process transforms data in place according to mode. Before StartCrypto
// has been called it is a no-op pass-through, matching the cryptor's
// documented lifecycle.
func (c *Cryptor) Process(mode Mode, data []byte) {
	if !c.active {
		return
	}
	var o [aes.BlockSize]byte
	for i := range data {
		c.block.Encrypt(o[:], c.iv[:])

		var feedback byte
		switch mode {
		case Encrypt:
			plain := data[i]
			cipherByte := plain ^ o[0]
			data[i] = cipherByte
			feedback = cipherByte
		case Decrypt:
			cipherByte := data[i]
			data[i] = cipherByte ^ o[0]
			feedback = cipherByte
		}

		copy(c.iv[:aes.BlockSize-1], c.iv[1:])
		c.iv[aes.BlockSize-1] = feedback
	}
}
