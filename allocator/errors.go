// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package allocator

import "errors"

// ErrCanceled is returned by Allocate when its context is canceled while
// the call is backed off waiting for the concurrent-page-fault gate.
var ErrCanceled = errors.New("allocator: allocation canceled")
