// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packetizer

import (
	"context"
	"errors"

	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/framer"
	"github.com/zc-net/packetcore/ring"
)

// ReadLoop pulls buffers from reader, runs each one through p, and batches
// every Packet decoded from a single reader.Read call into one
// ring.FramedRing frame. Each frame is frozen and handed to consume as
// soon as that read's buffer has yielded every complete packet it can;
// consume owns the frame's lifetime and must eventually call
// RingFrame.Release.
//
// ReadLoop returns nil on a clean EOF (handing the final, possibly empty,
// frame to consume first) or the first fatal error encountered, either
// from the reader itself or a non-informational *Error from the pipeline.
// Nothing is logged here; surfacing and connection teardown are the
// caller's responsibility.
func ReadLoop(
	ctx context.Context,
	p *Packetizer,
	alloc *allocator.Allocator,
	reader SocketReader,
	r *ring.FramedRing[Packet],
	consume func(*ring.RingFrame[Packet]),
) error {
	fm, err := r.Frame()
	if err != nil {
		return err
	}

	for {
		res, err := reader.Read(ctx, alloc)
		if err != nil {
			return err
		}
		if res.EOF {
			consume(fm.Inner())
			return nil
		}

		it := p.Process(res.Part)
		for {
			pkt, err := it.Next(ctx)
			if err != nil {
				if isInformational(err) {
					break
				}
				return err
			}
			if err := fm.Append(*pkt); err != nil {
				return err
			}
		}

		frozen, next, err := fm.Next()
		if err != nil {
			return err
		}
		consume(frozen)
		fm = next
	}
}

// isInformational reports whether err is one of the framer's "need more
// data" sentinels, the condition under which a read's worth of frames has
// simply run dry rather than failed.
func isInformational(err error) bool {
	if errors.Is(err, framer.ErrWaitingForHeader) {
		return true
	}
	var wfd *framer.WaitingForDataError
	return errors.As(err, &wfd)
}
