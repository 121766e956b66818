// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package md5core computes MD5 message digests, one-shot or streaming.
//
// The streaming type is a value: Consume returns a successor State and
// leaves its receiver untouched, so states can be retained, forked and
// digested repeatedly. MD5 is cryptographically broken; this package exists
// for compatibility with systems that still speak it, not for security.
package md5core

// BlockSize - size in bytes of the block the compression core consumes
const BlockSize = 64

// Size - size in bytes of an MD5 checksum
const Size = 16

const chunk = BlockSize

// MD5 initialization constants
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// State - partial evaluation of an MD5 checksum. The zero value is not
// usable; obtain one from New. A State is self-contained (the partial-block
// buffer is a fixed array), so copying it forks the computation.
type State struct {
	s   [4]uint32       // accumulator a, b, c, d
	x   [BlockSize]byte // partial block, always fewer than BlockSize bytes
	nx  int
	len uint64 // total bytes consumed, wraps mod 2^64
}

// New - State primed with the fixed initial accumulator, an empty buffer
// and a zero byte counter.
func New() State {
	return State{s: [4]uint32{init0, init1, init2, init3}}
}

// Consume - append p to the message and return the successor State. Any
// complete 64-byte blocks are folded through the compression core; at most
// 63 bytes stay buffered. The receiver is unchanged, so earlier states
// remain valid. Empty input is a no-op apart from returning a copy.
func (d State) Consume(p []byte) State {
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			d.s = blocks(d.s, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		d.s = blocks(d.s, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return d
}

// Digest - checksum of everything consumed so far. Read-only projection:
// it pads a copy of the buffered tail, so the State may be digested again
// or consumed further afterwards. The 16 bytes are the canonical MD5 byte
// sequence (read as a big-endian integer: a in the most significant word).
func (d State) Digest() [Size]byte {
	trail := preprocess(d.x[:d.nx], d.len<<3)
	return checksum(blocks(d.s, trail))
}

// Calculate - one-shot MD5 of p, equivalent to New().Consume(p).Digest().
func Calculate(p []byte) [Size]byte {
	return New().Consume(p).Digest()
}
