// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5core

// preprocess - pad the unprocessed tail of a message out to a whole number
// of 64-byte blocks: a 0x80 terminator byte (messages are byte-aligned, so
// the single 1 bit always lands on a byte boundary), zeros up to 56 mod 64,
// then the original message length in bits as 8 little-endian bytes.
//
// bitLen is the bit length of the whole message, not of the tail; it wraps
// mod 2^64 as the algorithm specifies. The result is the smallest multiple
// of 64 bytes that fits len(tail)+9, so a tail of 56..63 bytes spills into
// a second block.
func preprocess(tail []byte, bitLen uint64) []byte {
	pad := 56 - len(tail)%64
	if pad <= 0 {
		pad += 64
	}

	buf := make([]byte, len(tail)+pad+8)
	copy(buf, tail)
	buf[len(tail)] = 0x80
	lengthToBytesLE(buf[len(tail)+pad:], bitLen)
	return buf
}
