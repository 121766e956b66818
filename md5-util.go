// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5core

import "encoding/binary"

// Two word orders are in play: message words are parsed little-endian on
// the way in, and the accumulator is packed little-endian per word on the
// way out. They are deliberately separate functions.

// bytesToWordLE - 32-bit word from the first 4 bytes of b, byte 0 least
// significant.
func bytesToWordLE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// lengthToBytesLE - write the 64-bit bit-length field into the first 8
// bytes of dst, byte 0 least significant.
func lengthToBytesLE(dst []byte, bitLen uint64) {
	binary.LittleEndian.PutUint64(dst, bitLen)
}

// checksum - pack the final accumulator into the canonical MD5 digest:
// a, b, c, d in order, each as 4 little-endian bytes.
func checksum(s [4]uint32) (sum [Size]byte) {
	for i, w := range s {
		binary.LittleEndian.PutUint32(sum[i*4:], w)
	}
	return
}
