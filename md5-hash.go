// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5core

import "hash"

// digest adapts a State to hash.Hash for callers that want the standard
// interface. Because Digest never mutates the State, Sum does not finalize:
// writing after Sum keeps accumulating, same as crypto/md5.
type digest struct {
	state State
}

// NewHash - hash.Hash computing the MD5 checksum on top of a State.
func NewHash() hash.Hash {
	return &digest{state: New()}
}

func (d *digest) Write(p []byte) (int, error) {
	d.state = d.state.Consume(p)
	return len(p), nil
}

// Sum - append the current checksum to in
func (d *digest) Sum(in []byte) []byte {
	sum := d.state.Digest()
	return append(in, sum[:]...)
}

// Reset - reset digest to its initial values
func (d *digest) Reset() { d.state = New() }

// Size - Return size of checksum
func (d *digest) Size() int { return Size }

// BlockSize - Return blocksize of checksum
func (d *digest) BlockSize() int { return BlockSize }
