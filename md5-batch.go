// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5core

import (
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/remeh/sizedwaitgroup"
)

// CalculateAll - MD5 of each input, computed concurrently. States share no
// mutable memory, so the only coordination needed is bounding the number of
// goroutines in flight to the logical core count. Result i corresponds to
// inputs[i].
func CalculateAll(inputs [][]byte) [][Size]byte {
	return CalculateAllN(inputs, batchParallelism())
}

// CalculateAllN - like CalculateAll with at most parallelism hashes in
// flight. parallelism below 1 is treated as 1.
func CalculateAllN(inputs [][]byte, parallelism int) [][Size]byte {
	if parallelism < 1 {
		parallelism = 1
	}

	sums := make([][Size]byte, len(inputs))
	swg := sizedwaitgroup.New(parallelism)
	for i := range inputs {
		swg.Add()
		go func(i int) {
			defer swg.Done()
			sums[i] = Calculate(inputs[i])
		}(i)
	}
	swg.Wait()
	return sums
}

func batchParallelism() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
