// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

// cacheLineSize is the padding target used to keep head, tail, and
// each ring slot on distinct cache lines. Most modern x86_64 and
// arm64 cores use 64-byte lines. Architectures with 128-byte lines
// (some POWER and ARM cores) are accommodated by editing this one
// constant; pad and padShort derive their sizes from it.
const cacheLineSize = 64

// pad is cache-line padding placed between the head and tail
// counters so a producer's fetch-add on tail never bounces the cache
// line a consumer is spinning on.
type pad [cacheLineSize]byte

// padShort pads a struct that already holds one 8-byte field up to a
// full cache line.
type padShort [cacheLineSize - 8]byte
