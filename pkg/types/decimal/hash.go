// Copyright 2023 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decimal

import (
	"encoding/binary"

	"github.com/dgryski/go-farm"
)

// Hash mixes the raw little-endian bytes of the unscaled value with the
// seed. The byte width goes into the hash, so equal numbers stored at
// different widths hash differently.
func (x Dec4) Hash(seed uint64) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(int32(x)))
	return farm.Hash64WithSeed(b[:], seed)
}

// Hash mixes the raw little-endian bytes of the unscaled value with the
// seed.
func (x Dec8) Hash(seed uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(int64(x)))
	return farm.Hash64WithSeed(b[:], seed)
}

// Hash mixes the raw little-endian bytes of the unscaled value with the
// seed.
func (x Dec16) Hash(seed uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], x.v.lo)
	binary.LittleEndian.PutUint64(b[8:], uint64(x.v.hi))
	return farm.Hash64WithSeed(b[:], seed)
}
