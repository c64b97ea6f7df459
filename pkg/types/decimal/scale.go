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
	"math"

	"github.com/pingcap/decimal/pkg/types/decimal/internal/int256"
)

var pow10Int32 = [10]int32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

var pow10Int64 = [19]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

// pow10Int128[k] = 10^k for 0 <= k <= 38, filled at init.
var pow10Int128 [39]Int128

// scaleQuotient16[k] = maxUnscaledDec16 / 10^k, the largest magnitude that a
// full-precision Dec16 operand may have before multiplying by 10^k.
var scaleQuotient16 [39]Int128

// pow10Float64[k] = 10^k as float64, for the float boundary conversions.
var pow10Float64 [39]float64

// floorLog2Pow10[k] = floor(log2(10^k)), used by the leading-zero estimate
// Lz(v * 10^k) >= Lz(v) - floor(log2(10^k)) - 1.
var floorLog2Pow10 = [40]int{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
	63, 66, 69, 73, 76, 79, 83, 86, 89, 93, 96, 99, 102, 106, 109, 112, 116,
	119, 122, 126, 129,
}

func init() {
	p := Int128FromInt64(1)
	ten := Int128FromInt64(10)
	for k := range pow10Int128 {
		pow10Int128[k] = p
		p = p.Mul(ten)
	}
	for k := range scaleQuotient16 {
		scaleQuotient16[k], _ = maxUnscaledDec16.DivMod(pow10Int128[k])
	}
	for k := range pow10Float64 {
		pow10Float64[k] = math.Pow10(k)
	}
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func signInt64(v int64) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// scaleDownAndRound32 divides an over-scaled value by 10^deltaScale,
// truncating toward zero or rounding half away from zero. deltaScale must be
// positive. 10^k is even for k >= 1, so the halfway comparison is an exact
// right shift of the multiplier.
func scaleDownAndRound32(value int32, deltaScale int, round bool) int32 {
	multiplier := pow10Int32[deltaScale]
	result := value / multiplier
	if round {
		remainder := value % multiplier
		if absInt32(remainder) >= multiplier>>1 {
			if value < 0 {
				result--
			} else {
				result++
			}
		}
	}
	return result
}

func scaleDownAndRound64(value int64, deltaScale int, round bool) int64 {
	multiplier := pow10Int64[deltaScale]
	result := value / multiplier
	if round {
		remainder := value % multiplier
		if absInt64(remainder) >= multiplier>>1 {
			result += signInt64(value)
		}
	}
	return result
}

func scaleDownAndRound128(value Int128, deltaScale int, round bool) Int128 {
	multiplier := pow10Int128[deltaScale]
	result, remainder := value.DivMod(multiplier)
	if round {
		if remainder.Abs().Cmp(multiplier.half()) >= 0 {
			result = result.Add(Int128FromInt64(int64(value.Sign())))
		}
	}
	return result
}

func scaleDownAndRound256(value int256.Int, deltaScale int, round bool) int256.Int {
	multiplier := int256.Pow10(deltaScale)
	result, remainder := value.DivMod(multiplier)
	if round {
		if remainder.Abs().Cmp(multiplier.Half()) >= 0 {
			result = result.Add(int256.FromInt64(int64(value.Sign())))
		}
	}
	return result
}

// minLeadingZerosAfterScaling lower-bounds the leading zeros a value with
// numLz leading zeros keeps after multiplication by 10^scaleDiff.
func minLeadingZerosAfterScaling(numLz, scaleDiff int) int {
	return numLz - floorLog2Pow10[scaleDiff] - 1
}

// minLeadingZeros16 lower-bounds the leading zeros either operand would have
// once the lower-scale one is brought up to the scale of the other.
func minLeadingZeros16(x Int128, xScale int, y Int128, yScale int) int {
	xLz := x.leadingZeros()
	yLz := y.leadingZeros()
	if xScale < yScale {
		xLz = minLeadingZerosAfterScaling(xLz, yScale-xScale)
	} else if xScale > yScale {
		yLz = minLeadingZerosAfterScaling(yLz, xScale-yScale)
	}
	return min(xLz, yLz)
}

// adjustToSameScale32 rescales x and y to max(xScale, yScale) in 32 bits.
// The result type always accommodates the scaled operands at this width.
func adjustToSameScale32(x int32, xScale int, y int32, yScale int) (xs, ys int32) {
	switch {
	case xScale == yScale:
		return x, y
	case xScale > yScale:
		return x, y * pow10Int32[xScale-yScale]
	default:
		return x * pow10Int32[yScale-xScale], y
	}
}

func adjustToSameScale64(x int64, xScale int, y int64, yScale int) (xs, ys int64) {
	switch {
	case xScale == yScale:
		return x, y
	case xScale > yScale:
		return x, y * pow10Int64[xScale-yScale]
	default:
		return x * pow10Int64[yScale-xScale], y
	}
}

// adjustToSameScale16 rescales x and y to max(xScale, yScale) in 128 bits.
// At full precision the scaled operand can exceed the 38-digit range; the
// guard compares against maxUnscaledDec16 / 10^delta instead of multiplying,
// and ok is false when the caller has to fall back to a wider intermediate.
func adjustToSameScale16(x Int128, xScale int, y Int128, yScale int, resultPrecision int) (xs, ys Int128, ok bool) {
	switch {
	case xScale == yScale:
		return x, y, true
	case xScale > yScale:
		delta := xScale - yScale
		if resultPrecision == MaxPrecision && scaleQuotient16[delta].cmpAbs(y) < 0 {
			return x, y, false
		}
		return x, y.Mul(pow10Int128[delta]), true
	default:
		delta := yScale - xScale
		if resultPrecision == MaxPrecision && scaleQuotient16[delta].cmpAbs(x) < 0 {
			return x, y, false
		}
		return x.Mul(pow10Int128[delta]), y, true
	}
}
