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

import "github.com/pingcap/decimal/pkg/types/decimal/internal/int256"

// Mul returns x * y as a DECIMAL(resultPrecision, resultScale) value. The
// unscaled product already sits at scale xScale + yScale, so the only scale
// work is dividing back down by 10^(xScale + yScale - resultScale).
func (x Dec4) Mul(xScale int, y Dec4, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec4 {
	if x == 0 || y == 0 {
		return 0
	}
	deltaScale := xScale + yScale - resultScale
	if deltaScale < 0 || resultPrecision > MaxPrecisionDec4 {
		*overflow = true
		return 0
	}
	result := int32(x) * int32(y)
	if deltaScale > 0 {
		result = scaleDownAndRound32(result, deltaScale, round)
	}
	return Dec4(result)
}

// Mul returns x * y as a DECIMAL(resultPrecision, resultScale) value.
func (x Dec8) Mul(xScale int, y Dec8, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec8 {
	if x == 0 || y == 0 {
		return 0
	}
	deltaScale := xScale + yScale - resultScale
	if deltaScale < 0 || resultPrecision > MaxPrecisionDec8 {
		*overflow = true
		return 0
	}
	result := int64(x) * int64(y)
	if deltaScale > 0 {
		result = scaleDownAndRound64(result, deltaScale, round)
	}
	return Dec8(result)
}

// Mul returns x * y as a DECIMAL(resultPrecision, resultScale) value.
//
// Below precision 38 the product always fits in 128 bits. At full precision
// a leading-zero sum of at most 128 conservatively signals that the 128-bit
// product may wrap; with deltaScale == 0 that is refined into a definite
// overflow answer by a guarded division, otherwise the product is taken in
// 256 bits, scaled down and narrowed. deltaScale == 39 only happens when two
// scale-38 values multiply into scale 37. When such a product goes through
// the 256-bit path it is scaled down normally (0.5 * 0.5 yields 0.25). When it
// fits in 128 bits, the exact result is below 0.5*10^-37 and rounds to zero,
// and 10^39 has no 128-bit representation, so zero is returned outright.
func (x Dec16) Mul(xScale int, y Dec16, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec16 {
	xv, yv := x.v, y.v
	if xv.IsZero() || yv.IsZero() {
		return Dec16{}
	}
	deltaScale := xScale + yScale - resultScale
	if deltaScale < 0 {
		*overflow = true
		return Dec16{}
	}

	needsInt256 := false
	if resultPrecision == MaxPrecision {
		totalLz := xv.leadingZeros() + yv.leadingZeros()
		// Quick but conservative: may ask for 256 bits when 128 would do.
		needsInt256 = totalLz <= 128
		if needsInt256 && deltaScale == 0 {
			limit, _ := maxUnscaledDec16.DivMod(yv.Abs())
			if xv.cmpAbs(limit) > 0 {
				// The intermediate cannot fit in 128 bits, and with no scale
				// reduction neither can the final value.
				*overflow = true
			} else {
				needsInt256 = false
			}
		}
	}

	var result Int128
	if needsInt256 {
		if deltaScale != 0 {
			wide, _ := int256.From128(xv.hi, xv.lo).Mul(int256.From128(yv.hi, yv.lo))
			wide = scaleDownAndRound256(wide, deltaScale, round)
			result = narrowToDec16(wide, overflow)
		}
		// deltaScale == 0 was refined into overflow above.
	} else {
		switch {
		case deltaScale == 0:
			result = xv.Mul(yv)
			if resultPrecision == MaxPrecision && result.cmpAbs(maxUnscaledDec16) > 0 {
				*overflow = true
			}
		case deltaScale <= MaxPrecision:
			// The raw product can top 10^38, but dividing by at least 10
			// brings it back under the cap; no overflow check needed.
			result = scaleDownAndRound128(xv.Mul(yv), deltaScale, round)
		default:
			// deltaScale == 39, exact zero.
		}
	}
	return Dec16{v: result}
}

// narrowToDec16 narrows a 256-bit intermediate to the 38-digit range,
// flagging overflow.
func narrowToDec16(v int256.Int, overflow *bool) Int128 {
	limitHi, limitLo := maxUnscaledDec16.absU()
	hi, lo, ovf := v.To128(limitHi, limitLo)
	if ovf {
		*overflow = true
		return Int128{}
	}
	return NewInt128(hi, lo)
}
