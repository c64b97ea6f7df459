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

// Div returns x / y as a DECIMAL(resultPrecision, resultScale) value.
// Division by zero raises isNaN and leaves overflow untouched.
//
// The dividend is scaled up by 10^(resultScale + yScale - xScale) and then
// divided as integers, which truncates exactly at the result scale. Rounding
// compares the doubled remainder against the divisor; the doubling is always
// done in the wider intermediate, where it cannot wrap.
func (x Dec4) Div(xScale int, y Dec4, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec4 {
	q := divNarrow(int64(x), xScale, int64(y), yScale, resultScale, MaxPrecisionDec4, round, isNaN, overflow)
	if q > int64(maxUnscaledDec4) || q < -int64(maxUnscaledDec4) {
		*overflow = true
		return 0
	}
	return Dec4(int32(q))
}

// Div returns x / y as a DECIMAL(resultPrecision, resultScale) value. See
// Dec4.Div.
func (x Dec8) Div(xScale int, y Dec8, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec8 {
	q := divNarrow(int64(x), xScale, int64(y), yScale, resultScale, MaxPrecisionDec8, round, isNaN, overflow)
	if q > maxUnscaledDec8 || q < -maxUnscaledDec8 {
		*overflow = true
		return 0
	}
	return Dec8(q)
}

// divNarrow divides at widths 4 and 8 through a 128-bit intermediate. The
// planner keeps scaleBy within the width's precision, so the scaled-up
// dividend stays far below 2^127.
func divNarrow(x int64, xScale int, y int64, yScale, resultScale, maxScaleBy int, round bool, isNaN, overflow *bool) int64 {
	if y == 0 {
		*isNaN = true
		return 0
	}
	scaleBy := resultScale + yScale - xScale
	if scaleBy < 0 || scaleBy > maxScaleBy {
		*overflow = true
		return 0
	}
	x128 := Int128FromInt64(x).Mul(pow10Int128[scaleBy])
	y128 := Int128FromInt64(y)
	q, r := x128.DivMod(y128)
	if round && !r.IsZero() {
		if r.Add(r).cmpAbs(y128) >= 0 {
			bump := int64(1)
			if (x < 0) != (y < 0) {
				bump = -1
			}
			q = q.Add(Int128FromInt64(bump))
		}
	}
	if !q.fitsInt64() {
		*overflow = true
		return 0
	}
	return q.Int64()
}

// Div returns x / y as a DECIMAL(resultPrecision, resultScale) value.
//
// The dividend is widened to 256 bits before scaling, because the scaled-up
// value routinely tops 128 bits. The doubled-remainder rounding test also
// runs in 256 bits: the 128-bit residual can occupy all bits short of the
// sign and must not be doubled there. The rounding bump of +-1 can itself
// push the quotient past 10^38 - 1, so overflow is rechecked afterwards.
func (x Dec16) Div(xScale int, y Dec16, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec16 {
	if y.v.IsZero() {
		*isNaN = true
		return Dec16{}
	}
	scaleBy := resultScale + yScale - xScale
	if scaleBy < 0 || scaleBy > int256.MaxPow10 {
		*overflow = true
		return Dec16{}
	}
	x256, ovf := int256.From128(x.v.hi, x.v.lo).MulPow10(scaleBy)
	if ovf {
		*overflow = true
		return Dec16{}
	}
	y256 := int256.From128(y.v.hi, y.v.lo)
	q256, r256 := x256.DivMod(y256)
	q := narrowToDec16(q256, overflow)
	if round && !r256.IsZero() {
		if r256.Add(r256).CmpAbs(y256) >= 0 {
			bump := int64(1)
			if (x.v.Sign() < 0) != (y.v.Sign() < 0) {
				bump = -1
			}
			q = q.Add(Int128FromInt64(bump))
		}
	}
	if resultPrecision == MaxPrecision && q.cmpAbs(maxUnscaledDec16) > 0 {
		*overflow = true
	}
	return Dec16{v: q}
}

// Mod returns x mod y at scale max(xScale, yScale). Modulo by zero raises
// isNaN. The result magnitude is strictly below the aligned |y| and no larger
// than the aligned |x|, so it always fits the result width.
func (x Dec4) Mod(xScale int, y Dec4, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec4 {
	if y == 0 {
		*isNaN = true
		return 0
	}
	if resultScale != max(xScale, yScale) {
		*overflow = true
		return 0
	}
	xs, ys := adjustToSameScale32(int32(x), xScale, int32(y), yScale)
	return Dec4(xs % ys)
}

// Mod returns x mod y at scale max(xScale, yScale). See Dec4.Mod.
func (x Dec8) Mod(xScale int, y Dec8, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec8 {
	if y == 0 {
		*isNaN = true
		return 0
	}
	if resultScale != max(xScale, yScale) {
		*overflow = true
		return 0
	}
	xs, ys := adjustToSameScale64(int64(x), xScale, int64(y), yScale)
	return Dec8(xs % ys)
}

// Mod returns x mod y at scale max(xScale, yScale).
//
// The 256-bit detour is only taken when full precision, differing scales and
// the leading-zero estimate all fail to rule out rescaling overflow.
func (x Dec16) Mod(xScale int, y Dec16, yScale, resultPrecision, resultScale int, round bool, isNaN, overflow *bool) Dec16 {
	if y.v.IsZero() {
		*isNaN = true
		return Dec16{}
	}
	if resultScale != max(xScale, yScale) {
		*overflow = true
		return Dec16{}
	}
	if resultPrecision < MaxPrecision || xScale == yScale ||
		minLeadingZeros16(x.v, xScale, y.v, yScale) >= 2 {
		xs, ys, _ := adjustToSameScale16(x.v, xScale, y.v, yScale, resultPrecision)
		_, r := xs.DivMod(ys)
		return Dec16{v: r}
	}

	x256 := int256.From128(x.v.hi, x.v.lo)
	y256 := int256.From128(y.v.hi, y.v.lo)
	if xScale < yScale {
		x256, _ = x256.MulPow10(yScale - xScale)
	} else {
		y256, _ = y256.MulPow10(xScale - yScale)
	}
	_, r256 := x256.DivMod(y256)
	return Dec16{v: narrowToDec16(r256, overflow)}
}
