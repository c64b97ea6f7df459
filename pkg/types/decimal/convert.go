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

import "math"

const two64 = float64(1 << 64)

// ScaleTo adjusts the value from srcScale to dstScale within the same width,
// flagging overflow against 10^dstPrecision. Scaling down can still
// overflow, because this path also converts between precisions: 100 as
// DECIMAL(3,0) does not fit DECIMAL(2,0).
func (x Dec4) ScaleTo(srcScale, dstScale, dstPrecision int, overflow *bool) Dec4 {
	deltaScale := srcScale - dstScale
	result := int32(x)
	maxValue := pow10Int32[dstPrecision]
	if deltaScale >= 0 {
		if deltaScale != 0 {
			result /= pow10Int32[deltaScale]
		}
		if absInt32(result) >= maxValue {
			*overflow = true
		}
	} else {
		mult := pow10Int32[-deltaScale]
		if absInt32(result) >= maxValue/mult {
			*overflow = true
		}
		result *= mult
	}
	return Dec4(result)
}

// ScaleTo adjusts the value from srcScale to dstScale within the same width,
// flagging overflow against 10^dstPrecision.
func (x Dec8) ScaleTo(srcScale, dstScale, dstPrecision int, overflow *bool) Dec8 {
	deltaScale := srcScale - dstScale
	result := int64(x)
	maxValue := pow10Int64[dstPrecision]
	if deltaScale >= 0 {
		if deltaScale != 0 {
			result /= pow10Int64[deltaScale]
		}
		if absInt64(result) >= maxValue {
			*overflow = true
		}
	} else {
		mult := pow10Int64[-deltaScale]
		if absInt64(result) >= maxValue/mult {
			*overflow = true
		}
		result *= mult
	}
	return Dec8(result)
}

// ScaleTo adjusts the value from srcScale to dstScale within the same width,
// flagging overflow against 10^dstPrecision.
func (x Dec16) ScaleTo(srcScale, dstScale, dstPrecision int, overflow *bool) Dec16 {
	deltaScale := srcScale - dstScale
	result := x.v
	maxValue := pow10Int128[dstPrecision]
	if deltaScale >= 0 {
		if deltaScale != 0 {
			result, _ = result.DivMod(pow10Int128[deltaScale])
		}
		if result.cmpAbs(maxValue) >= 0 {
			*overflow = true
		}
	} else {
		mult := pow10Int128[-deltaScale]
		limit, _ := maxValue.DivMod(mult)
		if result.cmpAbs(limit) >= 0 {
			*overflow = true
		}
		result = result.Mul(mult)
	}
	return Dec16{v: result}
}

// Dec4FromInt builds i * 10^scale, flagging overflow when i has more than
// precision - scale whole digits.
func Dec4FromInt(precision, scale int, i int64, overflow *bool) Dec4 {
	maxValue := int64(pow10Int32[precision-scale])
	if absInt64(i) >= maxValue {
		*overflow = true
		return 0
	}
	return Dec4(int32(i) * pow10Int32[scale])
}

// Dec8FromInt builds i * 10^scale, flagging overflow when i has more than
// precision - scale whole digits.
func Dec8FromInt(precision, scale int, i int64, overflow *bool) Dec8 {
	maxValue := pow10Int64[precision-scale]
	if absInt64(i) >= maxValue {
		*overflow = true
		return 0
	}
	return Dec8(i * pow10Int64[scale])
}

// Dec16FromInt builds i * 10^scale, flagging overflow when i has more than
// precision - scale whole digits.
func Dec16FromInt(precision, scale int, i int64, overflow *bool) Dec16 {
	maxValue := pow10Int128[precision-scale]
	if Int128FromInt64(i).cmpAbs(maxValue) >= 0 {
		*overflow = true
		return Dec16{}
	}
	return Dec16{v: Int128FromInt64(i).Mul(pow10Int128[scale])}
}

// Dec4FromFloat64 converts d to DECIMAL(precision, scale). The multiplication
// by 10^scale happens in float64 and is not exact; the error can push a value
// near the precision limit over it, which is reported as overflow. NaN is
// overflow as well.
func Dec4FromFloat64(precision, scale int, d float64, round bool, overflow *bool) Dec4 {
	d *= pow10Float64[scale]
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= pow10Float64[precision] {
		*overflow = true
		return 0
	}
	return Dec4(int32(d))
}

// Dec8FromFloat64 converts d to DECIMAL(precision, scale). See
// Dec4FromFloat64.
func Dec8FromFloat64(precision, scale int, d float64, round bool, overflow *bool) Dec8 {
	d *= pow10Float64[scale]
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= pow10Float64[precision] {
		*overflow = true
		return 0
	}
	return Dec8(int64(d))
}

// Dec16FromFloat64 converts d to DECIMAL(precision, scale). See
// Dec4FromFloat64.
func Dec16FromFloat64(precision, scale int, d float64, round bool, overflow *bool) Dec16 {
	d *= pow10Float64[scale]
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= pow10Float64[precision] {
		*overflow = true
		return Dec16{}
	}
	return Dec16{v: int128FromFloat64(math.Trunc(d))}
}

// int128FromFloat64 converts a truncated float64 with |d| < 2^127 to Int128.
func int128FromFloat64(d float64) Int128 {
	neg := d < 0
	a := math.Abs(d)
	hi := uint64(a / two64)
	lo := uint64(a - float64(hi)*two64)
	v := Int128{hi: int64(hi), lo: lo}
	if neg {
		return v.Neg()
	}
	return v
}

// ToInt64 returns the whole part of the value rounded half away from zero,
// flagging overflow when it does not fit int64.
func (x Dec4) ToInt64(scale int, overflow *bool) int64 {
	return roundedWhole64(int64(x), pow10Int64[scale])
}

// ToInt64 returns the whole part of the value rounded half away from zero,
// flagging overflow when it does not fit int64.
func (x Dec8) ToInt64(scale int, overflow *bool) int64 {
	return roundedWhole64(int64(x), pow10Int64[scale])
}

// ToInt64 returns the whole part of the value rounded half away from zero,
// flagging overflow when it does not fit int64.
func (x Dec16) ToInt64(scale int, overflow *bool) int64 {
	divisor := pow10Int128[scale]
	result := x.v
	if scale > 0 {
		q, r := x.v.DivMod(divisor)
		if r.Abs().Cmp(divisor.half()) >= 0 {
			q = q.Add(Int128FromInt64(int64(x.v.Sign())))
		}
		result = q
	}
	if !result.fitsInt64() {
		*overflow = true
		return 0
	}
	return result.Int64()
}

// roundedWhole64 divides by a power of ten and rounds half away from zero.
// The divisor is even for any positive scale, so the halfway point is exact
// under a right shift.
func roundedWhole64(v, divisor int64) int64 {
	if divisor == 1 {
		return v
	}
	result := v / divisor
	remainder := v % divisor
	if absInt64(remainder) >= divisor>>1 {
		result += signInt64(v)
	}
	return result
}

// ToFloat64 returns the value divided by 10^scale as float64, with the usual
// loss of precision past 2^53.
func (x Dec4) ToFloat64(scale int) float64 {
	return float64(x) / pow10Float64[scale]
}

// ToFloat64 returns the value divided by 10^scale as float64.
func (x Dec8) ToFloat64(scale int) float64 {
	return float64(x) / pow10Float64[scale]
}

// ToFloat64 returns the value divided by 10^scale as float64.
func (x Dec16) ToFloat64(scale int) float64 {
	hi, lo := x.v.absU()
	f := float64(hi)*two64 + float64(lo)
	if x.v.Sign() < 0 {
		f = -f
	}
	return f / pow10Float64[scale]
}
