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

// Package decimal implements the fixed-point decimal kernel of the
// execution engine. A decimal is stored as a signed unscaled integer of 4, 8
// or 16 bytes; precision and scale live in the column type and are passed to
// every operation. Arithmetic results are exact for the declared result type,
// with half-away-from-zero rounding or truncation on scale reduction.
//
// Operations never panic and never return errors: overflow and
// division-by-zero are reported through set-only out flags so bulk evaluation
// loops can OR them across a column. The returned value under a raised flag
// is in-range but meaningless.
package decimal

import "math"

// Maximum number of decimal digits each storage width can hold.
const (
	MaxPrecisionDec4 = 9
	MaxPrecisionDec8 = 18
	// MaxPrecision is the overall cap, reached only by Dec16.
	MaxPrecision = 38
)

const (
	// maxUnscaledDec4 = 10^9 - 1.
	maxUnscaledDec4 = int32(999999999)
	// maxUnscaledDec8 = 10^18 - 1.
	maxUnscaledDec8 = int64(999999999999999999)
)

// maxUnscaledDec16 = 10^38 - 1.
var maxUnscaledDec16 = Int128{hi: 0x4b3b4ca85a86c47a, lo: 0x098a223fffffffff}

// Dec4 is a decimal with at most 9 significant digits, stored in 32 bits.
type Dec4 int32

// Dec8 is a decimal with at most 18 significant digits, stored in 64 bits.
type Dec8 int64

// Dec16 is a decimal with at most 38 significant digits, stored in 128 bits.
type Dec16 struct {
	v Int128
}

// NewDec4 wraps an unscaled 32-bit value.
func NewDec4(v int32) Dec4 { return Dec4(v) }

// NewDec8 wraps an unscaled 64-bit value.
func NewDec8(v int64) Dec8 { return Dec8(v) }

// NewDec16 wraps an unscaled 128-bit value.
func NewDec16(v Int128) Dec16 { return Dec16{v: v} }

// Dec16FromInt64 wraps a sign-extended 64-bit unscaled value.
func Dec16FromInt64(v int64) Dec16 { return Dec16{v: Int128FromInt64(v)} }

// Value returns the unscaled integer.
func (x Dec4) Value() int32 { return int32(x) }

// Value returns the unscaled integer.
func (x Dec8) Value() int64 { return int64(x) }

// Value returns the unscaled integer.
func (x Dec16) Value() Int128 { return x.v }

// IsZero reports whether the value is zero.
func (x Dec4) IsZero() bool { return x == 0 }

// IsZero reports whether the value is zero.
func (x Dec8) IsZero() bool { return x == 0 }

// IsZero reports whether the value is zero.
func (x Dec16) IsZero() bool { return x.v.IsZero() }

// Sign returns -1, 0 or 1.
func (x Dec4) Sign() int { return int(signInt64(int64(x))) }

// Sign returns -1, 0 or 1.
func (x Dec8) Sign() int { return int(signInt64(int64(x))) }

// Sign returns -1, 0 or 1.
func (x Dec16) Sign() int { return x.v.Sign() }

// Abs returns the absolute value.
func (x Dec4) Abs() Dec4 { return Dec4(absInt32(int32(x))) }

// Abs returns the absolute value.
func (x Dec8) Abs() Dec8 { return Dec8(absInt64(int64(x))) }

// Abs returns the absolute value.
func (x Dec16) Abs() Dec16 { return Dec16{v: x.v.Abs()} }

// Neg returns the negated value.
func (x Dec4) Neg() Dec4 { return -x }

// Neg returns the negated value.
func (x Dec8) Neg() Dec8 { return -x }

// Neg returns the negated value.
func (x Dec16) Neg() Dec16 { return Dec16{v: x.v.Neg()} }

// WholePart returns the digits left of the decimal point, truncated toward
// zero.
func (x Dec4) WholePart(scale int) int32 { return int32(x) / pow10Int32[scale] }

// WholePart returns the digits left of the decimal point, truncated toward
// zero.
func (x Dec8) WholePart(scale int) int64 { return int64(x) / pow10Int64[scale] }

// WholePart returns the digits left of the decimal point, truncated toward
// zero.
func (x Dec16) WholePart(scale int) Int128 {
	q, _ := x.v.DivMod(pow10Int128[scale])
	return q
}

// FractionalPart returns the digits right of the decimal point as a
// non-negative value.
func (x Dec4) FractionalPart(scale int) int32 {
	return absInt32(int32(x) % pow10Int32[scale])
}

// FractionalPart returns the digits right of the decimal point as a
// non-negative value.
func (x Dec8) FractionalPart(scale int) int64 {
	return absInt64(int64(x) % pow10Int64[scale])
}

// FractionalPart returns the digits right of the decimal point as a
// non-negative value.
func (x Dec16) FractionalPart(scale int) Int128 {
	_, r := x.v.DivMod(pow10Int128[scale])
	return r.Abs()
}

// ToDec8 widens. Widening cannot overflow.
func (x Dec4) ToDec8() Dec8 { return Dec8(x) }

// ToDec16 widens. Widening cannot overflow.
func (x Dec4) ToDec16() Dec16 { return Dec16{v: Int128FromInt64(int64(x))} }

// ToDec16 widens. Widening cannot overflow.
func (x Dec8) ToDec16() Dec16 { return Dec16{v: Int128FromInt64(int64(x))} }

// ToDec4 narrows, flagging overflow when the value exceeds the 32-bit range.
func (x Dec8) ToDec4(overflow *bool) Dec4 {
	if int64(x) > math.MaxInt32 || int64(x) < math.MinInt32 {
		*overflow = true
	}
	return Dec4(int32(x))
}

// ToDec4 narrows, flagging overflow when the value exceeds the 32-bit range.
func (x Dec16) ToDec4(overflow *bool) Dec4 {
	if !x.v.fitsInt64() || x.v.Int64() > math.MaxInt32 || x.v.Int64() < math.MinInt32 {
		*overflow = true
		return 0
	}
	return Dec4(int32(x.v.Int64()))
}

// ToDec8 narrows, flagging overflow when the value exceeds the 64-bit range.
func (x Dec16) ToDec8(overflow *bool) Dec8 {
	if !x.v.fitsInt64() {
		*overflow = true
		return 0
	}
	return Dec8(x.v.Int64())
}
