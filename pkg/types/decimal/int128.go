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
	"math/bits"
	"strconv"

	"github.com/pingcap/decimal/pkg/types/decimal/internal/int256"
)

// Int128 is a signed 128-bit integer in two's complement, the unscaled
// storage of Dec16. Arithmetic wraps around like the native integer types.
type Int128 struct {
	hi int64
	lo uint64
}

// NewInt128 builds an Int128 from its high and low 64-bit halves.
func NewInt128(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Int128FromInt64 sign-extends v to 128 bits.
func Int128FromInt64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// HighBits returns the high 64 bits of the two's complement representation.
func (x Int128) HighBits() int64 { return x.hi }

// LowBits returns the low 64 bits of the two's complement representation.
func (x Int128) LowBits() uint64 { return x.lo }

// Int64 truncates x to 64 bits. Callers must check fitsInt64 first.
func (x Int128) Int64() int64 { return int64(x.lo) }

func (x Int128) fitsInt64() bool {
	return x.hi == int64(x.lo)>>63
}

// IsZero reports whether x == 0.
func (x Int128) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Int128) Sign() int {
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	return int(1 | x.hi>>63)
}

// Neg returns -x.
func (x Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, x.lo, 0)
	hi, _ := bits.Sub64(0, uint64(x.hi), borrow)
	return Int128{hi: int64(hi), lo: lo}
}

// Abs returns |x|.
func (x Int128) Abs() Int128 {
	if x.hi < 0 {
		return x.Neg()
	}
	return x
}

// absU returns the magnitude of x as unsigned halves.
func (x Int128) absU() (hi, lo uint64) {
	a := x.Abs()
	return uint64(a.hi), a.lo
}

// Add returns x + y.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(uint64(x.hi), uint64(y.hi), carry)
	return Int128{hi: int64(hi), lo: lo}
}

// Sub returns x - y.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(uint64(x.hi), uint64(y.hi), borrow)
	return Int128{hi: int64(hi), lo: lo}
}

// Cmp returns -1, 0 or 1 comparing x to y.
func (x Int128) Cmp(y Int128) int {
	if x.hi != y.hi {
		if x.hi < y.hi {
			return -1
		}
		return 1
	}
	if x.lo != y.lo {
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// cmpAbs compares |x| and |y|.
func (x Int128) cmpAbs(y Int128) int {
	xh, xl := x.absU()
	yh, yl := y.absU()
	if xh != yh {
		if xh < yh {
			return -1
		}
		return 1
	}
	if xl != yl {
		if xl < yl {
			return -1
		}
		return 1
	}
	return 0
}

// leadingZeros counts the leading zero bits of |x|. Returns 128 for zero.
func (x Int128) leadingZeros() int {
	hi, lo := x.absU()
	if hi != 0 {
		return bits.LeadingZeros64(hi)
	}
	return 64 + bits.LeadingZeros64(lo)
}

// Mul returns the low 128 bits of x * y.
func (x Int128) Mul(y Int128) Int128 {
	hi, lo := bits.Mul64(x.lo, y.lo)
	hi += uint64(x.hi)*y.lo + x.lo*uint64(y.hi)
	return Int128{hi: int64(hi), lo: lo}
}

// mulInt64 returns the full 128-bit product of two int64 values.
func mulInt64(a, b int64) Int128 {
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}
	hi, lo := bits.Mul64(ua, ub)
	p := Int128{hi: int64(hi), lo: lo}
	if neg {
		return p.Neg()
	}
	return p
}

// DivMod returns the quotient and remainder of x / y, truncated toward zero.
// The remainder carries the sign of x. y must be non-zero.
func (x Int128) DivMod(y Int128) (q, r Int128) {
	uh, ul := x.absU()
	vh, vl := y.absU()
	qh, ql, rh, rl := int256.Div128(uh, ul, vh, vl)
	q = Int128{hi: int64(qh), lo: ql}
	r = Int128{hi: int64(rh), lo: rl}
	if (x.hi < 0) != (y.hi < 0) {
		q = q.Neg()
	}
	if x.hi < 0 {
		r = r.Neg()
	}
	return q, r
}

// half returns x / 2 for non-negative x.
func (x Int128) half() Int128 {
	return Int128{hi: x.hi >> 1, lo: x.lo>>1 | uint64(x.hi)<<63}
}

// String formats x in decimal, mainly for tests and diagnostics.
func (x Int128) String() string {
	if x.fitsInt64() {
		return strconv.FormatInt(x.Int64(), 10)
	}
	// Split the magnitude into 19-digit chunks that fit in uint64.
	chunk := pow10Int128[19]
	q, r := x.Abs().DivMod(chunk)
	s := strconv.FormatUint(r.lo, 10)
	if q.lo != 0 {
		s = strconv.FormatUint(q.lo, 10) + leftPad(s, 19)
	}
	if x.hi < 0 {
		return "-" + s
	}
	return s
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
