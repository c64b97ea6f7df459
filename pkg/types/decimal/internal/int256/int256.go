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

// Package int256 implements a signed 256-bit integer on four unsigned
// 64-bit limbs with an explicit sign. It exists to hold intermediates of
// 128-bit decimal arithmetic and is never part of a public surface.
package int256

import "math/bits"

// Int is a signed 256-bit integer. The magnitude lives in abs, little-endian,
// abs[3] most significant. Zero is always stored with neg == false.
type Int struct {
	neg bool
	abs [4]uint64
}

// FromInt64 converts v.
func FromInt64(v int64) Int {
	if v < 0 {
		return Int{neg: true, abs: [4]uint64{uint64(-v)}}
	}
	return Int{abs: [4]uint64{uint64(v)}}
}

// From128 builds an Int from a two's complement 128-bit value given as
// high and low halves.
func From128(hi int64, lo uint64) Int {
	if hi < 0 {
		l, borrow := bits.Sub64(0, lo, 0)
		h, _ := bits.Sub64(0, uint64(hi), borrow)
		return Int{neg: true, abs: [4]uint64{l, h}}
	}
	return Int{abs: [4]uint64{lo, uint64(hi)}}
}

// To128 narrows x to 128 bits, flagging overflow when |x| exceeds the limit
// given as unsigned halves. On overflow the returned halves are unspecified.
func (x Int) To128(limitHi, limitLo uint64) (hi int64, lo uint64, overflow bool) {
	if x.abs[2] != 0 || x.abs[3] != 0 ||
		x.abs[1] > limitHi || (x.abs[1] == limitHi && x.abs[0] > limitLo) {
		return 0, 0, true
	}
	hi, lo = int64(x.abs[1]), x.abs[0]
	if x.neg {
		l, borrow := bits.Sub64(0, lo, 0)
		h, _ := bits.Sub64(0, uint64(hi), borrow)
		hi, lo = int64(h), l
	}
	return hi, lo, false
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool {
	return x.abs[0]|x.abs[1]|x.abs[2]|x.abs[3] == 0
}

// Sign returns -1, 0 or 1.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return x
	}
	x.neg = !x.neg
	return x
}

// Abs returns |x|.
func (x Int) Abs() Int {
	x.neg = false
	return x
}

// LeadingZeros counts the leading zero bits of the magnitude, 256 for zero.
func (x Int) LeadingZeros() int {
	for i := 3; i >= 0; i-- {
		if x.abs[i] != 0 {
			return (3-i)*64 + bits.LeadingZeros64(x.abs[i])
		}
	}
	return 256
}

// Half returns the magnitude of x shifted right by one bit, sign dropped.
func (x Int) Half() Int {
	var z Int
	z.abs[0] = x.abs[0]>>1 | x.abs[1]<<63
	z.abs[1] = x.abs[1]>>1 | x.abs[2]<<63
	z.abs[2] = x.abs[2]>>1 | x.abs[3]<<63
	z.abs[3] = x.abs[3] >> 1
	return z
}

// Cmp returns -1, 0 or 1 comparing x to y.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := cmpMag(&x.abs, &y.abs)
	if xs < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int {
	return cmpMag(&x.abs, &y.abs)
}

func cmpMag(x, y *[4]uint64) int {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x + y. The sum of two 255-bit magnitudes always fits, which is
// the case for every intermediate the decimal paths produce.
func (x Int) Add(y Int) Int {
	var z Int
	if x.neg == y.neg {
		z.abs, _ = addMag(&x.abs, &y.abs)
		z.neg = x.neg
	} else {
		switch cmpMag(&x.abs, &y.abs) {
		case 0:
			return Int{}
		case 1:
			z.abs = subMag(&x.abs, &y.abs)
			z.neg = x.neg
		default:
			z.abs = subMag(&y.abs, &x.abs)
			z.neg = y.neg
		}
	}
	if z.IsZero() {
		z.neg = false
	}
	return z
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

func addMag(x, y *[4]uint64) (z [4]uint64, carry uint64) {
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	return z, carry
}

// subMag computes x - y for x >= y.
func subMag(x, y *[4]uint64) (z [4]uint64) {
	var borrow uint64
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], _ = bits.Sub64(x[3], y[3], borrow)
	return z
}

// Mul returns x * y and whether the product overflowed 256 bits.
func (x Int) Mul(y Int) (Int, bool) {
	p := umul(&x.abs, &y.abs)
	var z Int
	copy(z.abs[:], p[:4])
	z.neg = x.neg != y.neg && !z.IsZero()
	return z, p[4]|p[5]|p[6]|p[7] != 0
}

// umulStep computes (hi * 2^64 + lo) = z + (x * y) + carry.
func umulStep(z, x, y, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// umulHop computes (hi * 2^64 + lo) = z + (x * y).
func umulHop(z, x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	lo, carry := bits.Add64(lo, z, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// umul computes the full 256 x 256 -> 512 bit product.
func umul(x, y *[4]uint64) [8]uint64 {
	var (
		res                           [8]uint64
		carry, carry4, carry5, carry6 uint64
		res1, res2, res3, res4, res5  uint64
	)

	carry, res[0] = bits.Mul64(x[0], y[0])
	carry, res1 = umulHop(carry, x[1], y[0])
	carry, res2 = umulHop(carry, x[2], y[0])
	carry4, res3 = umulHop(carry, x[3], y[0])

	carry, res[1] = umulHop(res1, x[0], y[1])
	carry, res2 = umulStep(res2, x[1], y[1], carry)
	carry, res3 = umulStep(res3, x[2], y[1], carry)
	carry5, res4 = umulStep(carry4, x[3], y[1], carry)

	carry, res[2] = umulHop(res2, x[0], y[2])
	carry, res3 = umulStep(res3, x[1], y[2], carry)
	carry, res4 = umulStep(res4, x[2], y[2], carry)
	carry6, res5 = umulStep(carry5, x[3], y[2], carry)

	carry, res[3] = umulHop(res3, x[0], y[3])
	carry, res[4] = umulStep(res4, x[1], y[3], carry)
	carry, res[5] = umulStep(res5, x[2], y[3], carry)
	res[7], res[6] = umulStep(carry6, x[3], y[3], carry)

	return res
}

// DivMod returns the quotient and remainder of x / y, truncated toward zero.
// The remainder carries the sign of x. y must be non-zero.
func (x Int) DivMod(y Int) (q, r Int) {
	if cmpMag(&x.abs, &y.abs) < 0 {
		return Int{}, x
	}
	var quot [4]uint64
	rem := udivrem(quot[:], x.abs[:], &y.abs)
	q.abs = quot
	q.neg = x.neg != y.neg && !q.IsZero()
	r.abs = rem
	r.neg = x.neg && !r.IsZero()
	return q, r
}

// MulPow10 returns x * 10^k and whether the product overflowed 256 bits.
func (x Int) MulPow10(k int) (Int, bool) {
	if k == 0 {
		return x, false
	}
	return x.Mul(pow10Tab[k])
}

// Pow10 returns 10^k for 0 <= k <= MaxPow10.
func Pow10(k int) Int {
	return pow10Tab[k]
}

// MaxPow10 is the largest exponent Pow10 serves; 10^76 still fits 256 bits.
const MaxPow10 = 76

var pow10Tab [MaxPow10 + 1]Int

func init() {
	p := FromInt64(1)
	ten := FromInt64(10)
	for k := 0; k <= MaxPow10; k++ {
		pow10Tab[k] = p
		p, _ = p.Mul(ten)
	}
}
