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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigPow10(k int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
}

var bigMax16 = new(big.Int).Sub(bigPow10(38), big.NewInt(1))

func int128FromBig(t *testing.T, v *big.Int) Int128 {
	require.LessOrEqual(t, new(big.Int).Abs(v).BitLen(), 127)
	a := new(big.Int).Abs(v)
	lo := new(big.Int).And(a, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(a, 64).Uint64()
	z := Int128{hi: int64(hi), lo: lo}
	if v.Sign() < 0 {
		z = z.Neg()
	}
	return z
}

// refScaleDown divides n by 10^k, truncating or rounding half away from zero.
func refScaleDown(n *big.Int, k int, round bool) *big.Int {
	if k == 0 {
		return new(big.Int).Set(n)
	}
	d := bigPow10(k)
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if round {
		r2 := new(big.Int).Abs(r)
		r2.Lsh(r2, 1)
		if r2.Cmp(d) >= 0 {
			if n.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
	}
	return q
}

func refAdd(x *big.Int, xScale int, y *big.Int, yScale, resultScale int, round bool) (*big.Int, bool) {
	m := max(xScale, yScale)
	xa := new(big.Int).Mul(x, bigPow10(m-xScale))
	ya := new(big.Int).Mul(y, bigPow10(m-yScale))
	sum := refScaleDown(new(big.Int).Add(xa, ya), m-resultScale, round)
	return sum, new(big.Int).Abs(sum).Cmp(bigMax16) > 0
}

func refMul(x *big.Int, xScale int, y *big.Int, yScale, resultScale int, round bool) (*big.Int, bool) {
	prod := refScaleDown(new(big.Int).Mul(x, y), xScale+yScale-resultScale, round)
	return prod, new(big.Int).Abs(prod).Cmp(bigMax16) > 0
}

func refDiv(x *big.Int, xScale int, y *big.Int, yScale, resultScale int, round bool) (*big.Int, bool) {
	scaled := new(big.Int).Mul(x, bigPow10(resultScale+yScale-xScale))
	q, r := new(big.Int).QuoRem(scaled, y, new(big.Int))
	if round {
		r2 := new(big.Int).Abs(r)
		r2.Lsh(r2, 1)
		if r2.Cmp(new(big.Int).Abs(y)) >= 0 {
			if (x.Sign() < 0) != (y.Sign() < 0) {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
	}
	return q, new(big.Int).Abs(q).Cmp(bigMax16) > 0
}

func refMod(x *big.Int, xScale int, y *big.Int, yScale int) *big.Int {
	m := max(xScale, yScale)
	xa := new(big.Int).Mul(x, bigPow10(m-xScale))
	ya := new(big.Int).Mul(y, bigPow10(m-yScale))
	_, r := new(big.Int).QuoRem(xa, ya, new(big.Int))
	return r
}

// dec16Corpus holds unscaled magnitudes that stress both the direct and the
// split-and-recombine paths.
func dec16Corpus() []*big.Int {
	vals := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(5),
		big.NewInt(-123456789),
		bigPow10(18),
		new(big.Int).Neg(bigPow10(18)),
		bigPow10(19),
		bigPow10(37),
		new(big.Int).Sub(bigPow10(37), big.NewInt(11)),
		new(big.Int).Neg(bigPow10(37)),
		new(big.Int).Set(bigMax16),
		new(big.Int).Neg(bigMax16),
		new(big.Int).Sub(bigMax16, big.NewInt(1)),
		new(big.Int).Quo(bigMax16, big.NewInt(2)),
		new(big.Int).Neg(new(big.Int).Quo(bigMax16, big.NewInt(3))),
	}
	return vals
}

var dec16Scales = []int{0, 1, 19, 37, 38}

func TestDec16AddAgainstReference(t *testing.T) {
	for _, round := range []bool{true, false} {
		for _, xb := range dec16Corpus() {
			for _, yb := range dec16Corpus() {
				for _, xScale := range dec16Scales {
					for _, yScale := range dec16Scales {
						maxScale := max(xScale, yScale)
						for _, resultScale := range []int{maxScale, maxScale - 1} {
							if resultScale < 0 {
								continue
							}
							x := Dec16{v: int128FromBig(t, xb)}
							y := Dec16{v: int128FromBig(t, yb)}
							var overflow bool
							got := x.Add(xScale, y, yScale, MaxPrecision, resultScale, round, &overflow)
							want, wantOverflow := refAdd(xb, xScale, yb, yScale, resultScale, round)
							require.Equal(t, wantOverflow, overflow,
								"add %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							if !wantOverflow {
								require.Equal(t, want.String(), got.v.String(),
									"add %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							}
						}
					}
				}
			}
		}
	}
}

func TestDec16SubAgainstReference(t *testing.T) {
	for _, xb := range dec16Corpus() {
		for _, yb := range dec16Corpus() {
			for _, xScale := range []int{0, 19, 38} {
				for _, yScale := range []int{0, 19, 38} {
					resultScale := max(xScale, yScale)
					x := Dec16{v: int128FromBig(t, xb)}
					y := Dec16{v: int128FromBig(t, yb)}
					var overflow bool
					got := x.Sub(xScale, y, yScale, MaxPrecision, resultScale, true, &overflow)
					want, wantOverflow := refAdd(xb, xScale, new(big.Int).Neg(yb), yScale, resultScale, true)
					require.Equal(t, wantOverflow, overflow)
					if !wantOverflow {
						require.Equal(t, want.String(), got.v.String())
					}
				}
			}
		}
	}
}

func TestDec16MulAgainstReference(t *testing.T) {
	for _, round := range []bool{true, false} {
		for _, xb := range dec16Corpus() {
			for _, yb := range dec16Corpus() {
				for _, xScale := range []int{0, 19, 38} {
					for _, yScale := range []int{0, 19, 38} {
						for _, delta := range []int{0, 1, 19} {
							resultScale := xScale + yScale - delta
							if resultScale < 0 || resultScale > MaxPrecision {
								continue
							}
							x := Dec16{v: int128FromBig(t, xb)}
							y := Dec16{v: int128FromBig(t, yb)}
							var overflow bool
							got := x.Mul(xScale, y, yScale, MaxPrecision, resultScale, round, &overflow)
							want, wantOverflow := refMul(xb, xScale, yb, yScale, resultScale, round)
							require.Equal(t, wantOverflow, overflow,
								"mul %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							if !wantOverflow {
								require.Equal(t, want.String(), got.v.String(),
									"mul %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							}
						}
					}
				}
			}
		}
	}
}

func TestDec16DivAgainstReference(t *testing.T) {
	for _, round := range []bool{true, false} {
		for _, xb := range dec16Corpus() {
			for _, yb := range dec16Corpus() {
				if yb.Sign() == 0 {
					continue
				}
				for _, xScale := range []int{0, 19, 38} {
					for _, yScale := range []int{0, 1, 19} {
						for _, resultScale := range []int{0, 6, 38} {
							scaleBy := resultScale + yScale - xScale
							if scaleBy < 0 {
								continue
							}
							x := Dec16{v: int128FromBig(t, xb)}
							y := Dec16{v: int128FromBig(t, yb)}
							var overflow, isNaN bool
							got := x.Div(xScale, y, yScale, MaxPrecision, resultScale, round, &isNaN, &overflow)
							require.False(t, isNaN)
							want, wantOverflow := refDiv(xb, xScale, yb, yScale, resultScale, round)
							require.Equal(t, wantOverflow, overflow,
								"div %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							if !wantOverflow {
								require.Equal(t, want.String(), got.v.String(),
									"div %v@%d %v@%d -> scale %d round %v", xb, xScale, yb, yScale, resultScale, round)
							}
						}
					}
				}
			}
		}
	}
}

func TestDec16ModAgainstReference(t *testing.T) {
	for _, xb := range dec16Corpus() {
		for _, yb := range dec16Corpus() {
			if yb.Sign() == 0 {
				continue
			}
			for _, xScale := range []int{0, 1, 19, 38} {
				for _, yScale := range []int{0, 1, 19, 38} {
					resultScale := max(xScale, yScale)
					x := Dec16{v: int128FromBig(t, xb)}
					y := Dec16{v: int128FromBig(t, yb)}
					var overflow, isNaN bool
					got := x.Mod(xScale, y, yScale, MaxPrecision, resultScale, true, &isNaN, &overflow)
					require.False(t, isNaN)
					require.False(t, overflow)
					want := refMod(xb, xScale, yb, yScale)
					require.Equal(t, want.String(), got.v.String(),
						"mod %v@%d %v@%d", xb, xScale, yb, yScale)
				}
			}
		}
	}
}

func TestDivByZeroIsNaN(t *testing.T) {
	var overflow, isNaN bool
	NewDec4(100).Div(2, NewDec4(0), 0, 9, 2, true, &isNaN, &overflow)
	require.True(t, isNaN)
	require.False(t, overflow)

	overflow, isNaN = false, false
	NewDec8(100).Div(2, NewDec8(0), 0, 18, 2, true, &isNaN, &overflow)
	require.True(t, isNaN)
	require.False(t, overflow)

	overflow, isNaN = false, false
	Dec16FromInt64(100).Div(2, Dec16{}, 0, 38, 2, true, &isNaN, &overflow)
	require.True(t, isNaN)
	require.False(t, overflow)

	overflow, isNaN = false, false
	Dec16FromInt64(100).Mod(2, Dec16{}, 0, 38, 2, true, &isNaN, &overflow)
	require.True(t, isNaN)
	require.False(t, overflow)
}

func TestAddScenario(t *testing.T) {
	// 1.23 + 0.2 typed DECIMAL(4,2) is 1.43.
	var overflow bool
	got := NewDec4(123).Add(2, NewDec4(2), 1, 4, 2, true, &overflow)
	require.False(t, overflow)
	require.Equal(t, NewDec4(143), got)
	require.Equal(t, "1.43", got.ToString(4, 2))
}

func TestMulScenario(t *testing.T) {
	// 1.23 * 2.5 typed DECIMAL(6,3) is 3.075.
	var overflow bool
	got := NewDec8(123).Mul(2, NewDec8(25), 1, 6, 3, true, &overflow)
	require.False(t, overflow)
	require.Equal(t, NewDec8(3075), got)
	require.Equal(t, "3.075", got.ToString(6, 3))
}

func TestDivScenario(t *testing.T) {
	// 1 / 3 typed DECIMAL(10,9): rounding and truncation agree here.
	for _, round := range []bool{true, false} {
		var overflow, isNaN bool
		got := NewDec8(1).Div(0, NewDec8(3), 0, 10, 9, round, &isNaN, &overflow)
		require.False(t, isNaN)
		require.False(t, overflow)
		require.Equal(t, NewDec8(333333333), got)
		require.Equal(t, "0.333333333", got.ToString(10, 9))
	}
}

func TestModScenario(t *testing.T) {
	// 7.5 mod 2.1 is 1.2.
	var overflow, isNaN bool
	got := NewDec4(75).Mod(1, NewDec4(21), 1, 2, 1, true, &isNaN, &overflow)
	require.False(t, isNaN)
	require.False(t, overflow)
	require.Equal(t, NewDec4(12), got)
}

func TestAddOverflowNearMax(t *testing.T) {
	// Two 38-digit values whose sum tops 10^38 - 1.
	half := Dec16{v: int128FromBig(t, new(big.Int).Quo(bigPow10(38), big.NewInt(2)))}
	var overflow bool
	half.Add(0, half, 0, 38, 0, true, &overflow)
	require.True(t, overflow)

	// The same magnitudes with opposite signs cancel instead.
	overflow = false
	got := half.Add(0, half.Neg(), 0, 38, 0, true, &overflow)
	require.False(t, overflow)
	require.True(t, got.IsZero())
}

func TestMulScaleDown39(t *testing.T) {
	// Tiny scale-38 operands multiply into scale 37: the product is below
	// half an ulp and collapses to zero without a 10^39 multiplier existing
	// in 128 bits.
	var overflow bool
	got := Dec16FromInt64(1).Mul(38, Dec16FromInt64(1), 38, 38, 37, true, &overflow)
	require.False(t, overflow)
	require.True(t, got.IsZero())

	// Large scale-38 operands take the wide intermediate instead and keep
	// their digits: 0.5 * 0.5 = 0.25.
	halfOne := Dec16{v: int128FromBig(t, new(big.Int).Quo(bigPow10(38), big.NewInt(2)))}
	overflow = false
	got = halfOne.Mul(38, halfOne, 38, 38, 37, true, &overflow)
	require.False(t, overflow)
	require.Equal(t, new(big.Int).Quo(bigPow10(37), big.NewInt(4)).String(), got.v.String())
}

func TestAddCommutes(t *testing.T) {
	for _, xb := range dec16Corpus() {
		for _, yb := range dec16Corpus() {
			x := Dec16{v: int128FromBig(t, xb)}
			y := Dec16{v: int128FromBig(t, yb)}
			var o1, o2 bool
			xy := x.Add(3, y, 1, MaxPrecision, 3, true, &o1)
			yx := y.Add(1, x, 3, MaxPrecision, 3, true, &o2)
			require.Equal(t, o1, o2)
			if !o1 {
				require.Equal(t, xy, yx)
			}

			o1, o2 = false, false
			xy = x.Mul(3, y, 1, MaxPrecision, 4, true, &o1)
			yx = y.Mul(1, x, 3, MaxPrecision, 4, true, &o2)
			require.Equal(t, o1, o2)
			if !o1 {
				require.Equal(t, xy, yx)
			}
		}
	}
}

func TestAddIdentities(t *testing.T) {
	for _, xb := range dec16Corpus() {
		x := Dec16{v: int128FromBig(t, xb)}
		var overflow bool

		// x + 0 == x.
		got := x.Add(2, Dec16{}, 2, MaxPrecision, 2, true, &overflow)
		require.False(t, overflow)
		require.Equal(t, x, got)

		// x + (-x) == 0 and x - x == 0.
		got = x.Add(2, x.Neg(), 2, MaxPrecision, 2, true, &overflow)
		require.False(t, overflow)
		require.True(t, got.IsZero())
		got = x.Sub(2, x, 2, MaxPrecision, 2, true, &overflow)
		require.False(t, overflow)
		require.True(t, got.IsZero())

		// x * 1 == x, with 1 carried at scale 0.
		got = x.Mul(2, Dec16FromInt64(1), 0, MaxPrecision, 2, true, &overflow)
		require.False(t, overflow)
		require.Equal(t, x, got)
	}
}

func TestDivRemainderLaw(t *testing.T) {
	// With truncation, x - (x/y)*y stays below |y| at the result scale.
	pairs := []struct{ x, y int64 }{
		{100, 7}, {-100, 7}, {100, -7}, {-100, -7},
		{999999999999999999, 31}, {5, 999999999999999999},
	}
	for _, p := range pairs {
		var overflow, isNaN bool
		x := NewDec8(p.x)
		y := NewDec8(p.y)
		q := x.Div(0, y, 0, 18, 0, false, &isNaN, &overflow)
		prod := q.Mul(0, y, 0, 18, 0, false, &overflow)
		diff := prod.Sub(0, x, 0, 18, 0, false, &overflow)
		require.False(t, overflow)
		require.False(t, isNaN)
		require.Less(t, absInt64(int64(diff)), absInt64(p.y))
	}
}

func TestCompareTotalOrder(t *testing.T) {
	type scaled struct {
		v Dec16
		s int
	}
	var all []scaled
	for _, vb := range dec16Corpus() {
		for _, s := range []int{0, 1, 19, 38} {
			all = append(all, scaled{Dec16{v: int128FromBig(t, vb)}, s})
		}
	}
	ref := func(a, b scaled) int {
		m := max(a.s, b.s)
		av := new(big.Int).Mul(bigFromInt128(a.v.v), bigPow10(m-a.s))
		bv := new(big.Int).Mul(bigFromInt128(b.v.v), bigPow10(m-b.s))
		return av.Cmp(bv)
	}
	for _, a := range all {
		for _, b := range all {
			got := a.v.CmpScaled(a.s, b.v, b.s)
			require.Equal(t, ref(a, b), got)
			// Antisymmetry.
			require.Equal(t, -got, b.v.CmpScaled(b.s, a.v, a.s))
		}
	}
}

func TestCmpScaledNarrowWidths(t *testing.T) {
	require.Equal(t, 0, NewDec4(1230).CmpScaled(3, NewDec4(123), 2))
	require.Equal(t, -1, NewDec4(-1).CmpScaled(9, NewDec4(1), 0))
	require.Equal(t, 1, NewDec4(maxUnscaledDec4).CmpScaled(0, NewDec4(1), 9))

	require.Equal(t, 0, NewDec8(5000).CmpScaled(4, NewDec8(5), 1))
	require.Equal(t, 1, NewDec8(maxUnscaledDec8).CmpScaled(0, NewDec8(maxUnscaledDec8), 18))
	require.Equal(t, -1, NewDec8(-maxUnscaledDec8).CmpScaled(0, NewDec8(-maxUnscaledDec8), 18))

	require.Equal(t, 0, NewDec4(7).Cmp(NewDec4(7)))
	require.Equal(t, -1, NewDec8(-7).Cmp(NewDec8(7)))
	require.Equal(t, 1, Dec16FromInt64(8).Cmp(Dec16FromInt64(7)))
}

func TestNarrowWidthPreconditions(t *testing.T) {
	// A result scale that is not max(xScale, yScale) is a planner contract
	// breach and surfaces as overflow, never as a silent wrong answer.
	var overflow bool
	NewDec4(1).Add(2, NewDec4(1), 1, 4, 1, true, &overflow)
	require.True(t, overflow)

	overflow = false
	NewDec8(1).Add(2, NewDec8(1), 1, 18, 3, true, &overflow)
	require.True(t, overflow)

	overflow = false
	var isNaN bool
	NewDec8(10).Mod(2, NewDec8(3), 1, 18, 1, true, &isNaN, &overflow)
	require.True(t, overflow)
}
