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

var int128One = Int128{lo: 1}

// Add returns x + y as a DECIMAL(resultPrecision, resultScale) value. The
// planner guarantees resultScale == max(xScale, yScale) at this width, which
// makes overflow of the aligned sum impossible; a violated precondition is
// reported as overflow rather than silently accepted.
func (x Dec4) Add(xScale int, y Dec4, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec4 {
	if resultScale != max(xScale, yScale) || resultPrecision > MaxPrecisionDec4 {
		*overflow = true
		return 0
	}
	xs, ys := adjustToSameScale32(int32(x), xScale, int32(y), yScale)
	return Dec4(xs + ys)
}

// Sub returns x - y. Subtraction is addition of the negated operand.
func (x Dec4) Sub(xScale int, y Dec4, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec4 {
	return x.Add(xScale, y.Neg(), yScale, resultPrecision, resultScale, round, overflow)
}

// Add returns x + y as a DECIMAL(resultPrecision, resultScale) value. See
// Dec4.Add for the precondition at widths below 16 bytes.
func (x Dec8) Add(xScale int, y Dec8, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec8 {
	if resultScale != max(xScale, yScale) || resultPrecision > MaxPrecisionDec8 {
		*overflow = true
		return 0
	}
	xs, ys := adjustToSameScale64(int64(x), xScale, int64(y), yScale)
	return Dec8(xs + ys)
}

// Sub returns x - y.
func (x Dec8) Sub(xScale int, y Dec8, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec8 {
	return x.Add(xScale, y.Neg(), yScale, resultPrecision, resultScale, round, overflow)
}

// Add returns x + y as a DECIMAL(resultPrecision, resultScale) value.
//
// Below full precision the aligned sum cannot overflow and is returned
// directly. At precision 38 a conservative leading-zero estimate decides
// whether the aligned values can be summed in 128 bits: with at least 3
// leading zeros each, both are below 2^125, the sum keeps 2 leading zeros
// and 2^126 < 10^38 bounds it within range. Otherwise the operands are
// split into whole and fractional parts which are combined separately.
func (x Dec16) Add(xScale int, y Dec16, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec16 {
	if resultPrecision < MaxPrecision {
		if resultScale != max(xScale, yScale) {
			*overflow = true
			return Dec16{}
		}
		xs, ys, _ := adjustToSameScale16(x.v, xScale, y.v, yScale, resultPrecision)
		return Dec16{v: xs.Add(ys)}
	}

	scaleDecrease := max(xScale-resultScale, yScale-resultScale)
	if scaleDecrease < 0 {
		*overflow = true
		return Dec16{}
	}

	const minLzThreshold = 3
	if minLeadingZeros16(x.v, xScale, y.v, yScale) >= minLzThreshold {
		xs, ys, _ := adjustToSameScale16(x.v, xScale, y.v, yScale, resultPrecision)
		sum := xs.Add(ys)
		if scaleDecrease > 0 {
			sum = scaleDownAndRound128(sum, scaleDecrease, round)
		}
		return Dec16{v: sum}
	}

	var result Int128
	switch {
	case x.v.Sign() >= 0 && y.v.Sign() >= 0:
		result = addLarge(x.v, xScale, y.v, yScale, resultScale, round, overflow)
	case x.v.Sign() <= 0 && y.v.Sign() <= 0:
		result = addLarge(x.v.Neg(), xScale, y.v.Neg(), yScale, resultScale, round, overflow).Neg()
	default:
		result = subtractLarge(x.v, xScale, y.v, yScale, resultScale, round, overflow)
	}
	return Dec16{v: result}
}

// Sub returns x - y.
func (x Dec16) Sub(xScale int, y Dec16, yScale, resultPrecision, resultScale int, round bool, overflow *bool) Dec16 {
	return x.Add(xScale, y.Neg(), yScale, resultPrecision, resultScale, round, overflow)
}

// separateFractional splits x and y into whole and fractional parts at their
// own scales, then brings the fractional part of the lower-scale operand up
// to the common scale. Fractional parts keep the sign of their operand.
func separateFractional(x Int128, xScale int, y Int128, yScale int) (xWhole, xFrac, yWhole, yFrac Int128) {
	xWhole, xFrac = x.DivMod(pow10Int128[xScale])
	yWhole, yFrac = y.DivMod(pow10Int128[yScale])
	if xScale < yScale {
		xFrac = xFrac.Mul(pow10Int128[yScale-xScale])
	} else if yScale < xScale {
		yFrac = yFrac.Mul(pow10Int128[xScale-yScale])
	}
	return xWhole, xFrac, yWhole, yFrac
}

// addLarge adds values too large for the direct 128-bit path. Both operands
// must be non-negative. The fractional sum may carry one unit into the whole
// sum, and after its own scale-down it may legitimately equal 10^resultScale;
// the recombination absorbs that case without special handling.
func addLarge(x Int128, xScale int, y Int128, yScale, resultScale int, round bool, overflow *bool) Int128 {
	xWhole, xFrac, yWhole, yFrac := separateFractional(x, xScale, y, yScale)

	maxScale := max(xScale, yScale)
	scaleDecrease := maxScale - resultScale

	var right, carry Int128
	if xFrac.Cmp(pow10Int128[maxScale].Sub(yFrac)) >= 0 {
		carry = int128One
		right = xFrac.Sub(pow10Int128[maxScale]).Add(yFrac)
	} else {
		right = xFrac.Add(yFrac)
	}
	if scaleDecrease > 0 {
		right = scaleDownAndRound128(right, scaleDecrease, round)
	}

	if xWhole.Cmp(maxUnscaledDec16.Sub(yWhole).Sub(carry)) > 0 {
		*overflow = true
	}
	left := xWhole.Add(yWhole).Add(carry)

	mult := pow10Int128[resultScale]
	if !*overflow {
		limit, _ := maxUnscaledDec16.Sub(right).DivMod(mult)
		if left.Cmp(limit) > 0 {
			*overflow = true
		}
	}
	return left.Mul(mult).Add(right)
}

// subtractLarge combines one positive and one negative operand, neither
// zero. After the split, the whole and fractional sums can disagree in sign;
// one unit of 10^maxScale is moved between them so they agree before the
// fractional part is scaled down.
func subtractLarge(x Int128, xScale int, y Int128, yScale, resultScale int, round bool, overflow *bool) Int128 {
	xWhole, xFrac, yWhole, yFrac := separateFractional(x, xScale, y, yScale)

	maxScale := max(xScale, yScale)
	scaleDecrease := maxScale - resultScale

	right := xFrac.Add(yFrac)
	left := xWhole.Add(yWhole)
	if left.Sign() < 0 && right.Sign() > 0 {
		left = left.Add(int128One)
		right = right.Sub(pow10Int128[maxScale])
	} else if left.Sign() > 0 && right.Sign() < 0 {
		left = left.Sub(int128One)
		right = right.Add(pow10Int128[maxScale])
	}
	if scaleDecrease > 0 {
		right = scaleDownAndRound128(right, scaleDecrease, round)
	}

	mult := pow10Int128[resultScale]
	limit, _ := maxUnscaledDec16.Sub(right.Abs()).DivMod(mult)
	if left.Abs().Cmp(limit) > 0 {
		*overflow = true
	}
	return left.Mul(mult).Add(right)
}
