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

import "strconv"

// ToString renders the exact decimal text for the value: optional minus, at
// least one digit left of the point, and exactly scale digits after it. A
// value whose digits are all fractional gets an explicit leading zero, so
// unscaled -1 at DECIMAL(3,3) prints as "-0.001".
func (x Dec4) ToString(precision, scale int) string {
	return formatUnscaled(x < 0, strconv.FormatUint(uint64(absInt32(int32(x))), 10), scale)
}

// ToString renders the exact decimal text for the value.
func (x Dec8) ToString(precision, scale int) string {
	return formatUnscaled(x < 0, strconv.FormatUint(uint64(absInt64(int64(x))), 10), scale)
}

// ToString renders the exact decimal text for the value.
func (x Dec16) ToString(precision, scale int) string {
	return formatUnscaled(x.v.Sign() < 0, x.v.Abs().String(), scale)
}

// formatUnscaled assembles sign, whole part and zero-padded fraction from
// the magnitude digits of the unscaled value.
func formatUnscaled(neg bool, digits string, scale int) string {
	var whole, frac string
	if len(digits) > scale {
		whole, frac = digits[:len(digits)-scale], digits[len(digits)-scale:]
	} else {
		whole, frac = "0", leftPad(digits, scale)
	}

	out := make([]byte, 0, len(whole)+scale+2)
	if neg {
		out = append(out, '-')
	}
	out = append(out, whole...)
	if scale > 0 {
		out = append(out, '.')
		out = append(out, frac...)
	}
	return string(out)
}

// ParseDec4 parses the text of a DECIMAL(precision, scale) value at width 4.
func ParseDec4(precision, scale int, s string) (Dec4, error) {
	if precision > MaxPrecisionDec4 {
		return 0, ErrBadNumber
	}
	v, err := parseUnscaled(precision, scale, s)
	if err != nil {
		return 0, err
	}
	return Dec4(int32(v.Int64())), nil
}

// ParseDec8 parses the text of a DECIMAL(precision, scale) value at width 8.
func ParseDec8(precision, scale int, s string) (Dec8, error) {
	if precision > MaxPrecisionDec8 {
		return 0, ErrBadNumber
	}
	v, err := parseUnscaled(precision, scale, s)
	if err != nil {
		return 0, err
	}
	return Dec8(v.Int64()), nil
}

// ParseDec16 parses the text of a DECIMAL(precision, scale) value at width
// 16.
func ParseDec16(precision, scale int, s string) (Dec16, error) {
	v, err := parseUnscaled(precision, scale, s)
	if err != nil {
		return Dec16{}, err
	}
	return Dec16{v: v}, nil
}

// parseUnscaled parses [+-]digits[.digits] into an unscaled value at the
// requested scale. Fractional digits beyond the scale round half away from
// zero; the value must fit precision digits after rounding.
func parseUnscaled(precision, scale int, s string) (Int128, error) {
	if precision < 1 || precision > MaxPrecision || scale < 0 || scale > precision {
		return Int128{}, ErrBadNumber
	}
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	intStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	intPart := s[intStart:i]
	var fracPart string
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		i = fracStart
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		fracPart = s[fracStart:i]
	}
	if i != len(s) || len(intPart)+len(fracPart) == 0 {
		return Int128{}, ErrBadNumber
	}

	for len(intPart) > 0 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	if len(intPart) > precision-scale {
		return Int128{}, ErrOverflow
	}

	ten := Int128FromInt64(10)
	var v Int128
	for k := 0; k < len(intPart); k++ {
		v = v.Mul(ten).Add(Int128FromInt64(int64(intPart[k] - '0')))
	}
	for k := 0; k < scale; k++ {
		var d int64
		if k < len(fracPart) {
			d = int64(fracPart[k] - '0')
		}
		v = v.Mul(ten).Add(Int128FromInt64(d))
	}
	if len(fracPart) > scale && fracPart[scale] >= '5' {
		v = v.Add(int128One)
	}
	if v.cmpAbs(pow10Int128[precision]) >= 0 {
		return Int128{}, ErrOverflow
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}
