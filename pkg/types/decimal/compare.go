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

// Cmp compares two values at the same scale.
func (x Dec4) Cmp(y Dec4) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Cmp compares two values at the same scale.
func (x Dec8) Cmp(y Dec8) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Cmp compares two values at the same scale.
func (x Dec16) Cmp(y Dec16) int {
	return x.v.Cmp(y.v)
}

// CmpScaled compares values carried at different scales. The rescale happens
// in the next wider width, where it cannot overflow.
func (x Dec4) CmpScaled(xScale int, y Dec4, yScale int) int {
	xs, ys := adjustToSameScale64(int64(x), xScale, int64(y), yScale)
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	}
	return 0
}

// CmpScaled compares values carried at different scales through a 128-bit
// rescale.
func (x Dec8) CmpScaled(xScale int, y Dec8, yScale int) int {
	xs := Int128FromInt64(int64(x))
	ys := Int128FromInt64(int64(y))
	if xScale < yScale {
		xs = mulInt64(int64(x), pow10Int64[yScale-xScale])
	} else if yScale < xScale {
		ys = mulInt64(int64(y), pow10Int64[xScale-yScale])
	}
	return xs.Cmp(ys)
}

// CmpScaled compares values carried at different scales through a 256-bit
// rescale.
func (x Dec16) CmpScaled(xScale int, y Dec16, yScale int) int {
	xs := int256.From128(x.v.hi, x.v.lo)
	ys := int256.From128(y.v.hi, y.v.lo)
	if xScale < yScale {
		xs, _ = xs.MulPow10(yScale - xScale)
	} else if yScale < xScale {
		ys, _ = ys.MulPow10(xScale - yScale)
	}
	return xs.Cmp(ys)
}
