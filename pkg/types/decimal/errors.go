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

import "github.com/pingcap/errors"

// Errors of the parse surface and of FlagsError. Arithmetic itself reports
// through out flags, not errors; see the package comment.
var (
	// ErrOverflow means a value does not fit the declared precision.
	ErrOverflow = errors.New("decimal value is out of range")
	// ErrBadNumber means the text is not a decimal literal.
	ErrBadNumber = errors.New("invalid decimal text")
	// ErrDivByZero means division or modulo by zero.
	ErrDivByZero = errors.New("decimal division by zero")
)

// FlagsError maps flags accumulated over a batch of operations to the error
// a caller should raise, division-by-zero taking priority. Returns nil when
// both flags are clear.
func FlagsError(overflow, isNaN bool) error {
	if isNaN {
		return ErrDivByZero
	}
	if overflow {
		return ErrOverflow
	}
	return nil
}
