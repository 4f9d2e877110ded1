// Copyright 2025 The Oxia Authors
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

package lcg

import (
	"math"
	"math/big"
)

const unitDecimals = 6

var belowOne = math.Nextafter(1, 0)

// Normalize returns x/m as a float in [0, 1). For moduli beyond 2^53 the
// quotient can round up to 1, in which case the largest float below 1 is
// returned instead.
func Normalize(x, m int64) float64 {
	u := float64(x) / float64(m)
	if u >= 1 {
		return belowOne
	}
	return u
}

// FormatUnit renders x/m with six decimals. Halves round away from zero on
// the exact value of the float quotient, so 1/128 renders as 0.007813.
func FormatUnit(x, m int64) string {
	return new(big.Rat).SetFloat64(float64(x) / float64(m)).FloatString(unitDecimals)
}
