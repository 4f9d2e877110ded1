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

import "math/bits"

const (
	DefaultMinExponent = 1
	DefaultMaxExponent = 14
)

// ModulusOption is a power-of-two modulus 2^Exponent.
type ModulusOption struct {
	Exponent int
	Modulus  int64
}

// ModulusOptions lists 2^g for g in [minG, maxG]. Exponents outside [1, 62]
// are clamped.
func ModulusOptions(minG, maxG int) []ModulusOption {
	minG = max(minG, 1)
	maxG = min(maxG, 62)
	var options []ModulusOption
	for g := minG; g <= maxG; g++ {
		options = append(options, ModulusOption{Exponent: g, Modulus: int64(1) << g})
	}
	return options
}

// NextPowerOfTwo returns the smallest power of two >= n, and 2 for n < 1.
func NextPowerOfTwo(n int64) int64 {
	if n < 1 {
		return 2
	}
	if n > 1<<62 {
		return 1 << 62
	}
	return int64(1) << bits.Len64(uint64(n-1))
}

// SuggestModulus picks the smallest option not below NextPowerOfTwo(n), or
// the largest option when none is big enough. It returns 0 when options is
// empty.
func SuggestModulus(n int64, options []ModulusOption) int64 {
	if len(options) == 0 {
		return 0
	}
	target := NextPowerOfTwo(n)
	best := options[len(options)-1].Modulus
	for _, o := range options {
		if o.Modulus >= target && o.Modulus < best {
			best = o.Modulus
		}
	}
	return best
}
