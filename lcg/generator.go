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
	"fmt"
	"math/bits"
)

// maxPrealloc caps the initial capacity of generated slices so that an
// absurd count fails by running out of memory gradually rather than on a
// single allocation.
const maxPrealloc = 1 << 20

type Generator interface {
	Next() int64
}

var _ Generator = &congruential{}

type congruential struct {
	modulus    uint64
	multiplier uint64
	increment  uint64
	state      int64
}

// Next returns the current state and advances to
// ((a*x + c) mod m + m) mod m.
func (g *congruential) Next() int64 {
	x := g.state
	g.state = g.step(x)
	return x
}

func (g *congruential) step(x int64) int64 {
	hi, lo := bits.Mul64(g.multiplier, reduce(x, g.modulus))
	lo, carry := bits.Add64(lo, g.increment, 0)
	// a, x, c < m so hi+carry < m and Div64 cannot overflow.
	_, rem := bits.Div64(hi+carry, lo, g.modulus)
	return int64(rem)
}

// reduce maps v into [0, m) with the double modulo. The sum is done in
// uint64 so it cannot overflow for m close to 2^63.
func reduce(v int64, m uint64) uint64 {
	r := v % int64(m)
	return (uint64(r) + m) % m
}

// NewGenerator returns a streaming generator for p, starting at p.Seed.
// It panics when the modulus is not greater than 1.
func NewGenerator(p Parameters) Generator {
	if p.Modulus <= 1 {
		panic(fmt.Sprintf("lcg modulus must be greater than 1, got %d", p.Modulus))
	}
	m := uint64(p.Modulus)
	return &congruential{
		modulus:    m,
		multiplier: reduce(p.Multiplier, m),
		increment:  reduce(p.Increment, m),
		state:      p.Seed,
	}
}

// Generate returns the first count values of the sequence
// X[0] = seed, X[k+1] = ((a*X[k] + c) mod m + m) mod m.
// A count below 1 yields an empty sequence.
func Generate(modulus, multiplier, increment, seed, count int64) []int64 {
	if count < 1 {
		return []int64{}
	}
	g := NewGenerator(Parameters{
		Modulus:    modulus,
		Multiplier: multiplier,
		Increment:  increment,
		Seed:       seed,
		Count:      count,
	})
	values := make([]int64, 0, min(count, maxPrealloc))
	for k := int64(0); k < count; k++ {
		values = append(values, g.Next())
	}
	return values
}

// Result is a completed generation: the parameters used and X[0..n-1].
type Result struct {
	Parameters Parameters
	Values     []int64
}

// Run generates the sequence for p, which is expected to have passed Check.
func Run(p Parameters) *Result {
	return &Result{
		Parameters: p,
		Values:     Generate(p.Modulus, p.Multiplier, p.Increment, p.Seed, p.Count),
	}
}

func (r *Result) Len() int {
	return len(r.Values)
}

// Unit returns u_k = X[k]/m.
func (r *Result) Unit(k int) float64 {
	return Normalize(r.Values[k], r.Parameters.Modulus)
}

// UnitString returns u_k with six decimals.
func (r *Result) UnitString(k int) string {
	return FormatUnit(r.Values[k], r.Parameters.Modulus)
}

// Units returns every u_k in order.
func (r *Result) Units() []float64 {
	units := make([]float64, len(r.Values))
	for k := range r.Values {
		units[k] = r.Unit(k)
	}
	return units
}
