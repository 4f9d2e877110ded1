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
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LargeCountThreshold is the count above which callers should ask for
// confirmation before generating.
const LargeCountThreshold int64 = 100

var integerSyntax = regexp.MustCompile(`^-?\d+$`)

// Parameters is a validated parameter set. Seed satisfies 0 <= Seed < Modulus.
type Parameters struct {
	Modulus    int64 `yaml:"m" json:"m" cbor:"m"`
	Multiplier int64 `yaml:"a" json:"a" cbor:"a"`
	Increment  int64 `yaml:"c" json:"c" cbor:"c"`
	Seed       int64 `yaml:"seed" json:"seed" cbor:"seed"`
	Count      int64 `yaml:"n" json:"n" cbor:"n"`
}

// RawParameters holds the parameters as they were typed.
type RawParameters struct {
	M    string `yaml:"m"`
	A    string `yaml:"a"`
	C    string `yaml:"c"`
	Seed string `yaml:"seed"`
	N    string `yaml:"n"`
}

func (r RawParameters) Validate() (Parameters, error) {
	return Validate(r.M, r.A, r.C, r.Seed, r.N)
}

// Validate parses and checks the five raw parameters. The returned error, if
// any, is a *ValidationError describing the first failed check.
func Validate(rawM, rawA, rawC, rawSeed, rawN string) (Parameters, error) {
	raws := []struct {
		name  string
		value string
	}{
		{"m", rawM},
		{"a", rawA},
		{"c", rawC},
		{"seed", rawSeed},
		{"n", rawN},
	}

	for _, r := range raws {
		if !integerSyntax.MatchString(strings.TrimSpace(r.value)) {
			return Parameters{}, newValidationError(NonIntegerInput, r.name, r.value)
		}
	}

	parsed := make([]int64, len(raws))
	for i, r := range raws {
		v, err := strconv.ParseInt(strings.TrimSpace(r.value), 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Parameters{}, newValidationError(IntegerOutOfRange, r.name, r.value)
			}
			return Parameters{}, newValidationError(NonIntegerInput, r.name, r.value)
		}
		parsed[i] = v
	}

	p := Parameters{
		Modulus:    parsed[0],
		Multiplier: parsed[1],
		Increment:  parsed[2],
		Seed:       parsed[3],
		Count:      parsed[4],
	}
	if err := p.Check(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Check enforces the range invariants on already parsed parameters.
func (p Parameters) Check() error {
	if p.Modulus <= 1 {
		return newValidationError(InvalidModulus, "m", strconv.FormatInt(p.Modulus, 10))
	}
	if p.Seed < 0 || p.Seed >= p.Modulus {
		return newValidationError(InvalidSeed, "seed", strconv.FormatInt(p.Seed, 10))
	}
	if p.Count < 1 {
		return newValidationError(InvalidCount, "n", strconv.FormatInt(p.Count, 10))
	}
	return nil
}

// NeedsConfirmation reports whether the count exceeds LargeCountThreshold.
func (p Parameters) NeedsConfirmation() bool {
	return p.Count > LargeCountThreshold
}
