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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	p, err := Validate("16", "5", "3", "7", "5")
	require.NoError(t, err)
	assert.Equal(t, Parameters{Modulus: 16, Multiplier: 5, Increment: 3, Seed: 7, Count: 5}, p)

	p, err = Validate(" 16 ", "-5", "-3", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, Parameters{Modulus: 16, Multiplier: -5, Increment: -3, Seed: 0, Count: 1}, p)
}

func TestValidateRejects(t *testing.T) {
	for _, test := range []struct {
		name string
		raw  RawParameters
		kind ErrorKind
		is   error
	}{
		{"decimal", RawParameters{M: "3.5", A: "1", C: "1", Seed: "1", N: "1"}, NonIntegerInput, ErrNonIntegerInput},
		{"letters", RawParameters{M: "16", A: "abc", C: "1", Seed: "1", N: "1"}, NonIntegerInput, ErrNonIntegerInput},
		{"empty", RawParameters{M: "16", A: "1", C: "", Seed: "1", N: "1"}, NonIntegerInput, ErrNonIntegerInput},
		{"plus sign", RawParameters{M: "16", A: "1", C: "1", Seed: "+1", N: "1"}, NonIntegerInput, ErrNonIntegerInput},
		{"exponent", RawParameters{M: "16", A: "1", C: "1", Seed: "1", N: "1e3"}, NonIntegerInput, ErrNonIntegerInput},
		{"overflow", RawParameters{M: "99999999999999999999", A: "1", C: "1", Seed: "1", N: "1"}, IntegerOutOfRange, ErrIntegerOutOfRange},
		{"modulus one", RawParameters{M: "1", A: "1", C: "1", Seed: "0", N: "1"}, InvalidModulus, ErrInvalidModulus},
		{"modulus zero", RawParameters{M: "0", A: "1", C: "1", Seed: "0", N: "1"}, InvalidModulus, ErrInvalidModulus},
		{"modulus negative", RawParameters{M: "-16", A: "1", C: "1", Seed: "0", N: "1"}, InvalidModulus, ErrInvalidModulus},
		{"seed negative", RawParameters{M: "16", A: "1", C: "1", Seed: "-1", N: "1"}, InvalidSeed, ErrInvalidSeed},
		{"seed equals modulus", RawParameters{M: "16", A: "1", C: "1", Seed: "16", N: "1"}, InvalidSeed, ErrInvalidSeed},
		{"count zero", RawParameters{M: "16", A: "1", C: "1", Seed: "1", N: "0"}, InvalidCount, ErrInvalidCount},
		{"count negative", RawParameters{M: "16", A: "1", C: "1", Seed: "1", N: "-4"}, InvalidCount, ErrInvalidCount},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.raw.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, test.is)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, test.kind, verr.Kind)
		})
	}
}

func TestValidateSyntaxBeforeRange(t *testing.T) {
	// m is invalid but a later parameter is not an integer.
	_, err := Validate("1", "1", "1", "1", "x")
	assert.ErrorIs(t, err, ErrNonIntegerInput)
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := Validate("16", "1", "1", "20", "1")
	require.Error(t, err)
	assert.Equal(t, `seed must be at least 0 and less than m: seed="20"`, err.Error())
}

func TestNeedsConfirmation(t *testing.T) {
	assert.False(t, Parameters{Count: LargeCountThreshold}.NeedsConfirmation())
	assert.True(t, Parameters{Count: LargeCountThreshold + 1}.NeedsConfirmation())
}
