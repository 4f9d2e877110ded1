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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulusOptions(t *testing.T) {
	options := ModulusOptions(DefaultMinExponent, DefaultMaxExponent)
	require.Len(t, options, 14)
	assert.Equal(t, ModulusOption{Exponent: 1, Modulus: 2}, options[0])
	assert.Equal(t, ModulusOption{Exponent: 14, Modulus: 16384}, options[13])

	assert.Len(t, ModulusOptions(0, 100), 62)
	assert.Empty(t, ModulusOptions(5, 4))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, int64(2), NextPowerOfTwo(0))
	assert.Equal(t, int64(1), NextPowerOfTwo(1))
	assert.Equal(t, int64(16), NextPowerOfTwo(16))
	assert.Equal(t, int64(32), NextPowerOfTwo(17))
}

func TestSuggestModulus(t *testing.T) {
	options := ModulusOptions(DefaultMinExponent, DefaultMaxExponent)
	assert.Equal(t, int64(2), SuggestModulus(1, options))
	assert.Equal(t, int64(16), SuggestModulus(10, options))
	assert.Equal(t, int64(128), SuggestModulus(100, options))
	assert.Equal(t, int64(16384), SuggestModulus(1_000_000, options))
	assert.Equal(t, int64(0), SuggestModulus(10, nil))
}
