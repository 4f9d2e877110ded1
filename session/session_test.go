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

package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcg-demo/export"
	"lcg-demo/lcg"
)

var example = lcg.RawParameters{M: "16", A: "5", C: "3", Seed: "7", N: "5"}

func TestSessionLifecycle(t *testing.T) {
	s := New(nil)
	assert.False(t, s.ExportEnabled())
	assert.Nil(t, s.LastResult())
	assert.ErrorIs(t, s.Export(&bytes.Buffer{}, export.FormatCSVName), ErrNothingToExport)

	ri := s.OnGenerate(example)
	require.Equal(t, Generated, ri.Outcome)
	assert.Equal(t, "generated 5 values", ri.Message)
	assert.NoError(t, ri.Err)
	assert.True(t, ri.ExportEnabled)
	assert.Equal(t, []int64{7, 6, 1, 8, 11}, ri.Result.Values)
	assert.Same(t, ri.Result, s.LastResult())

	buf := &bytes.Buffer{}
	require.NoError(t, s.Export(buf, export.FormatCSVName))
	assert.Equal(t, export.FormatCSV(ri.Result), buf.String())

	s.Reset()
	assert.False(t, s.ExportEnabled())
	assert.Nil(t, s.LastResult())
	assert.ErrorIs(t, s.Export(buf, export.FormatCSVName), ErrNothingToExport)
}

func TestSessionRejectionKeepsLastResult(t *testing.T) {
	s := New(nil)
	first := s.OnGenerate(example)
	require.Equal(t, Generated, first.Outcome)

	ri := s.OnGenerate(lcg.RawParameters{M: "1", A: "5", C: "3", Seed: "0", N: "5"})
	assert.Equal(t, Rejected, ri.Outcome)
	assert.ErrorIs(t, ri.Err, lcg.ErrInvalidModulus)
	assert.Equal(t, ri.Err.Error(), ri.Message)
	assert.Nil(t, ri.Result)
	assert.True(t, ri.ExportEnabled)
	assert.Same(t, first.Result, s.LastResult())
}

func TestSessionRejectionOnEmptySession(t *testing.T) {
	s := New(nil)
	ri := s.OnGenerate(lcg.RawParameters{M: "16", A: "x", C: "3", Seed: "0", N: "5"})
	assert.Equal(t, Rejected, ri.Outcome)
	assert.ErrorIs(t, ri.Err, lcg.ErrNonIntegerInput)
	assert.False(t, ri.ExportEnabled)
}

func TestSessionConfirmationGate(t *testing.T) {
	var asked []int64
	answer := false
	s := New(func(count int64) bool {
		asked = append(asked, count)
		return answer
	})

	// At the threshold no confirmation is needed.
	ri := s.OnGenerate(lcg.RawParameters{M: "128", A: "5", C: "3", Seed: "7", N: "100"})
	require.Equal(t, Generated, ri.Outcome)
	assert.Empty(t, asked)
	previous := ri.Result

	ri = s.OnGenerate(lcg.RawParameters{M: "128", A: "5", C: "3", Seed: "7", N: "101"})
	assert.Equal(t, Cancelled, ri.Outcome)
	assert.Equal(t, "generation cancelled by user", ri.Message)
	assert.NoError(t, ri.Err)
	assert.Equal(t, []int64{101}, asked)
	assert.Same(t, previous, s.LastResult())

	answer = true
	ri = s.OnGenerate(lcg.RawParameters{M: "128", A: "5", C: "3", Seed: "7", N: "101"})
	require.Equal(t, Generated, ri.Outcome)
	assert.Equal(t, 101, ri.Result.Len())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "generated", Generated.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "cancelled", Cancelled.String())
}
