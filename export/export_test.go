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

package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcg-demo/lcg"
)

func exampleResult() *lcg.Result {
	return lcg.Run(lcg.Parameters{Modulus: 16, Multiplier: 5, Increment: 3, Seed: 7, Count: 5})
}

func TestFormatCSV(t *testing.T) {
	expected := `"index","X_k","u_k"` + "\r\n" +
		`"0","7","0.437500"` + "\r\n" +
		`"1","6","0.375000"` + "\r\n" +
		`"2","1","0.062500"` + "\r\n" +
		`"3","8","0.500000"` + "\r\n" +
		`"4","11","0.687500"`
	assert.Equal(t, expected, FormatCSV(exampleResult()))
}

func TestQuoteEscapesQuotes(t *testing.T) {
	assert.Equal(t, `"a""b"`, quote(`a"b`))
	assert.Equal(t, `""`, quote(""))
}

func TestWriteDispatch(t *testing.T) {
	r := exampleResult()

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, FormatCSVName, r))
	assert.Equal(t, FormatCSV(r), buf.String())

	buf.Reset()
	require.NoError(t, Write(buf, FormatJSONName, r))
	doc := Document{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, r.Parameters, doc.Parameters)
	require.Len(t, doc.Rows, 5)
	assert.Equal(t, Row{Index: 4, X: 11, U: 0.6875}, doc.Rows[4])

	buf.Reset()
	require.NoError(t, Write(buf, FormatCBORName, r))
	doc = Document{}
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, NewDocument(r), &doc)

	assert.Error(t, Write(buf, "xml", r))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".csv", Extension(FormatCSVName))
	assert.Equal(t, []string{"csv", "json", "cbor"}, Formats())
}
