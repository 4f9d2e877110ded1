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
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"lcg-demo/lcg"
)

const (
	FormatCSVName  = "csv"
	FormatJSONName = "json"
	FormatCBORName = "cbor"
)

// Document is the structured form of a result used by the JSON and CBOR
// exports.
type Document struct {
	Parameters lcg.Parameters `json:"parameters" cbor:"parameters"`
	Rows       []Row          `json:"rows" cbor:"rows"`
}

type Row struct {
	Index int     `json:"index" cbor:"index"`
	X     int64   `json:"x_k" cbor:"x_k"`
	U     float64 `json:"u_k" cbor:"u_k"`
}

func NewDocument(r *lcg.Result) *Document {
	doc := &Document{
		Parameters: r.Parameters,
		Rows:       make([]Row, len(r.Values)),
	}
	for k, x := range r.Values {
		doc.Rows[k] = Row{Index: k, X: x, U: r.Unit(k)}
	}
	return doc
}

func WriteJSON(w io.Writer, r *lcg.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(NewDocument(r)), "failed to write json")
}

func WriteCBOR(w io.Writer, r *lcg.Result) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return errors.Wrap(err, "failed to create cbor encoder")
	}
	return errors.Wrap(em.NewEncoder(w).Encode(NewDocument(r)), "failed to write cbor")
}

// Write exports r in the named format.
func Write(w io.Writer, format string, r *lcg.Result) error {
	switch format {
	case FormatCSVName:
		return WriteCSV(w, r)
	case FormatJSONName:
		return WriteJSON(w, r)
	case FormatCBORName:
		return WriteCBOR(w, r)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
}

// Extension returns the file suffix for format, including the dot.
func Extension(format string) string {
	return "." + format
}

func Formats() []string {
	return []string{FormatCSVName, FormatJSONName, FormatCBORName}
}
