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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lcg-demo/lcg"
)

const crlf = "\r\n"

var csvHeader = []string{"index", "X_k", "u_k"}

// WriteCSV writes the result as quoted CSV: every field is enclosed in
// double quotes and rows are separated, not terminated, by CRLF.
func WriteCSV(w io.Writer, r *lcg.Result) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, csvHeader)
	for k, x := range r.Values {
		bw.WriteString(crlf)
		writeRow(bw, []string{strconv.Itoa(k), strconv.FormatInt(x, 10), r.UnitString(k)})
	}
	return errors.Wrap(bw.Flush(), "failed to write csv")
}

// FormatCSV returns the same content as WriteCSV.
func FormatCSV(r *lcg.Result) string {
	sb := &strings.Builder{}
	_ = WriteCSV(sb, r)
	return sb.String()
}

func writeRow(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(quote(f))
	}
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
