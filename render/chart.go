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

package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"lcg-demo/lcg"
)

const (
	defaultChartWidth  = 60
	defaultChartHeight = 15

	// The x axis always spans at least this many indexes.
	minChartSpan = 10
)

// chart draws a scatter plot of (k, u_k) with k on the x axis and u_k in
// [0, 1] on the y axis.
type chart struct {
	w      io.Writer
	width  int
	height int
}

func newChart(w io.Writer, width, height int) *chart {
	return &chart{w: w, width: max(width, 2), height: max(height, 2)}
}

func (c *chart) Render(r *lcg.Result) error {
	span := max(minChartSpan, r.Len()-1)
	grid := make([][]byte, c.height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", c.width))
	}

	for k := range r.Values {
		col := int(math.Round(float64(k) / float64(span) * float64(c.width-1)))
		row := c.height - 1 - int(r.Unit(k)*float64(c.height))
		grid[max(row, 0)][min(col, c.width-1)] = '*'
	}

	bw := bufio.NewWriter(c.w)
	for i, line := range grid {
		label := "    "
		switch i {
		case 0:
			label = "1.0 "
		case c.height - 1:
			label = "0.0 "
		}
		fmt.Fprintf(bw, "%s|%s\n", label, strings.TrimRight(string(line), " "))
	}
	fmt.Fprintf(bw, "    +%s\n", strings.Repeat("-", c.width))
	end := strconv.Itoa(span)
	fmt.Fprintf(bw, "     0%s%s\n", strings.Repeat(" ", max(c.width-1-len(end), 1)), end)
	return bw.Flush()
}
