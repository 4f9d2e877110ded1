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
	"fmt"
	"io"
	"text/tabwriter"

	"lcg-demo/lcg"
)

type table struct {
	w io.Writer
}

func (t *table) Render(r *lcg.Result) error {
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "k\tX_k\tu_k\t")
	for k, x := range r.Values {
		fmt.Fprintf(tw, "%d\t%d\t%s\t\n", k, x, r.UnitString(k))
	}
	return tw.Flush()
}
