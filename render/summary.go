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

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"lcg-demo/lcg"
)

// summary prints descriptive figures of u_k. It makes no claim about the
// quality of the generator.
type summary struct {
	w io.Writer
}

type figures struct {
	min, max, mean, stddev float64
}

func describe(units []float64) (figures, error) {
	var f figures
	var err error
	if f.min, err = stats.Min(units); err != nil {
		return f, errors.Wrap(err, "failed to compute min")
	}
	if f.max, err = stats.Max(units); err != nil {
		return f, errors.Wrap(err, "failed to compute max")
	}
	if f.mean, err = stats.Mean(units); err != nil {
		return f, errors.Wrap(err, "failed to compute mean")
	}
	if f.stddev, err = stats.StandardDeviation(units); err != nil {
		return f, errors.Wrap(err, "failed to compute standard deviation")
	}
	return f, nil
}

func (s *summary) Render(r *lcg.Result) error {
	p := r.Parameters
	fmt.Fprintf(s.w, "m=%d a=%d c=%d seed=%d n=%d\n", p.Modulus, p.Multiplier, p.Increment, p.Seed, r.Len())

	f, err := describe(r.Units())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.w, "u_k: min %.6f - max %.6f - mean %.6f - stddev %.6f\n", f.min, f.max, f.mean, f.stddev)
	return err
}
