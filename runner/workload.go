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

package runner

import (
	"fmt"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lcg-demo/export"
	"lcg-demo/lcg"
)

// Workload is a batch of generation requests read from YAML.
type Workload struct {
	Requests []Request `yaml:"requests"`
	// Repeat runs every request this many times.
	Repeat int `yaml:"repeat"`
	// TargetRate is in requests per second. Zero means unlimited.
	TargetRate float64 `yaml:"targetRate"`
	// AllowLarge confirms counts above lcg.LargeCountThreshold.
	AllowLarge bool   `yaml:"allowLarge"`
	OutputDir  string `yaml:"outputDir"`
	Format     string `yaml:"format"`
}

type Request struct {
	Name              string `yaml:"name"`
	lcg.RawParameters `yaml:",inline"`
}

func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workload")
	}

	wl := &Workload{}
	if err := yaml.Unmarshal(data, wl); err != nil {
		return nil, errors.Wrapf(err, "failed to parse workload %s", path)
	}
	wl.applyDefaults()
	if err := wl.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid workload %s", path)
	}
	return wl, nil
}

func (wl *Workload) applyDefaults() {
	if wl.Repeat == 0 {
		wl.Repeat = 1
	}
	if wl.Format == "" {
		wl.Format = export.FormatCSVName
	}
	for i := range wl.Requests {
		if wl.Requests[i].Name == "" {
			wl.Requests[i].Name = fmt.Sprintf("request-%d", i)
		}
	}
}

func (wl *Workload) validate() error {
	if len(wl.Requests) == 0 {
		return errors.New("no requests")
	}
	if wl.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative: %d", wl.Repeat)
	}
	if wl.TargetRate < 0 {
		return fmt.Errorf("targetRate must not be negative: %v", wl.TargetRate)
	}
	if !slices.Contains(export.Formats(), wl.Format) {
		return fmt.Errorf("unknown export format: %s", wl.Format)
	}
	return nil
}
