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

	"lcg-demo/export"
	"lcg-demo/lcg"
)

const (
	Table   = "table"
	Chart   = "chart"
	Summary = "summary"
)

// Renderer presents a generated result.
type Renderer interface {
	Render(r *lcg.Result) error
}

func Build(name string, w io.Writer) (Renderer, error) {
	switch name {
	case Table:
		return &table{w: w}, nil
	case Chart:
		return newChart(w, defaultChartWidth, defaultChartHeight), nil
	case Summary:
		return &summary{w: w}, nil
	case export.FormatCSVName, export.FormatJSONName, export.FormatCBORName:
		return &exporter{w: w, format: name}, nil
	default:
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
}

// BuildAll builds one renderer per name, all writing to w.
func BuildAll(names []string, w io.Writer) ([]Renderer, error) {
	renderers := make([]Renderer, 0, len(names))
	for _, name := range names {
		r, err := Build(name, w)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}

type exporter struct {
	w      io.Writer
	format string
}

func (e *exporter) Render(r *lcg.Result) error {
	if err := export.Write(e.w, e.format, r); err != nil {
		return err
	}
	if e.format == export.FormatCSVName {
		_, err := io.WriteString(e.w, "\n")
		return err
	}
	return nil
}
