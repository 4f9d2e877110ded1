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

// Package session holds the state of one user of the generator: the last
// generated result, which gates export, and the mapping from raw input to
// what a presentation layer should show.
package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/oxia-db/oxia/common/metric"
	"github.com/pkg/errors"

	"lcg-demo/export"
	"lcg-demo/lcg"
)

var (
	generatedCounter = metric.NewCounter("lcg.generate.requests", "Count of generation requests", "count",
		map[string]any{"outcome": "generated"})
	rejectedCounter = metric.NewCounter("lcg.generate.requests", "Count of generation requests", "count",
		map[string]any{"outcome": "rejected"})
	cancelledCounter = metric.NewCounter("lcg.generate.requests", "Count of generation requests", "count",
		map[string]any{"outcome": "cancelled"})
	valuesCounter = metric.NewCounter("lcg.generate.values", "Count of generated values", "count",
		map[string]any{})
)

var ErrNothingToExport = errors.New("no sequence has been generated")

type Outcome int

const (
	Generated Outcome = iota
	Rejected
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Generated:
		return "generated"
	case Rejected:
		return "rejected"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// RenderInstruction tells the presentation layer what to show after a
// generation request. Result is set only when Outcome is Generated; Err only
// when it is Rejected.
type RenderInstruction struct {
	Outcome       Outcome
	Message       string
	Err           error
	Result        *lcg.Result
	ExportEnabled bool
}

// Confirmer is asked before generating more than lcg.LargeCountThreshold
// values. Returning false cancels the request.
type Confirmer func(count int64) bool

func AlwaysConfirm(int64) bool { return true }

type Session struct {
	confirm Confirmer
	last    *lcg.Result
	log     *slog.Logger
}

// New creates an empty session. A nil confirmer accepts every count.
func New(confirm Confirmer) *Session {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	return &Session{
		confirm: confirm,
		log:     slog.With(slog.String("component", "session")),
	}
}

// OnGenerate validates raw, asks for confirmation on large counts and, on
// success, replaces the cached result.
func (s *Session) OnGenerate(raw lcg.RawParameters) RenderInstruction {
	p, err := raw.Validate()
	if err != nil {
		rejectedCounter.Inc()
		s.log.Debug("Rejected parameters", slog.Any("raw", raw), slog.Any("error", err))
		return RenderInstruction{
			Outcome:       Rejected,
			Message:       err.Error(),
			Err:           err,
			ExportEnabled: s.ExportEnabled(),
		}
	}

	if p.NeedsConfirmation() && !s.confirm(p.Count) {
		cancelledCounter.Inc()
		s.log.Debug("Generation cancelled", slog.Int64("count", p.Count))
		return RenderInstruction{
			Outcome:       Cancelled,
			Message:       "generation cancelled by user",
			ExportEnabled: s.ExportEnabled(),
		}
	}

	result := lcg.Run(p)
	s.last = result
	generatedCounter.Inc()
	valuesCounter.Add(result.Len())
	s.log.Debug("Generated sequence", slog.Any("parameters", p))

	return RenderInstruction{
		Outcome:       Generated,
		Message:       fmt.Sprintf("generated %d values", result.Len()),
		Result:        result,
		ExportEnabled: true,
	}
}

// LastResult returns the cached result, or nil when nothing is available.
func (s *Session) LastResult() *lcg.Result {
	return s.last
}

func (s *Session) ExportEnabled() bool {
	return s.last != nil && s.last.Len() > 0
}

// Reset drops the cached result, disabling export.
func (s *Session) Reset() {
	s.last = nil
	s.log.Debug("Session reset")
}

// Export writes the cached result in the given format.
func (s *Session) Export(w io.Writer, format string) error {
	if !s.ExportEnabled() {
		return ErrNothingToExport
	}
	return export.Write(w, format, s.last)
}
