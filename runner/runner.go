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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/hashicorp/go-multierror"
	"github.com/oxia-db/oxia/common/metric"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"lcg-demo/export"
	"lcg-demo/session"
)

var generateLatency = metric.NewLatencyHistogram("lcg.batch.latency", "Batch generation latency",
	map[string]any{})

type Options struct {
	// Progress receives the progress bar. Nil hides it.
	Progress io.Writer
}

type Report struct {
	Requests  int
	Generated int
	Rejected  int
	Cancelled int
	Files     []string
}

type runner struct {
	workload *Workload
	session  *session.Session
	limiter  *rate.Limiter
	latency  *quantile.Stream
	report   *Report
}

// Run executes every request of the workload in order. A failing request
// does not stop the batch; all failures are returned together once the
// workload is done. Only context cancellation ends it early.
func Run(ctx context.Context, wl *Workload, opts Options) (*Report, error) {
	slog.Info("Running workload", slog.Int("requests", len(wl.Requests)), slog.Int("repeat", wl.Repeat),
		slog.Float64("targetRate", wl.TargetRate))

	limit := rate.Inf
	if wl.TargetRate > 0 {
		limit = rate.Limit(wl.TargetRate)
	}

	allowLarge := wl.AllowLarge
	r := &runner{
		workload: wl,
		session:  session.New(func(int64) bool { return allowLarge }),
		limiter:  rate.NewLimiter(limit, 1),
		latency:  quantile.NewTargeted(0.50, 0.95, 0.99, 1.0),
		report:   &Report{},
	}

	if wl.OutputDir != "" {
		if err := os.MkdirAll(wl.OutputDir, 0o755); err != nil {
			return r.report, errors.Wrap(err, "failed to create output directory")
		}
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(wl.Requests)*wl.Repeat,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Generating"))

	var result *multierror.Error
	start := time.Now()
	for i := 0; i < wl.Repeat; i++ {
		for _, req := range wl.Requests {
			if err := r.limiter.Wait(ctx); err != nil {
				result = multierror.Append(result, err)
				return r.report, result.ErrorOrNil()
			}

			r.report.Requests++
			if err := r.execute(req, i); err != nil {
				slog.Error("Request failed", slog.String("request", req.Name), slog.Any("error", err))
				result = multierror.Append(result, err)
			}
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()

	slog.Info("-------------------------------------------------------")
	printStats(r.report, r.latency, time.Since(start))
	return r.report, result.ErrorOrNil()
}

func (r *runner) execute(req Request, iteration int) error {
	defer r.session.Reset()

	timer := generateLatency.Timer()
	start := time.Now()
	ri := r.session.OnGenerate(req.RawParameters)
	r.latency.Insert(float64(time.Since(start).Microseconds()) / 1000.0) // Convert to millis
	timer.Done()

	switch ri.Outcome {
	case session.Rejected:
		r.report.Rejected++
		return errors.Wrapf(ri.Err, "request %s", req.Name)
	case session.Cancelled:
		r.report.Cancelled++
		slog.Warn("Request skipped, count above threshold and allowLarge is not set",
			slog.String("request", req.Name))
		return nil
	}

	r.report.Generated++
	if r.workload.OutputDir == "" {
		return nil
	}
	return r.writeExport(filepath.Join(r.workload.OutputDir, r.fileName(req.Name, iteration)))
}

func (r *runner) fileName(name string, iteration int) string {
	if r.workload.Repeat > 1 {
		name = fmt.Sprintf("%s-%d", name, iteration)
	}
	return name + export.Extension(r.workload.Format)
}

func (r *runner) writeExport(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "failed to close export file")
		}
	}()

	if err = r.session.Export(f, r.workload.Format); err != nil {
		return err
	}
	r.report.Files = append(r.report.Files, path)
	return nil
}

func printStats(report *Report, latency *quantile.Stream, period time.Duration) {
	requestRate := float64(report.Requests) / period.Seconds()

	slog.Info(fmt.Sprintf(`Stats - Requests: %d (%6.1f req/s) - Generated: %d - Rejected: %d - Cancelled: %d
			Latency ms: 50%% %5.3f - 95%% %5.3f - 99%% %5.3f - max %6.3f`,
		report.Requests,
		requestRate,
		report.Generated,
		report.Rejected,
		report.Cancelled,
		latency.Query(0.5),
		latency.Query(0.95),
		latency.Query(0.99),
		latency.Query(1.0),
	))
}
