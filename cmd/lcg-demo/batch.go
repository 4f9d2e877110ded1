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

package main

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"lcg-demo/runner"
)

var (
	workloadCfgPath string
	showProgress    bool

	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Run the generation requests of a workload file",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}
)

func init() {
	batchCmd.Flags().StringVar(&workloadCfgPath, "workload", "", "Path to workload YAML")
	_ = batchCmd.MarkFlagRequired("workload")
	batchCmd.Flags().BoolVar(&showProgress, "progress", true, "Show a progress bar on stderr")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	wl, err := runner.Load(workloadCfgPath)
	if err != nil {
		return err
	}
	slog.Info("Load workload configuration", slog.Any("workloadConfig", wl))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := runner.Options{}
	if showProgress {
		opts.Progress = cmd.ErrOrStderr()
	}
	report, err := runner.Run(ctx, wl, opts)
	if report != nil {
		slog.Info("Workload done", slog.Int("generated", report.Generated), slog.Int("files", len(report.Files)))
	}
	return err
}
