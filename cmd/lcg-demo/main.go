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
	"io"
	"log/slog"
	"os"

	"github.com/oxia-db/oxia/common/logging"
	"github.com/oxia-db/oxia/common/metric"
	"github.com/spf13/cobra"
)

var (
	metricsAddr string
	metrics     io.Closer

	rootCmd = &cobra.Command{
		Use:               "lcg-demo",
		Short:             "Linear congruential generator demonstrator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: teardown,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Metrics service bind address, disabled when empty")
}

func setup(*cobra.Command, []string) error {
	logging.ConfigureLogger()

	if metricsAddr == "" {
		return nil
	}
	m, err := metric.Start(metricsAddr)
	if err != nil {
		return err
	}
	metrics = m
	slog.Info("Serving metrics", slog.String("addr", metricsAddr))
	return nil
}

func teardown(*cobra.Command, []string) {
	if metrics != nil {
		_ = metrics.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
