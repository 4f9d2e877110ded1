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
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"lcg-demo/export"
	"lcg-demo/lcg"
	"lcg-demo/render"
	"lcg-demo/session"
)

type generateFlags struct {
	raw        lcg.RawParameters
	render     []string
	exportPath string
	format     string
	assumeYes  bool
}

var (
	generateOpts generateFlags

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a sequence and render it",
		Example: `  lcg-demo generate -m 16 -a 5 -c 3 -s 7 -n 5
  lcg-demo generate -a 5 -c 3 -s 7 -n 500 --yes --render summary,chart --export out.csv`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
)

func init() {
	addParameterFlags(generateCmd.Flags(), &generateOpts.raw)
	generateCmd.Flags().StringSliceVarP(&generateOpts.render, "render", "r", []string{render.Table},
		"Renderers: table, chart, summary, csv, json, cbor")
	generateCmd.Flags().StringVarP(&generateOpts.exportPath, "export", "o", "", "Write the result to this file")
	generateCmd.Flags().StringVarP(&generateOpts.format, "format", "f", export.FormatCSVName, "Export format: csv, json, cbor")
	generateCmd.Flags().BoolVarP(&generateOpts.assumeYes, "yes", "y", false, "Do not ask before generating large counts")
	_ = generateCmd.MarkFlagRequired("count")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	renderers, err := render.BuildAll(generateOpts.render, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fillModulus(&generateOpts.raw)
	in := cmd.InOrStdin()
	sess := session.New(newConfirmer(bufio.NewReader(in), cmd.ErrOrStderr(), isInteractive(in), generateOpts.assumeYes))

	ri := sess.OnGenerate(generateOpts.raw)
	switch ri.Outcome {
	case session.Rejected:
		return ri.Err
	case session.Cancelled:
		fmt.Fprintln(cmd.ErrOrStderr(), ri.Message)
		return nil
	}

	for _, r := range renderers {
		if err := r.Render(ri.Result); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ri.Message)

	if generateOpts.exportPath == "" {
		return nil
	}
	return exportTo(sess, generateOpts.exportPath, generateOpts.format)
}

func exportTo(sess *session.Session, path, format string) (err error) {
	if !sess.ExportEnabled() {
		return session.ErrNothingToExport
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create export file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "failed to close export file")
		}
	}()
	return sess.Export(f, format)
}
