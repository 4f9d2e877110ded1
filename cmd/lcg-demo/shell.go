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
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lcg-demo/export"
	"lcg-demo/lcg"
	"lcg-demo/render"
	"lcg-demo/session"
)

const shellHelp = `Commands:
  generate <m> <a> <c> <seed> <n>   generate and render a sequence ("-" for m suggests it from n)
  show [renderer...]                render the last sequence again (table, chart, summary, csv, json)
  export <path> [format]            write the last sequence to a file (csv, json, cbor)
  reset                             clear the last sequence
  moduli [n]                        list power-of-two moduli, suggesting one for n
  help                              show this text
  quit                              leave the shell
`

var (
	shellRender    []string
	shellAssumeYes bool

	shellCmd = &cobra.Command{
		Use:   "shell",
		Short: "Interactive session keeping the last generated sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			sh := newShell(in, cmd.OutOrStdout(), isInteractive(in), shellAssumeYes, shellRender)
			return sh.loop()
		},
	}
)

func init() {
	shellCmd.Flags().StringSliceVarP(&shellRender, "render", "r", []string{render.Table, render.Chart},
		"Renderers used after each generate")
	shellCmd.Flags().BoolVarP(&shellAssumeYes, "yes", "y", false, "Do not ask before generating large counts")

	rootCmd.AddCommand(shellCmd)
}

type shell struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	renderers   []string
	session     *session.Session
}

func newShell(in io.Reader, out io.Writer, interactive, assumeYes bool, renderers []string) *shell {
	reader := bufio.NewReader(in)
	return &shell{
		in:          reader,
		out:         out,
		interactive: interactive,
		renderers:   renderers,
		session:     session.New(newConfirmer(reader, out, interactive, assumeYes)),
	}
}

func (s *shell) loop() error {
	for {
		if s.interactive {
			fmt.Fprint(s.out, "lcg> ")
		}
		line, err := s.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := s.dispatch(strings.Fields(line)); quit {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// dispatch runs one command. Errors are printed and the shell keeps going.
func (s *shell) dispatch(args []string) (quit bool) {
	var err error
	switch args[0] {
	case "generate", "gen", "g":
		err = s.generate(args[1:])
	case "show":
		err = s.show(args[1:])
	case "export":
		err = s.export(args[1:])
	case "reset":
		s.session.Reset()
		fmt.Fprintln(s.out, "cleared")
	case "moduli":
		err = printModuli(s.out, args[1:])
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit", "q":
		return true
	default:
		err = fmt.Errorf("unknown command %q, try help", args[0])
	}
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
	}
	return false
}

func (s *shell) generate(args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("generate takes 5 arguments, got %d", len(args))
	}
	raw := lcg.RawParameters{M: args[0], A: args[1], C: args[2], Seed: args[3], N: args[4]}
	if raw.M == "-" {
		raw.M = ""
		fillModulus(&raw)
	}

	ri := s.session.OnGenerate(raw)
	if ri.Outcome == session.Generated {
		if err := s.render(s.renderers, ri.Result); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, ri.Message)
	return nil
}

func (s *shell) show(args []string) error {
	result := s.session.LastResult()
	if result == nil {
		return session.ErrNothingToExport
	}
	if len(args) == 0 {
		args = s.renderers
	}
	return s.render(args, result)
}

func (s *shell) render(names []string, result *lcg.Result) error {
	renderers, err := render.BuildAll(names, s.out)
	if err != nil {
		return err
	}
	for _, r := range renderers {
		if err := r.Render(result); err != nil {
			return err
		}
	}
	return nil
}

func (s *shell) export(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: export <path> [format]")
	}
	format := export.FormatCSVName
	if len(args) == 2 {
		format = args[1]
	}
	if err := exportTo(s.session, args[0], format); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "exported to", args[0])
	return nil
}
