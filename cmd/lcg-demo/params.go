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
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"lcg-demo/lcg"
	"lcg-demo/session"
)

// addParameterFlags binds the five raw parameters. Values stay strings so
// that validation reports malformed input the same way for every front end.
func addParameterFlags(fs *pflag.FlagSet, raw *lcg.RawParameters) {
	fs.StringVarP(&raw.M, "modulus", "m", "", "Modulus m, suggested from n when empty")
	fs.StringVarP(&raw.A, "multiplier", "a", "", "Multiplier a")
	fs.StringVarP(&raw.C, "increment", "c", "", "Increment c")
	fs.StringVarP(&raw.Seed, "seed", "s", "", "Seed X_0")
	fs.StringVarP(&raw.N, "count", "n", "", "Number of values to generate")
}

// fillModulus suggests a power-of-two modulus when none was given and the
// count is a valid integer.
func fillModulus(raw *lcg.RawParameters) {
	if strings.TrimSpace(raw.M) != "" {
		return
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw.N), 10, 64)
	if err != nil {
		return
	}
	m := lcg.SuggestModulus(n, lcg.ModulusOptions(lcg.DefaultMinExponent, lcg.DefaultMaxExponent))
	raw.M = strconv.FormatInt(m, 10)
	slog.Info("Suggested modulus", slog.Int64("m", m), slog.Int64("n", n))
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newConfirmer asks on out and reads the answer from in. Without a terminal
// on the input side large counts are declined, unless assumeYes is set.
func newConfirmer(in *bufio.Reader, out io.Writer, interactive, assumeYes bool) session.Confirmer {
	if assumeYes {
		return session.AlwaysConfirm
	}
	return func(count int64) bool {
		if !interactive {
			slog.Warn("Large count declined on non-interactive input, use --yes to allow it",
				slog.Int64("count", count))
			return false
		}
		fmt.Fprintf(out, "Requested %d values, more than %d. Continue? [y/N] ", count, lcg.LargeCountThreshold)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
