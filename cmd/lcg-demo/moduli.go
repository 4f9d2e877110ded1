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
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"lcg-demo/lcg"
)

var modulusCmd = &cobra.Command{
	Use:   "moduli [n]",
	Short: "List the power-of-two moduli and the one suggested for n",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printModuli(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(modulusCmd)
}

func printModuli(w io.Writer, args []string) error {
	options := lcg.ModulusOptions(lcg.DefaultMinExponent, lcg.DefaultMaxExponent)
	suggested := int64(0)
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("n must be an integer: %q", args[0])
		}
		suggested = lcg.SuggestModulus(n, options)
	}

	for _, o := range options {
		marker := ""
		if o.Modulus == suggested {
			marker = "  <- suggested"
		}
		fmt.Fprintf(w, "%6d (2^%d)%s\n", o.Modulus, o.Exponent, marker)
	}
	return nil
}
