// Copyright 2026 exponential-integral Authors
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

// Command ei evaluates the exponential integral Ei(x).
//
// Usage:
//
//	ei 1.5 -2 0.25
//	ei --with-error 10
//	ei --asymptotic-threshold 50 -- -45
//
// One result is printed per input line on stdout. Inputs that fail (the
// singularity at 0, NaN) are reported on stderr and the process exits with
// status 1; remaining inputs are still evaluated.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wrsturgeon/exponential-integral/expint"
)

var (
	epsilon             float64
	maxIterations       int
	asymptoticThreshold float64
	withError           bool
)

var rootCmd = &cobra.Command{
	Use:   "ei x [x ...]",
	Short: "Compute the exponential integral Ei(x)",
	Long: `ei computes the exponential integral

    Ei(x) = PV ∫_{-∞}^{x} e^u/u du

for each argument, one result per line. Ei is undefined at x = 0; that and
NaN inputs are reported on stderr with a nonzero exit status.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Float64Var(&epsilon, "epsilon", 0,
		"relative convergence tolerance (0 uses the library default)")
	rootCmd.Flags().IntVar(&maxIterations, "max-iterations", 0,
		"iteration cap per evaluator (0 uses the library default)")
	rootCmd.Flags().Float64Var(&asymptoticThreshold, "asymptotic-threshold", 0,
		"|x| at which the asymptotic expansion takes over (0 uses the library default)")
	rootCmd.Flags().BoolVar(&withError, "with-error", false,
		"print each result with its estimated error bound")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := expint.Config{
		Epsilon:             epsilon,
		MaxIterations:       maxIterations,
		AsymptoticThreshold: asymptoticThreshold,
	}

	failed := false
	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "ei: %q is not a number\n", arg)
			failed = true
			continue
		}
		approx, err := cfg.EiE(x)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "ei: Ei(%v): %v\n", x, err)
			failed = true
			continue
		}
		if withError {
			fmt.Fprintln(cmd.OutOrStdout(), approx)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(approx.Value, 'g', -1, 64))
		}
	}
	if failed {
		return errors.New("one or more inputs could not be evaluated")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
