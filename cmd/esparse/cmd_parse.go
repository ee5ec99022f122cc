package main

import (
	"fmt"
	"time"

	"github.com/devside/esparse/ast"
	"github.com/devside/esparse/parser"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type parseFlags struct {
	module        bool
	impliedStrict bool
	locations     bool
	ranges        bool
	noHashBang    bool
	compact       bool
	silent        bool
	repeat        int
}

func (f parseFlags) options(file string) []parser.Option {
	opts := []parser.Option{parser.WithSourceFile(file), parser.WithAllowHashBang(!f.noHashBang)}
	if f.impliedStrict {
		opts = append(opts, parser.WithImpliedStrict())
	}
	if f.locations {
		opts = append(opts, parser.WithLocations())
	}
	if f.ranges {
		opts = append(opts, parser.WithRanges())
	}
	return opts
}

func (f parseFlags) parse(src string, opts []parser.Option) (*ast.Program, error) {
	if f.module {
		return parser.ParseModule(src, opts...)
	}
	return parser.ParseScript(src, opts...)
}

func newParseCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a script or module and print its syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readInput(path)
			if err != nil {
				return err
			}
			opts := flags.options(path)

			if flags.repeat < 1 {
				flags.repeat = 1
			}
			var times []float64
			var program *ast.Program
			for i := 0; i < flags.repeat; i++ {
				begin := time.Now()
				program, err = flags.parse(src, opts)
				times = append(times, float64(time.Since(begin)))
				if err != nil {
					return errors.Wrap(err, path)
				}
			}

			if !flags.silent {
				out := cmd.OutOrStdout()
				if flags.compact {
					fmt.Fprintf(out, "%v\n", program)
				} else {
					fmt.Fprintf(out, "%# v\n", pretty.Formatter(program))
				}
			}
			if flags.repeat > 1 {
				printTimes(cmd, times)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.module, "module", false, "Parse with the module goal")
	cmd.Flags().BoolVar(&flags.impliedStrict, "implied-strict", false, "Parse the input as strict mode code")
	cmd.Flags().BoolVar(&flags.locations, "locations", false, "Attach line/column locations to nodes")
	cmd.Flags().BoolVar(&flags.ranges, "ranges", false, "Attach [start, end] ranges to nodes")
	cmd.Flags().BoolVar(&flags.noHashBang, "no-hash-bang", false, "Reject a leading #! line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "Print the tree on a single line")
	cmd.Flags().BoolVar(&flags.silent, "silent", false, "Do not print the tree")
	cmd.Flags().IntVar(&flags.repeat, "repeat", 1, "Parse the input this many times and report timings")

	return cmd
}

func printTimes(cmd *cobra.Command, times []float64) {
	median, _ := stats.Median(times)
	mean, _ := stats.Mean(times)
	stddev, _ := stats.StdDevS(times)
	min, _ := stats.Min(times)
	max, _ := stats.Max(times)

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Parse time (%d runs):\n", len(times))
	fmt.Fprintf(out, "  Median: %v\n", time.Duration(median))
	fmt.Fprintf(out, "  Mean:   %v\n", time.Duration(mean))
	fmt.Fprintf(out, "  StdDev: %v\n", time.Duration(stddev))
	fmt.Fprintf(out, "  Min:    %v\n", time.Duration(min))
	fmt.Fprintf(out, "  Max:    %v\n", time.Duration(max))
}
