package main

import (
	"fmt"

	"github.com/devside/esparse/parser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens the parser consumes",
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
			out := cmd.OutOrStdout()
			opts := append(flags.options(path), parser.WithOnToken(func(tok parser.Token) {
				fmt.Fprintf(out, "%d-%d\t%s\t%s\n", tok.Start, tok.End, tok.Type, src[tok.Start:tok.End])
			}))
			if _, err := flags.parse(src, opts); err != nil {
				return errors.Wrap(err, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.module, "module", false, "Tokenize with the module goal")
	cmd.Flags().BoolVar(&flags.impliedStrict, "implied-strict", false, "Tokenize the input as strict mode code")

	return cmd
}
