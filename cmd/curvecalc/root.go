package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thrackle-io/curve-estimator/internal/logging"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	enableVerbose := func(w io.Writer) {
		logger = logging.New(w, "debug", os.Getenv("LOG_FORMAT"))
	}

	rootCmd := &cobra.Command{
		Use:           "curvecalc",
		Short:         "Evaluate AMM bonding-curve swap math",
		Long:          "curvecalc mirrors the contract's curve math off-chain. Each subcommand takes unsigned integers and prints one integer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				enableVerbose(cmd.ErrOrStderr())
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log evaluation details to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List curve operations and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range curves.Operations() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", op.Name, strings.Join(op.Args, " "))
			}
			return nil
		},
	})

	for _, op := range curves.Operations() {
		rootCmd.AddCommand(newOperationCmd(op, func() *slog.Logger { return logger }, enableVerbose))
	}
	return rootCmd
}

// newOperationCmd builds the subcommand for op. Flag parsing is off so that
// an amount like "-5" reaches the parser as a malformed amount instead of an
// unknown flag; --verbose and --help are picked out by hand.
func newOperationCmd(op curves.Operation, logger func() *slog.Logger, enableVerbose func(io.Writer)) *cobra.Command {
	return &cobra.Command{
		Use:                op.Name + " " + strings.Join(op.Args, " "),
		Short:              op.Doc,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, raw []string) error {
			args := make([]string, 0, len(raw))
			for _, a := range raw {
				switch a {
				case "-h", "--help":
					return cmd.Help()
				case "-v", "--verbose":
					enableVerbose(cmd.ErrOrStderr())
				case "--":
				default:
					args = append(args, a)
				}
			}

			logger().Debug("evaluating", "op", op.Name, "args", args)
			out, err := op.Evaluate(args)
			if err != nil {
				return err
			}
			logger().Debug("evaluated", "op", op.Name, "out", out.String())
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
}
