package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shandysiswandi/logbench/internal/pkg/pkgerror"
	"github.com/spf13/cobra"
)

const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
)

const usage = `Usage: logbench <folderPath> <poolSize>
Example: logbench /var/log/app 8
`

// NewCommand builds the root command. Flags must precede the positional
// arguments so that a negative pool size is not mistaken for a flag.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var configPath, logLevel string

	cmd := &cobra.Command{
		Use:           "logbench <folderPath> <poolSize>",
		Short:         "Compare sequential and pooled draining of *.log files",
		Long:          "Reads every *.log file of a directory once sequentially and once on a fixed-size worker pool, then prints both durations and the speedup factor.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_, err := io.WriteString(stdout, usage)
				return err
			}

			poolSize, err := parsePoolSize(args[1])
			if err != nil {
				return err
			}

			a, err := New(Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
				Stdout:     stdout,
				Stderr:     stderr,
			})
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			return a.Run(cmd.Context(), args[0], poolSize)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&configPath, FlagConfig, "c", "", "optional YAML configuration file")
	cmd.Flags().StringVar(&logLevel, FlagLogLevel, "", "log level: debug, info, warn or error (default from config, warn)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return pkgerror.NewInvalidArgument("flag", err)
	})

	return cmd
}

func parsePoolSize(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerror.NewInvalidArgument("poolSize", err)
	}
	if n < 1 {
		return 0, pkgerror.NewInvalidPoolSize(n)
	}
	return n, nil
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return pkgerror.ExitOK
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(stderr, "Error: %v (%s)\n", err, perr.Code())
	} else {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return pkgerror.ExitCode(err)
}
