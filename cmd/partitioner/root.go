package main

import (
	"errors"
	"fmt"
	"io"

	partitioner "github.com/mreithub/go-index-partitioner"
	"github.com/mreithub/go-index-partitioner/sink/writersink"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errInvalidFlags = errors.New("invalid flags")

// app -- state shared by the subcommands (filled in by the root command's PersistentPreRunE)
type app struct {
	cfg   Config
	since string
	until string

	log    *logrus.Logger
	part   *partitioner.Partitioner
	stdout io.Writer
}

func newRootCommand() *cobra.Command {
	var a = &app{}

	var cfg, envErr = LoadConfig()
	a.cfg = cfg

	var root = &cobra.Command{
		Use:           "partitioner",
		Short:         "Compute the index patterns covering a date range",
		Long:          "partitioner turns a date range into the minimal list of index patterns (e.g. 'logs-2018-01-*') covering it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			a.stdout = cmd.OutOrStdout()
			return a.setup(cmd.ErrOrStderr())
		},
	}
	a.cfg.BindFlags(root.PersistentFlags())
	// inherited by the subcommands
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errInvalidFlags, err)
	})

	root.AddCommand(newResolveCommand(a), newWatchCommand(a))
	return root
}

// minArgs -- cobra.MinimumNArgs, but reported as a usage error
func minArgs(n int) cobra.PositionalArgs {
	var check = cobra.MinimumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errInvalidFlags, err)
		}
		return nil
	}
}

func (a *app) setup(stderr io.Writer) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidFlags, err)
	}

	var level, _ = logrus.ParseLevel(a.cfg.LogLevel)
	a.log = logrus.New()
	a.log.SetOutput(stderr)
	a.log.SetLevel(level)

	var err error
	if a.part, err = a.cfg.NewPartitioner(a.log); err != nil {
		return err
	}
	return nil
}

func (a *app) bindRange(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.since, "since", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&a.until, "until", "", "last day of the range (YYYY-MM-DD)")
}

// parses --since and --until (unset flags map to the zero Date)
func (a *app) parseRange() (since, until partitioner.Date, err error) {
	if a.since != "" {
		if since, err = partitioner.ParseDate(a.since); err != nil {
			return since, until, fmt.Errorf("--since: %w", err)
		}
	}
	if a.until != "" {
		if until, err = partitioner.ParseDate(a.until); err != nil {
			return since, until, fmt.Errorf("--until: %w", err)
		}
	}
	return since, until, nil
}

func (a *app) newSink() *writersink.WriterSink {
	var format, _ = writersink.ParseFormat(a.cfg.Format)
	return writersink.New(a.stdout, format)
}
