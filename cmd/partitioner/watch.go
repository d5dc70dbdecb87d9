package main

import (
	"context"
	"errors"
	"os"
	"syscall"

	partitioner "github.com/mreithub/go-index-partitioner"
	"github.com/mreithub/go-index-partitioner/sink/logrussink"
	"github.com/oklog/run"
	"github.com/spf13/cobra"
)

func newWatchCommand(a *app) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "watch PATTERN...",
		Short: "Re-resolve open date ranges periodically and print the patterns",
		Long: `watch resolves the given patterns right away and then again after every interval,
which keeps the output current for ranges that end (or start) today.`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var since, until, err = a.parseRange()
			if err != nil {
				return err
			}

			var ctx = cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var out = logrussink.LogrusSink{Next: a.newSink(), Log: a.log}
			var runner = partitioner.NewRunner(ctx, a.part, out)
			for _, pattern := range args {
				if err = runner.Add(partitioner.Request{Name: pattern, Pattern: pattern, Since: since, Until: until}); err != nil {
					return err
				}
			}

			var g run.Group
			g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
			g.Add(func() error {
				if err := runner.Start(a.cfg.Interval); err != nil {
					return err
				}
				<-runner.Done()
				return runner.Err()
			}, func(error) {
				runner.Stop()
			})

			err = g.Run()
			var sigErr run.SignalError
			if errors.As(err, &sigErr) {
				a.log.WithError(err).Info("shutting down")
				return nil
			}
			return err
		},
	}
	a.bindRange(cmd)
	cmd.Flags().DurationVar(&a.cfg.Interval, "interval", a.cfg.Interval, "time between two runs")
	return cmd
}
