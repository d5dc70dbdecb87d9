package main

import (
	"github.com/spf13/cobra"
)

func newResolveCommand(a *app) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "resolve PATTERN...",
		Short: "Print the index patterns for a date range",
		Example: `  partitioner resolve 'logs-*' --since 2014-09-27 --until 2018-02-04
  partitioner resolve 'logs-*' --until 2018-02-04 -o comma`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var since, until, err = a.parseRange()
			if err != nil {
				return err
			}

			var out = a.newSink()
			for _, pattern := range args {
				var patterns []string
				if patterns, err = a.part.Resolve(pattern, since, until); err != nil {
					return err
				}
				if err = out.Emit(pattern, patterns); err != nil {
					return err
				}
			}
			return nil
		},
	}
	a.bindRange(cmd)
	return cmd
}
