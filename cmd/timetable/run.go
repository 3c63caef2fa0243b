package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run batching and scheduling per the loaded configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(nil)
		},
	}
}
