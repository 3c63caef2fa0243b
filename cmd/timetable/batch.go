package main

import (
	"github.com/spf13/cobra"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Run stage 1 (batching) only, skipping scheduling",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config) {
				cfg.IsSplittingBatch = true
				cfg.IsSchedulingCourse = false
			})
		},
	}
}
