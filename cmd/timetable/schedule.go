package main

import (
	"github.com/spf13/cobra"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
)

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run stage 2 (scheduling), batching first if enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(func(cfg *config.Config) {
				cfg.IsSchedulingCourse = true
			})
		},
	}
}
