package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timetable",
		Short: "Two-stage training timetable scheduler",
		Long: `timetable batches enrolled employees into capacity-bounded cohorts and
schedules each cohort's course-batch onto a concrete start hour, venue, and
trainer, subject to capacity, prerequisite, shift, and calendar constraints.`,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newScheduleCmd())

	return root
}
