package model

import "errors"

var (
	// ErrPrerequisiteCycle names the case of a course's prerequisite or
	// global-sequence graph containing a cycle (§9). Ingestion does not
	// return it: it logs the cycle and strips the course's ordering edges.
	ErrPrerequisiteCycle = errors.New("model: prerequisite graph contains a cycle")
	// ErrNoEligibleTrainer names the case of a course with no trainer
	// eligible to teach it after filtering (§7). The batching stage drops
	// such a course without returning this error.
	ErrNoEligibleTrainer = errors.New("model: no eligible trainer for course")
	// ErrNoTrainees names the case of a course with no enrolled trainees
	// after filtering (§7). The batching stage drops such a course without
	// returning this error.
	ErrNoTrainees = errors.New("model: no trainees enrolled for course")
)
