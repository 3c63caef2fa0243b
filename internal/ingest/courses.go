package ingest

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

const dateLayout = "2006-01-02"

// loadCourses maps master_course + master_course_sequence rows to domain
// courses, applying the optional course_stream whitelist (§6) and the
// default_course_duration / hours_per_day conversion (§6). Prerequisite
// cycles are detected per §9 via model.DetectCycle, checked separately over
// the plain prerequisite graph and the is_global_sequence-flagged subgraph;
// a cycle's edges are dropped rather than aborting the company's load.
func (in *Ingestor) loadCourses(ctx context.Context, company string, streamWhitelist []string, defaultDuration, hoursPerDay int) ([]model.Course, error) {
	rows, err := in.courses.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	seqRows, err := in.courses.ListSequence(ctx, company)
	if err != nil {
		return nil, err
	}

	prereqByCourse := make(map[string][]string)
	globalSeqByCourse := make(map[string][]string)
	for _, s := range seqRows {
		name := strings.TrimSpace(s.CourseName)
		prereq := strings.TrimSpace(s.PrerequisiteCourseName)
		if name == "" || prereq == "" {
			continue
		}
		prereqByCourse[name] = append(prereqByCourse[name], prereq)
		if s.IsGlobalSequence {
			globalSeqByCourse[name] = append(globalSeqByCourse[name], prereq)
		}
	}

	allowedStream := make(map[string]struct{}, len(streamWhitelist))
	for _, s := range streamWhitelist {
		allowedStream[strings.TrimSpace(s)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]model.Course, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.CourseName)
		if name == "" {
			log.Warn().Str("company", company).Msg("ingest: dropping course row with blank course_name")
			continue
		}
		if _, dup := seen[name]; dup {
			log.Warn().Str("company", company).Str("course", name).Msg("ingest: dropping duplicate course row, keeping first")
			continue
		}
		if len(allowedStream) > 0 {
			if _, ok := allowedStream[strings.TrimSpace(r.Stream)]; !ok {
				continue
			}
		}

		c := model.Course{
			Company:        company,
			Name:           name,
			Stream:         strings.TrimSpace(r.Stream),
			DurationHours:  model.DurationFromMinutes(r.DurationMinutes, defaultDuration, hoursPerDay),
			Prerequisites:  prereqByCourse[name],
			GlobalSequence: globalSeqByCourse[name],
		}

		if d, err := parseOptionalDate(r.ValidStartDate); err != nil {
			log.Warn().Err(err).Str("company", company).Str("course", name).Msg("ingest: ignoring unparsable valid_start_date")
		} else {
			c.ValidStartDate = d
		}
		if d, err := parseOptionalDate(r.ValidEndDate); err != nil {
			log.Warn().Err(err).Str("company", company).Str("course", name).Msg("ingest: ignoring unparsable valid_end_date")
		} else {
			c.ValidEndDate = d
		}

		seen[name] = struct{}{}
		out = append(out, c)
	}

	dropCyclicEdges(company, out, "prerequisite",
		func(c model.Course) []string { return c.Prerequisites },
		func(c *model.Course) { c.Prerequisites = nil })
	dropCyclicEdges(company, out, "global-sequence",
		func(c model.Course) []string { return c.GlobalSequence },
		func(c *model.Course) { c.GlobalSequence = nil })

	return out, nil
}

// dropCyclicEdges repeatedly runs model.DetectCycle over courses and, for
// each course it reports, clears that course's edges in place and re-checks —
// a cycle is bad input, not a reason to abort the whole company's load (§9):
// the offending course survives with its ordering edges stripped, and the
// issue is logged rather than returned as an error.
func dropCyclicEdges(company string, courses []model.Course, kind string, edgeFn func(model.Course) []string, clear func(*model.Course)) {
	for {
		member, found := model.DetectCycle(courses, edgeFn)
		if !found {
			return
		}
		for i := range courses {
			if courses[i].Name == member {
				clear(&courses[i])
				break
			}
		}
		log.Warn().Str("company", company).Str("course", member).Str("kind", kind).
			Msg("ingest: dropping course's ordering edges, it participates in a cycle")
	}
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
