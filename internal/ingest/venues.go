package ingest

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// loadVenues maps master_venue rows to domain venues, trimming names and
// dropping rows with a non-positive capacity or a blank name. Duplicate
// venue names (by trimmed value) keep the first occurrence.
func (in *Ingestor) loadVenues(ctx context.Context, company string) ([]model.Venue, error) {
	rows, err := in.venues.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]model.Venue, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.VenueName)
		if name == "" {
			log.Warn().Str("company", company).Msg("ingest: dropping venue row with blank name")
			continue
		}
		if _, dup := seen[name]; dup {
			log.Warn().Str("company", company).Str("venue", name).Msg("ingest: dropping duplicate venue row, keeping first")
			continue
		}
		v := model.Venue{
			Company:   company,
			Name:      name,
			Capacity:  r.Capacity,
			IsVirtual: r.IsVirtual,
		}
		if err := v.Validate(); err != nil {
			log.Warn().Err(err).Str("company", company).Str("venue", name).Msg("ingest: dropping invalid venue row")
			continue
		}
		seen[name] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
