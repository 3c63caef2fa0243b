package ingest

import "errors"

// ErrNoCompanyData is returned when at least one of a company's venue,
// trainer, course or trainee tables has no usable row left after filtering.
var ErrNoCompanyData = errors.New("ingest: no usable data for company")
