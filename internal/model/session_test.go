package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionOverlaps(t *testing.T) {
	a := Session{StartHour: 10, EndHour: 18}
	b := Session{StartHour: 16, EndHour: 24}
	c := Session{StartHour: 18, EndHour: 26}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "adjacent intervals sharing only an endpoint do not overlap")
}

func TestSessionSignature(t *testing.T) {
	s := Session{CourseBatchID: "co-X-1", StartHour: 42, Venue: "Room-A"}
	assert.Equal(t, "co-X-1@42@Room-A", s.Signature())
}
