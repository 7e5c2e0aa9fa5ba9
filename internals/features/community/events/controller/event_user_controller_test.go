package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A second RSVP by the same viewer must overwrite the first row, never add
// another: the conflict target is (event, user) and the update takes the
// incoming values.
func TestRSVPUpsertKeepsOneRowPerViewer(t *testing.T) {
	assert.Contains(t, eventRSVPUpsertSQL, "ON CONFLICT (event_rsvp_event_id, event_rsvp_user_id)")
	assert.Contains(t, eventRSVPUpsertSQL, "DO UPDATE SET")
	assert.Contains(t, eventRSVPUpsertSQL, "event_rsvp_status = EXCLUDED.event_rsvp_status")
	assert.Contains(t, eventRSVPUpsertSQL, "event_rsvp_note = EXCLUDED.event_rsvp_note")
	assert.Contains(t, eventRSVPUpsertSQL, "RETURNING")
}
