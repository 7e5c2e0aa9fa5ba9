package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A repeat express must be a no-op on the existing row, so the interest
// count cannot change: conflict on (opportunity, user) does nothing and
// the handler reads RowsAffected to report "already expressed".
func TestInterestInsertIgnoresRepeats(t *testing.T) {
	assert.Contains(t, opportunityInterestInsertSQL, "ON CONFLICT (opportunity_interest_opportunity_id, opportunity_interest_user_id)")
	assert.Contains(t, opportunityInterestInsertSQL, "DO NOTHING")
	assert.NotContains(t, opportunityInterestInsertSQL, "DO UPDATE")
}
