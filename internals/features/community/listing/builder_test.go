package listing

import (
	"testing"

	eventModel "alumnihub_backend/internals/features/community/events/model"
	opportunityModel "alumnihub_backend/internals/features/community/opportunities/model"
	postModel "alumnihub_backend/internals/features/community/posts/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB opens a dialector-only session: statements are built and
// rendered but never sent anywhere.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=app dbname=app sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func eventsSQL(t *testing.T, db *gorm.DB, q Query) string {
	t.Helper()
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []eventModel.EventModel
		return eventsQuery(tx, q).Find(&rows)
	})
}

func TestEventsQueryScopesTenant(t *testing.T) {
	schoolID := uuid.New()
	sql := eventsSQL(t, dryRunDB(t), Query{SchoolID: schoolID, Kind: KindEvent, Filter: FilterAll})

	assert.Contains(t, sql, "event_school_id = '"+schoolID.String()+"'")
	assert.Contains(t, sql, "event_deleted_at")
}

func TestEventsQueryUpcomingExcludesCancelled(t *testing.T) {
	sql := eventsSQL(t, dryRunDB(t), Query{SchoolID: uuid.New(), Kind: KindEvent, Filter: FilterUpcoming})

	assert.Contains(t, sql, "event_status = 'active'")
	assert.Contains(t, sql, "event_date >= NOW()")
}

func TestEventsQueryMyEventsBindsViewer(t *testing.T) {
	viewerID := uuid.New()
	sql := eventsSQL(t, dryRunDB(t), Query{
		SchoolID: uuid.New(),
		Kind:     KindEvent,
		Filter:   FilterMyEvents,
		ViewerID: viewerID,
	})

	assert.Contains(t, sql, "event_rsvp_user_id = '"+viewerID.String()+"'")
	assert.Contains(t, sql, "event_rsvp_status = 'attending'")
}

func TestEventsQueryBindsSearchPattern(t *testing.T) {
	sql := eventsSQL(t, dryRunDB(t), Query{
		SchoolID: uuid.New(),
		Kind:     KindEvent,
		Filter:   FilterAll,
		Search:   "reunion",
	})

	assert.Contains(t, sql, "event_title ILIKE '%reunion%'")
	assert.Contains(t, sql, "event_location ILIKE '%reunion%'")
}

func TestOpportunitiesQueryScopesTenantAndType(t *testing.T) {
	schoolID := uuid.New()
	sql := dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []opportunityModel.OpportunityModel
		return opportunitiesQuery(tx, Query{
			SchoolID: schoolID,
			Kind:     KindOpportunity,
			Filter:   FilterJobs,
			Location: "Lagos",
		}).Find(&rows)
	})

	assert.Contains(t, sql, "opportunity_school_id = '"+schoolID.String()+"'")
	assert.Contains(t, sql, "opportunity_type = 'job'")
	assert.Contains(t, sql, "opportunity_location ILIKE '%Lagos%'")
}

func TestTaggedPostsQueryScopesTenantAndTag(t *testing.T) {
	schoolID := uuid.New()
	db := dryRunDB(t)

	eventSQL := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []postModel.PostModel
		return taggedPostsQuery(tx, Query{SchoolID: schoolID, Kind: KindEvent}).Find(&rows)
	})
	assert.Contains(t, eventSQL, "post_school_id = '"+schoolID.String()+"'")
	assert.Contains(t, eventSQL, "post_type = 'event'")

	oppSQL := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []postModel.PostModel
		return taggedPostsQuery(tx, Query{SchoolID: schoolID, Kind: KindOpportunity}).Find(&rows)
	})
	assert.Contains(t, oppSQL, "post_type = 'opportunity'")
}
