package listing

import (
	"context"
	"log"

	eventModel "alumnihub_backend/internals/features/community/events/model"
	opportunityModel "alumnihub_backend/internals/features/community/opportunities/model"
	postModel "alumnihub_backend/internals/features/community/posts/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Builder runs the two source queries and produces one merged page.
type Builder struct {
	DB *gorm.DB
}

func NewBuilder(db *gorm.DB) *Builder {
	return &Builder{DB: db}
}

// Build fetches structured rows and tagged posts for the school, merges
// them through Combine, then enriches the final page with counts and the
// viewer's own response. A store failure yields an empty degraded result,
// never an error: the feed page must still render.
func (b *Builder) Build(ctx context.Context, q Query) Result {
	structured, err := b.fetchStructured(ctx, q)
	if err != nil {
		log.Printf("[ERROR] listing: fetch %s failed: %v", q.Kind, err)
		return Result{Items: []Item{}, Degraded: true}
	}

	posts, err := b.fetchTaggedPosts(ctx, q)
	if err != nil {
		log.Printf("[ERROR] listing: fetch tagged posts failed: %v", err)
		return Result{Items: []Item{}, Degraded: true}
	}

	res := Combine(structured, posts, q.Order, q.Page, q.PerPage)

	if err := b.enrich(ctx, q, res.Items); err != nil {
		// Counts are decoration; the page itself is already correct.
		log.Printf("[ERROR] listing: enrich failed: %v", err)
	}
	return res
}

func (b *Builder) fetchStructured(ctx context.Context, q Query) ([]Item, error) {
	if q.Kind == KindOpportunity {
		return b.fetchOpportunities(ctx, q)
	}
	return b.fetchEvents(ctx, q)
}

// eventsQuery builds the tenant-scoped events source query. Every value,
// including the search pattern, stays parameter-bound.
func eventsQuery(db *gorm.DB, q Query) *gorm.DB {
	tx := db.
		Model(&eventModel.EventModel{}).
		Where("event_school_id = ?", q.SchoolID)

	switch q.Filter {
	case FilterUpcoming:
		tx = tx.Where("event_status = ?", eventModel.EventStatusActive).
			Where("event_date >= NOW()")
	case FilterPast:
		tx = tx.Where("event_date < NOW()")
	case FilterCancelled:
		tx = tx.Where("event_status = ?", eventModel.EventStatusCancelled)
	case FilterMyEvents:
		tx = tx.Where(`EXISTS (
			SELECT 1 FROM event_rsvps r
			WHERE r.event_rsvp_event_id = events.event_id
			  AND r.event_rsvp_user_id = ?
			  AND r.event_rsvp_status = ?
		)`, q.ViewerID, eventModel.RSVPStatusAttending)
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"(event_title ILIKE ? OR event_description ILIKE ? OR event_location ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	return tx
}

func (b *Builder) fetchEvents(ctx context.Context, q Query) ([]Item, error) {
	var rows []eventModel.EventModel
	if err := eventsQuery(b.DB.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, NormalizeEvent(r))
	}
	return items, nil
}

func opportunitiesQuery(db *gorm.DB, q Query) *gorm.DB {
	tx := db.
		Model(&opportunityModel.OpportunityModel{}).
		Where("opportunity_school_id = ?", q.SchoolID)

	if t, ok := opportunityFilterTypes[q.Filter]; ok {
		tx = tx.Where("opportunity_type = ?", t)
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"(opportunity_title ILIKE ? OR opportunity_description ILIKE ? OR opportunity_company_name ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if q.Location != "" {
		tx = tx.Where("opportunity_location ILIKE ?", "%"+q.Location+"%")
	}
	return tx
}

func (b *Builder) fetchOpportunities(ctx context.Context, q Query) ([]Item, error) {
	var rows []opportunityModel.OpportunityModel
	if err := opportunitiesQuery(b.DB.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, NormalizeOpportunity(r))
	}
	return items, nil
}

// taggedPostsQuery only scopes by school, post_type and search: tagged
// posts carry no status or date filtering, so they ride along under every
// filter of the structured side.
func taggedPostsQuery(db *gorm.DB, q Query) *gorm.DB {
	postType := postModel.PostTypeEvent
	if q.Kind == KindOpportunity {
		postType = postModel.PostTypeOpportunity
	}

	tx := db.
		Model(&postModel.PostModel{}).
		Where("post_school_id = ?", q.SchoolID).
		Where("post_type = ?", postType)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("(post_title ILIKE ? OR post_content ILIKE ?)", pattern, pattern)
	}
	return tx
}

func (b *Builder) fetchTaggedPosts(ctx context.Context, q Query) ([]Item, error) {
	var rows []postModel.PostModel
	if err := taggedPostsQuery(b.DB.WithContext(ctx), q).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, NormalizePost(r))
	}
	return items, nil
}

type countRow struct {
	ID    uuid.UUID `gorm:"column:id"`
	Count int       `gorm:"column:count"`
}

type responseRow struct {
	ID     uuid.UUID `gorm:"column:id"`
	Status string    `gorm:"column:status"`
}

// enrich fills InterestCount and ViewerResponse on the final page only.
// Counts are grouped over just the page's structured ids, so the cost
// stays proportional to per_page, not to the whole feed.
func (b *Builder) enrich(ctx context.Context, q Query, items []Item) error {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.SourceType == SourceStructured {
			ids = append(ids, it.SourceID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	counts := make(map[uuid.UUID]int, len(ids))
	responses := make(map[uuid.UUID]string)

	if q.Kind == KindOpportunity {
		var rows []countRow
		if err := b.DB.WithContext(ctx).
			Model(&opportunityModel.OpportunityInterestModel{}).
			Select("opportunity_interest_opportunity_id AS id, COUNT(*) AS count").
			Where("opportunity_interest_opportunity_id IN ?", ids).
			Group("opportunity_interest_opportunity_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			counts[r.ID] = r.Count
		}

		if q.ViewerID != uuid.Nil {
			var mine []responseRow
			if err := b.DB.WithContext(ctx).
				Model(&opportunityModel.OpportunityInterestModel{}).
				Select("opportunity_interest_opportunity_id AS id, 'interested' AS status").
				Where("opportunity_interest_opportunity_id IN ?", ids).
				Where("opportunity_interest_user_id = ?", q.ViewerID).
				Scan(&mine).Error; err != nil {
				return err
			}
			for _, r := range mine {
				responses[r.ID] = r.Status
			}
		}
	} else {
		var rows []countRow
		if err := b.DB.WithContext(ctx).
			Model(&eventModel.EventRSVPModel{}).
			Select("event_rsvp_event_id AS id, COUNT(*) AS count").
			Where("event_rsvp_event_id IN ?", ids).
			Where("event_rsvp_status = ?", eventModel.RSVPStatusAttending).
			Group("event_rsvp_event_id").
			Scan(&rows).Error; err != nil {
			return err
		}
		for _, r := range rows {
			counts[r.ID] = r.Count
		}

		if q.ViewerID != uuid.Nil {
			var mine []responseRow
			if err := b.DB.WithContext(ctx).
				Model(&eventModel.EventRSVPModel{}).
				Select("event_rsvp_event_id AS id, event_rsvp_status AS status").
				Where("event_rsvp_event_id IN ?", ids).
				Where("event_rsvp_user_id = ?", q.ViewerID).
				Scan(&mine).Error; err != nil {
				return err
			}
			for _, r := range mine {
				responses[r.ID] = r.Status
			}
		}
	}

	for i := range items {
		if items[i].SourceType != SourceStructured {
			continue
		}
		items[i].InterestCount = counts[items[i].SourceID]
		if st, ok := responses[items[i].SourceID]; ok {
			s := st
			items[i].ViewerResponse = &s
		}
	}
	return nil
}
