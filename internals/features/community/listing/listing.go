package listing

import (
	"time"

	"github.com/google/uuid"
)

// The community feeds merge two heterogeneous sources per school: the
// structured events/opportunities tables and generic posts tagged with the
// matching post_type. This package normalizes both into one superset view
// model, merges, sorts and paginates them, and is shared by all four call
// sites (admin/user x events/opportunities).

type Kind string

const (
	KindEvent       Kind = "event"
	KindOpportunity Kind = "opportunity"
)

type SourceType string

const (
	SourceStructured SourceType = "structured"
	SourcePost       SourceType = "post"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Event feed filters
const (
	FilterAll       = "all"
	FilterUpcoming  = "upcoming"
	FilterPast      = "past"
	FilterCancelled = "cancelled"
	FilterMyEvents  = "my_events"
)

// Opportunity feed filters
const (
	FilterJobs         = "jobs"
	FilterInternships  = "internships"
	FilterScholarships = "scholarships"
	FilterMentorship   = "mentorship"
)

// opportunityFilterTypes maps a feed filter to the opportunity_type value.
var opportunityFilterTypes = map[string]string{
	FilterJobs:         "job",
	FilterInternships:  "internship",
	FilterScholarships: "scholarship",
	FilterMentorship:   "mentorship",
}

// Item is the unified view model. Identity is (SourceType, SourceID) — ids
// can collide across the two backing tables, so actions must dispatch on
// both. Fields missing on one side hold neutral defaults, never omitted,
// so the merged list stays homogeneous for sorting and rendering.
type Item struct {
	SourceType SourceType `json:"source_type"`
	SourceID   uuid.UUID  `json:"source_id"`
	SchoolID   uuid.UUID  `json:"school_id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	TypeTag     string `json:"type_tag"`

	// Event date for events, application deadline for opportunities,
	// post_event_date for tagged posts. Nil sorts as epoch zero.
	OccursAt *time.Time `json:"occurs_at"`

	Location    string `json:"location"`
	CompanyName string `json:"company_name"`

	MaxAttendees         int    `json:"max_attendees"`
	RegistrationRequired bool   `json:"registration_required"`
	Status               string `json:"status"`

	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	// RSVP attendees for events, interests for opportunities. Always zero
	// for post items (no tracking exists for posts).
	InterestCount int `json:"interest_count"`

	// The viewer's own RSVP status or "interested"; nil when none.
	ViewerResponse *string `json:"viewer_response"`
}

// Query carries everything one feed request needs. SchoolID scopes every
// query; ViewerID feeds my_events and ViewerResponse.
type Query struct {
	SchoolID uuid.UUID
	Kind     Kind
	Filter   string
	Search   string
	Location string // opportunities only
	ViewerID uuid.UUID
	Page     int
	PerPage  int
	Order    SortOrder
}

// Result is one page of the combined feed. Degraded is set when the store
// was unavailable: the caller renders an empty list, never a 5xx.
type Result struct {
	Items      []Item `json:"items"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Degraded   bool   `json:"degraded,omitempty"`
}
