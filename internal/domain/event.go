package domain

import "time"

type EventType string

const (
	EventTypeOrganizerSponsored EventType = "organizer_sponsored"
	EventTypeUserCreated        EventType = "user_created"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// CompletableStatuses are the statuses from which an organizer may complete
// an event. CancellableStatuses are every non-terminal status.
var (
	CompletableStatuses = []EventStatus{EventStatusUpcoming, EventStatusOngoing}
	CancellableStatuses = []EventStatus{EventStatusDraft, EventStatusUpcoming, EventStatusOngoing}
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Eligibility is the rule set evaluated before a user may join an event.
// MemberLimit <= 0 means unlimited.
type Eligibility struct {
	Genders          []string `json:"genders"`
	MinAge           int      `json:"min_age"`
	MaxAge           int      `json:"max_age"`
	MaxDistanceKm    *float64 `json:"max_distance_km,omitempty"`
	MemberLimit      int      `json:"member_limit"`
	RequiresApproval bool     `json:"requires_approval"`
}

type Pricing struct {
	IsFree bool  `json:"is_free"`
	Price  int64 `json:"price"` // minor currency units
}

type Event struct {
	ID          string      `json:"id"`
	OrganizerID string      `json:"organizer_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        EventType   `json:"type"`
	Status      EventStatus `json:"status"`
	StartsAt    time.Time   `json:"starts_at"`
	Eligibility Eligibility `json:"eligibility"`
	Pricing     Pricing     `json:"pricing"`
	Location    *Location   `json:"location,omitempty"`

	// Derived counters, recomputed from the participants roster on every
	// mutation. Never incremented independently.
	ParticipantCount int `json:"participant_count"`
	WaitlistCount    int `json:"waitlist_count"`

	TotalDuesGenerated int64 `json:"total_dues_generated"`
	TotalDuesCleared   int64 `json:"total_dues_cleared"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventDetails struct {
	Event        Event         `json:"event"`
	Participants []Participant `json:"participants"`
}

type CreateEventInput struct {
	OrganizerID string
	Title       string
	Description string
	Type        EventType
	StartsAt    time.Time
	Eligibility Eligibility
	Pricing     Pricing
	Location    *Location
}
