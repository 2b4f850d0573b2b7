package domain

import "time"

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusAvailable CommissionStatus = "available"
	CommissionStatusWithdrawn CommissionStatus = "withdrawn"
)

// Commission is the organizer's share of cleared dues for one event, one
// record per (organizer, event). It stays pending until every approved
// participant has cleared their due, then becomes available.
type Commission struct {
	ID                     string           `json:"id"`
	AdminID                string           `json:"admin_id"`
	EventID                string           `json:"event_id"`
	Status                 CommissionStatus `json:"status"`
	TotalDuesGenerated     int64            `json:"total_dues_generated"`
	AdminShare             int64            `json:"admin_share"`
	PlatformShare          int64            `json:"platform_share"`
	ParticipantsCount      int              `json:"participants_count"`
	ParticipantsDueCleared int              `json:"participants_due_cleared"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}
