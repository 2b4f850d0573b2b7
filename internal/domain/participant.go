package domain

import "time"

type ParticipantStatus string

const (
	ParticipantStatusPendingApproval ParticipantStatus = "pending_approval"
	ParticipantStatusApproved        ParticipantStatus = "approved"
	ParticipantStatusRejected        ParticipantStatus = "rejected"
	ParticipantStatusLeaveRequested  ParticipantStatus = "leave_requested"
	ParticipantStatusLeft            ParticipantStatus = "left"
	ParticipantStatusRemoved         ParticipantStatus = "removed"
)

// ActiveParticipantStatuses count against the "one active participant per
// user per event" rule.
var ActiveParticipantStatuses = []ParticipantStatus{
	ParticipantStatusPendingApproval,
	ParticipantStatusApproved,
	ParticipantStatusLeaveRequested,
}

type Participant struct {
	ID             string            `json:"id"`
	EventID        string            `json:"event_id"`
	UserID         string            `json:"user_id"`
	Status         ParticipantStatus `json:"status"`
	JoinedAt       time.Time         `json:"joined_at"`
	HasPendingDues bool              `json:"has_pending_dues"`
	DuesCleared    bool              `json:"dues_cleared"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
