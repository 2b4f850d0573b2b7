package domain

import "time"

// Finance is the per-user money summary. All values are non-negative
// integers in minor currency units. Dues must equal the sum of the user's
// pending Due records; the reconciliation job repairs drift.
type Finance struct {
	Dues                int64 `json:"dues"`
	PendingCommission   int64 `json:"pending_commission"`
	AvailableCommission int64 `json:"available_commission"`
	TotalEarned         int64 `json:"total_earned"`
	TotalWithdrawn      int64 `json:"total_withdrawn"`
}

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Gender         *string    `json:"gender,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Location       *Location  `json:"location,omitempty"`
	Verified       bool       `json:"verified"`
	EventsJoined   int        `json:"events_joined"`
	Finance        Finance    `json:"finance"`
	TelegramChatID *int64     `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Gender         *string
	DateOfBirth    *time.Time
	Location       *Location
	TelegramChatID *int64
}
