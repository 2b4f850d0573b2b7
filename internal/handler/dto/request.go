package dto

type CreateEventRequest struct {
	OrganizerID      string   `json:"organizer_id" binding:"required,uuid"`
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Type             string   `json:"type" binding:"required,oneof=organizer_sponsored user_created"`
	StartsAt         string   `json:"starts_at" binding:"required"`
	Genders          []string `json:"genders"`
	MinAge           int      `json:"min_age"`
	MaxAge           int      `json:"max_age"`
	MaxDistanceKm    *float64 `json:"max_distance_km"`
	MemberLimit      int      `json:"member_limit"`
	RequiresApproval bool     `json:"requires_approval"`
	IsFree           bool     `json:"is_free"`
	Price            int64    `json:"price"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

type CreateUserRequest struct {
	Username       string   `json:"username" binding:"required"`
	Gender         *string  `json:"gender"`
	DateOfBirth    *string  `json:"date_of_birth"` // 2006-01-02
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	TelegramChatID *int64   `json:"telegram_chat_id"`
}

type JoinRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ModerateJoinRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
	UserID      string `json:"user_id" binding:"required,uuid"`
	Reason      string `json:"reason"`
}

type OrganizerRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
}

type CancelEventRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
	Reason      string `json:"reason"`
}

type CreateDueRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	EventID string `json:"event_id" binding:"required,uuid"`
	Amount  int64  `json:"amount" binding:"required,gt=0"`
}

type CreatePaymentOrderRequest struct {
	UserID      string   `json:"user_id" binding:"required,uuid"`
	DueIDs      []string `json:"due_ids" binding:"required,min=1"`
	DiscountPct int      `json:"discount_pct" binding:"gte=0,lte=100"`
}

type GatewayCallbackRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	Status           string `json:"status" binding:"required,oneof=success failed"`
}

type ReferralRewardRequest struct {
	DueIDs      []string `json:"due_ids" binding:"required,min=1"`
	ReferenceID string   `json:"reference_id" binding:"required"`
}

type ClearWithCommissionRequest struct {
	UserID string   `json:"user_id" binding:"required,uuid"`
	DueIDs []string `json:"due_ids" binding:"required,min=1"`
}

type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
