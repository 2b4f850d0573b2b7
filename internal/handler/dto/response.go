package dto

import (
	"time"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
)

type EventResponse struct {
	ID                 string     `json:"id"`
	OrganizerID        string     `json:"organizer_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	StartsAt           time.Time  `json:"starts_at"`
	Genders            []string   `json:"genders,omitempty"`
	MinAge             int        `json:"min_age,omitempty"`
	MaxAge             int        `json:"max_age,omitempty"`
	MaxDistanceKm      *float64   `json:"max_distance_km,omitempty"`
	MemberLimit        int        `json:"member_limit,omitempty"`
	RequiresApproval   bool       `json:"requires_approval"`
	IsFree             bool       `json:"is_free"`
	Price              int64      `json:"price"`
	ParticipantCount   int        `json:"participant_count"`
	WaitlistCount      int        `json:"waitlist_count"`
	TotalDuesGenerated int64      `json:"total_dues_generated"`
	TotalDuesCleared   int64      `json:"total_dues_cleared"`
	Location           *LatLng    `json:"location,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type EventDetailsResponse struct {
	EventResponse
	Participants []ParticipantResponse `json:"participants"`
}

type ParticipantResponse struct {
	EventID        string    `json:"event_id"`
	UserID         string    `json:"user_id"`
	Status         string    `json:"status"`
	JoinedAt       time.Time `json:"joined_at"`
	HasPendingDues bool      `json:"has_pending_dues"`
	DuesCleared    bool      `json:"dues_cleared"`
}

type DueResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	EventID     string     `json:"event_id"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	ClearedVia  *string    `json:"cleared_via,omitempty"`
	ReferenceID *string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ClearedAt   *time.Time `json:"cleared_at,omitempty"`
}

type PaymentOrderResponse struct {
	ID             string   `json:"id"`
	GatewayOrderID string   `json:"gateway_order_id"`
	UserID         string   `json:"user_id"`
	DueIDs         []string `json:"due_ids"`
	Amount         int64    `json:"amount"`
	GatewayFee     int64    `json:"gateway_fee"`
	GST            int64    `json:"gst"`
	Discount       int64    `json:"discount"`
	Payable        int64    `json:"payable"`
	Status         string   `json:"status"`
}

type FinanceResponse struct {
	Dues                int64 `json:"dues"`
	PendingCommission   int64 `json:"pending_commission"`
	AvailableCommission int64 `json:"available_commission"`
	TotalEarned         int64 `json:"total_earned"`
	TotalWithdrawn      int64 `json:"total_withdrawn"`
}

type CommissionResponse struct {
	ID                     string `json:"id"`
	AdminID                string `json:"admin_id"`
	EventID                string `json:"event_id"`
	Status                 string `json:"status"`
	TotalDuesGenerated     int64  `json:"total_dues_generated"`
	AdminShare             int64  `json:"admin_share"`
	PlatformShare          int64  `json:"platform_share"`
	ParticipantsCount      int    `json:"participants_count"`
	ParticipantsDueCleared int    `json:"participants_due_cleared"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Gender       *string   `json:"gender,omitempty"`
	Verified     bool      `json:"verified"`
	EventsJoined int       `json:"events_joined"`
	CreatedAt    time.Time `json:"created_at"`
}

type ClearResultResponse struct {
	Cleared []DueResponse `json:"cleared"`
	Skipped int           `json:"skipped"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                 e.ID,
		OrganizerID:        e.OrganizerID,
		Title:              e.Title,
		Description:        e.Description,
		Type:               string(e.Type),
		Status:             string(e.Status),
		StartsAt:           e.StartsAt,
		Genders:            e.Eligibility.Genders,
		MinAge:             e.Eligibility.MinAge,
		MaxAge:             e.Eligibility.MaxAge,
		MaxDistanceKm:      e.Eligibility.MaxDistanceKm,
		MemberLimit:        e.Eligibility.MemberLimit,
		RequiresApproval:   e.Eligibility.RequiresApproval,
		IsFree:             e.Pricing.IsFree,
		Price:              e.Pricing.Price,
		ParticipantCount:   e.ParticipantCount,
		WaitlistCount:      e.WaitlistCount,
		TotalDuesGenerated: e.TotalDuesGenerated,
		TotalDuesCleared:   e.TotalDuesCleared,
		CreatedAt:          e.CreatedAt,
	}
	if e.Location != nil {
		resp.Location = &LatLng{Lat: e.Location.Lat, Lng: e.Location.Lng}
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		EventResponse: ToEventResponse(&d.Event),
		Participants:  make([]ParticipantResponse, 0, len(d.Participants)),
	}
	for i := range d.Participants {
		resp.Participants = append(resp.Participants, ToParticipantResponse(&d.Participants[i]))
	}
	return resp
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		EventID:        p.EventID,
		UserID:         p.UserID,
		Status:         string(p.Status),
		JoinedAt:       p.JoinedAt,
		HasPendingDues: p.HasPendingDues,
		DuesCleared:    p.DuesCleared,
	}
}

func ToDueResponse(d *domain.Due) DueResponse {
	resp := DueResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		EventID:     d.EventID,
		Amount:      d.Amount,
		Status:      string(d.Status),
		ReferenceID: d.ReferenceID,
		CreatedAt:   d.CreatedAt,
		ClearedAt:   d.ClearedAt,
	}
	if d.ClearedVia != nil {
		via := string(*d.ClearedVia)
		resp.ClearedVia = &via
	}
	return resp
}

func ToPaymentOrderResponse(o *domain.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		ID:             o.ID,
		GatewayOrderID: o.GatewayOrderID,
		UserID:         o.UserID,
		DueIDs:         o.DueIDs,
		Amount:         o.Amount,
		GatewayFee:     o.GatewayFee,
		GST:            o.GST,
		Discount:       o.Discount,
		Payable:        o.Payable,
		Status:         string(o.Status),
	}
}

func ToFinanceResponse(f *domain.Finance) FinanceResponse {
	return FinanceResponse{
		Dues:                f.Dues,
		PendingCommission:   f.PendingCommission,
		AvailableCommission: f.AvailableCommission,
		TotalEarned:         f.TotalEarned,
		TotalWithdrawn:      f.TotalWithdrawn,
	}
}

func ToCommissionResponse(c *domain.Commission) CommissionResponse {
	return CommissionResponse{
		ID:                     c.ID,
		AdminID:                c.AdminID,
		EventID:                c.EventID,
		Status:                 string(c.Status),
		TotalDuesGenerated:     c.TotalDuesGenerated,
		AdminShare:             c.AdminShare,
		PlatformShare:          c.PlatformShare,
		ParticipantsCount:      c.ParticipantsCount,
		ParticipantsDueCleared: c.ParticipantsDueCleared,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Gender:       u.Gender,
		Verified:     u.Verified,
		EventsJoined: u.EventsJoined,
		CreatedAt:    u.CreatedAt,
	}
}
