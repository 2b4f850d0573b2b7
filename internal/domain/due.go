package domain

import "time"

type DueStatus string

const (
	DueStatusPending DueStatus = "pending"
	DueStatusCleared DueStatus = "cleared"
)

// ClearedVia records which settlement path closed a due.
type ClearedVia string

const (
	ClearedViaPayment        ClearedVia = "payment"
	ClearedViaCommission     ClearedVia = "commission"
	ClearedViaReferralReward ClearedVia = "referral_reward"
)

// Due is one user's monetary obligation for one event. Created exactly once
// per (user, event) pair, cleared exactly once, never re-opened.
type Due struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	EventID     string      `json:"event_id"`
	Amount      int64       `json:"amount"` // minor currency units, > 0
	Status      DueStatus   `json:"status"`
	ClearedVia  *ClearedVia `json:"cleared_via,omitempty"`
	ReferenceID *string     `json:"reference_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	ClearedAt   *time.Time  `json:"cleared_at,omitempty"`
}

type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated PaymentOrderStatus = "created"
	PaymentOrderStatusPaid    PaymentOrderStatus = "paid"
	PaymentOrderStatusFailed  PaymentOrderStatus = "failed"
)

// PaymentOrder maps a gateway order to the dues it settles. The gateway
// protocol itself lives outside this subsystem; we only record effects.
type PaymentOrder struct {
	ID               string             `json:"id"`
	GatewayOrderID   string             `json:"gateway_order_id"`
	GatewayPaymentID *string            `json:"gateway_payment_id,omitempty"`
	UserID           string             `json:"user_id"`
	DueIDs           []string           `json:"due_ids"`
	Amount           int64              `json:"amount"`
	GatewayFee       int64              `json:"gateway_fee"`
	GST              int64              `json:"gst"`
	Discount         int64              `json:"discount"`
	Payable          int64              `json:"payable"`
	Status           PaymentOrderStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
