package domain

import "errors"

// Not found: terminal, never retried.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrDueNotFound          = errors.New("due not found")
	ErrCommissionNotFound   = errors.New("commission not found")
	ErrPaymentOrderNotFound = errors.New("payment order not found")
)

// Conflict: duplicate or already-processed work.
var (
	ErrAlreadyJoined     = errors.New("user already has an active join for this event")
	ErrDueExists         = errors.New("due already exists for this user and event")
	ErrDueAlreadyCleared = errors.New("due is already cleared")
	ErrAlreadyProcessed  = errors.New("payment order already processed")
	ErrUsernameTaken     = errors.New("username is already taken")
)

// Forbidden: organizer-only action attempted by someone else.
var ErrNotOrganizer = errors.New("only the event organizer may perform this action")

// Domain-rule violations: terminal, user-facing.
var (
	ErrEventNotJoinable       = errors.New("event is not open for joining")
	ErrEventFull              = errors.New("event has reached its member limit")
	ErrNotEligible            = errors.New("user is not eligible for this event")
	ErrDuesPending            = errors.New("user has pending dues")
	ErrOrganizerCannotJoin    = errors.New("organizer cannot join own event")
	ErrParticipantNotPending  = errors.New("join request is not pending approval")
	ErrParticipantNotApproved = errors.New("participant is not approved")
	ErrLeaveNotRequested      = errors.New("participant has not requested to leave")
	ErrLeaveWindowExpired     = errors.New("leave window has expired")
	ErrInvalidTransition      = errors.New("event status transition is not allowed")
	ErrInsufficientCommission = errors.New("insufficient commission balance")
	ErrBelowMinWithdrawal     = errors.New("amount is below the minimum withdrawal")
)

var ErrValidation = errors.New("validation error")
