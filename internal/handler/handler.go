package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/handler/dto"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Publish(ctx context.Context, eventID, organizerID string) error
	Start(ctx context.Context, eventID, organizerID string) error
	Complete(ctx context.Context, eventID, organizerID string) (*domain.Event, error)
	Cancel(ctx context.Context, eventID, organizerID, reason string) error
}

type ParticipationSvc interface {
	RequestToJoin(ctx context.Context, eventID, userID string) (*domain.Participant, error)
	ApproveJoinRequest(ctx context.Context, eventID, organizerID, userID string) error
	RejectJoinRequest(ctx context.Context, eventID, organizerID, userID, reason string) error
	RequestToLeave(ctx context.Context, eventID, userID string) error
	ApproveLeaveRequest(ctx context.Context, eventID, organizerID, userID string) error
	GetParticipant(ctx context.Context, eventID, userID string) (*domain.Participant, error)
}

type DuesSvc interface {
	CreateDue(ctx context.Context, userID, eventID string, amount int64) (*domain.Due, error)
	ListPendingByUser(ctx context.Context, userID string) ([]*domain.Due, error)
	CreatePaymentOrder(ctx context.Context, userID string, dueIDs []string, discountPct int) (*domain.PaymentOrder, error)
	HandleGatewayCallback(ctx context.Context, gatewayOrderID, gatewayPaymentID string, success bool) error
	ClearMany(ctx context.Context, dueIDs []string, via domain.ClearedVia, referenceID string) ([]*domain.Due, int, error)
	ClearDuesWithCommission(ctx context.Context, userID string, dueIDs []string) ([]*domain.Due, int, error)
}

type FinanceSvc interface {
	GetFinanceSummary(ctx context.Context, userID string) (*domain.Finance, error)
	Withdraw(ctx context.Context, userID string, amount int64) (*domain.Finance, error)
	GetByEvent(ctx context.Context, eventID string) (*domain.Commission, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Commission, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService         EventSvc
	participationService ParticipationSvc
	duesService          DuesSvc
	financeService       FinanceSvc
	userService          UserSvc
}

func NewHandler(eventService EventSvc, participationService ParticipationSvc, duesService DuesSvc, financeService FinanceSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:         eventService,
		participationService: participationService,
		duesService:          duesService,
		financeService:       financeService,
		userService:          userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		OrganizerID: req.OrganizerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.EventType(req.Type),
		StartsAt:    startsAt,
		Eligibility: domain.Eligibility{
			Genders:          req.Genders,
			MinAge:           req.MinAge,
			MaxAge:           req.MaxAge,
			MaxDistanceKm:    req.MaxDistanceKm,
			MemberLimit:      req.MemberLimit,
			RequiresApproval: req.RequiresApproval,
		},
		Pricing: domain.Pricing{
			IsFree: req.IsFree,
			Price:  req.Price,
		},
	}
	if req.Lat != nil && req.Lng != nil {
		input.Location = &domain.Location{Lat: *req.Lat, Lng: *req.Lng}
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	eventID, req, ok := h.bindOrganizerAction(c)
	if !ok {
		return
	}

	if err := h.eventService.Publish(c.Request.Context(), eventID, req.OrganizerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "upcoming"})
}

func (h *Handler) StartEvent(c *ginext.Context) {
	eventID, req, ok := h.bindOrganizerAction(c)
	if !ok {
		return
	}

	if err := h.eventService.Start(c.Request.Context(), eventID, req.OrganizerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ongoing"})
}

func (h *Handler) CompleteEvent(c *ginext.Context) {
	eventID, req, ok := h.bindOrganizerAction(c)
	if !ok {
		return
	}

	event, err := h.eventService.Complete(c.Request.Context(), eventID, req.OrganizerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.CancelEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.Cancel(c.Request.Context(), eventID, req.OrganizerID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Participation

func (h *Handler) JoinEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.participationService.RequestToJoin(c.Request.Context(), eventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *Handler) ApproveJoin(c *ginext.Context) {
	eventID, req, ok := h.bindModerateAction(c)
	if !ok {
		return
	}

	if err := h.participationService.ApproveJoinRequest(c.Request.Context(), eventID, req.OrganizerID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectJoin(c *ginext.Context) {
	eventID, req, ok := h.bindModerateAction(c)
	if !ok {
		return
	}

	if err := h.participationService.RejectJoinRequest(c.Request.Context(), eventID, req.OrganizerID, req.UserID, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.participationService.RequestToLeave(c.Request.Context(), eventID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "leave_requested"})
}

func (h *Handler) ApproveLeave(c *ginext.Context) {
	eventID, req, ok := h.bindModerateAction(c)
	if !ok {
		return
	}

	if err := h.participationService.ApproveLeaveRequest(c.Request.Context(), eventID, req.OrganizerID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "left"})
}

func (h *Handler) GetParticipant(c *ginext.Context) {
	eventID := c.Param("id")
	userID := c.Param("user_id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	participant, err := h.participationService.GetParticipant(c.Request.Context(), eventID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// Dues and payments

func (h *Handler) CreateDue(c *ginext.Context) {
	var req dto.CreateDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	due, err := h.duesService.CreateDue(c.Request.Context(), req.UserID, req.EventID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDueResponse(due))
}

func (h *Handler) GetUserDues(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	dues, err := h.duesService.ListPendingByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.DueResponse, 0, len(dues))
	for _, d := range dues {
		resp = append(resp, dto.ToDueResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreatePaymentOrder(c *ginext.Context) {
	var req dto.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.duesService.CreatePaymentOrder(c.Request.Context(), req.UserID, req.DueIDs, req.DiscountPct)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentOrderResponse(order))
}

func (h *Handler) PaymentCallback(c *ginext.Context) {
	var req dto.GatewayCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	success := req.Status == "success"
	if err := h.duesService.HandleGatewayCallback(c.Request.Context(), req.GatewayOrderID, req.GatewayPaymentID, success); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "processed"})
}

func (h *Handler) ClearReferralReward(c *ginext.Context) {
	var req dto.ReferralRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cleared, skipped, err := h.duesService.ClearMany(c.Request.Context(), req.DueIDs, domain.ClearedViaReferralReward, req.ReferenceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ClearResultResponse{
		Cleared: make([]dto.DueResponse, 0, len(cleared)),
		Skipped: skipped,
	}
	for _, d := range cleared {
		resp.Cleared = append(resp.Cleared, dto.ToDueResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ClearWithCommission(c *ginext.Context) {
	var req dto.ClearWithCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cleared, skipped, err := h.duesService.ClearDuesWithCommission(c.Request.Context(), req.UserID, req.DueIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ClearResultResponse{
		Cleared: make([]dto.DueResponse, 0, len(cleared)),
		Skipped: skipped,
	}
	for _, d := range cleared {
		resp.Cleared = append(resp.Cleared, dto.ToDueResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Finance

func (h *Handler) GetFinance(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	finance, err := h.financeService.GetFinanceSummary(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceResponse(finance))
}

func (h *Handler) Withdraw(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	finance, err := h.financeService.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceResponse(finance))
}

func (h *Handler) GetEventCommission(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	commission, err := h.financeService.GetByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionResponse(commission))
}

func (h *Handler) ListUserCommissions(c *ginext.Context) {
	adminID := c.Param("id")
	if _, err := uuid.Parse(adminID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	commissions, err := h.financeService.ListByAdmin(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CommissionResponse, 0, len(commissions))
	for _, cm := range commissions {
		resp = append(resp, dto.ToCommissionResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Gender:         req.Gender,
		TelegramChatID: req.TelegramChatID,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date_of_birth format, expected YYYY-MM-DD",
			})
			return
		}
		input.DateOfBirth = &dob
	}
	if req.Lat != nil && req.Lng != nil {
		input.Location = &domain.Location{Lat: *req.Lat, Lng: *req.Lng}
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bindOrganizerAction(c *ginext.Context) (string, dto.OrganizerRequest, bool) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", dto.OrganizerRequest{}, false
	}

	var req dto.OrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return "", dto.OrganizerRequest{}, false
	}
	return eventID, req, true
}

func (h *Handler) bindModerateAction(c *ginext.Context) (string, dto.ModerateJoinRequest, bool) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", dto.ModerateJoinRequest{}, false
	}

	var req dto.ModerateJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return "", dto.ModerateJoinRequest{}, false
	}
	return eventID, req, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrDueNotFound),
		errors.Is(err, domain.ErrCommissionNotFound),
		errors.Is(err, domain.ErrPaymentOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrDueExists),
		errors.Is(err, domain.ErrDueAlreadyCleared),
		errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOrganizer):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotJoinable),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrNotEligible),
		errors.Is(err, domain.ErrDuesPending),
		errors.Is(err, domain.ErrOrganizerCannotJoin),
		errors.Is(err, domain.ErrParticipantNotPending),
		errors.Is(err, domain.ErrParticipantNotApproved),
		errors.Is(err, domain.ErrLeaveNotRequested),
		errors.Is(err, domain.ErrLeaveWindowExpired),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInsufficientCommission),
		errors.Is(err, domain.ErrBelowMinWithdrawal):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
