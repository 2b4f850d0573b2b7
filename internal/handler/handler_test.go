package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/handler/dto"
	hmocks "github.com/boomghooom/BoomGhoomBackend-sub000/internal/handler/mocks"
)

type testMocks struct {
	events        *hmocks.MockEventSvc
	participation *hmocks.MockParticipationSvc
	dues          *hmocks.MockDuesSvc
	finance       *hmocks.MockFinanceSvc
	users         *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		events:        hmocks.NewMockEventSvc(t),
		participation: hmocks.NewMockParticipationSvc(t),
		dues:          hmocks.NewMockDuesSvc(t),
		finance:       hmocks.NewMockFinanceSvc(t),
		users:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.events, m.participation, m.dues, m.finance, m.users)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/publish", h.PublishEvent)
		api.POST("/events/:id/complete", h.CompleteEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)
		api.POST("/events/:id/join", h.JoinEvent)
		api.POST("/events/:id/join/approve", h.ApproveJoin)
		api.POST("/events/:id/join/reject", h.RejectJoin)
		api.POST("/events/:id/leave", h.LeaveEvent)
		api.POST("/events/:id/leave/approve", h.ApproveLeave)
		api.POST("/dues", h.CreateDue)
		api.POST("/dues/orders", h.CreatePaymentOrder)
		api.POST("/dues/clear-with-commission", h.ClearWithCommission)
		api.POST("/dues/clear-referral-reward", h.ClearReferralReward)
		api.POST("/payments/callback", h.PaymentCallback)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/finance", h.GetFinance)
		api.POST("/users/:id/withdraw", h.Withdraw)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	organizerID := uuid.New().String()
	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: organizerID,
		Title:       "Pottery workshop",
		Type:        domain.EventTypeUserCreated,
		Status:      domain.EventStatusDraft,
		StartsAt:    time.Now().Add(24 * time.Hour),
		Pricing:     domain.Pricing{Price: 5000},
		CreatedAt:   time.Now(),
	}

	m.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OrganizerID: organizerID,
		Title:       "Pottery workshop",
		Type:        "user_created",
		StartsAt:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Price:       5000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pottery workshop", resp.Title)
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		OrganizerID: uuid.New().String(),
		Title:       "X",
		Type:        "user_created",
		StartsAt:    "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{"title": "X"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event: domain.Event{ID: eventID, Title: "Pottery workshop", ParticipantCount: 7},
		Participants: []domain.Participant{
			{EventID: eventID, UserID: uuid.New().String(), Status: domain.ParticipantStatusApproved},
		},
	}

	m.events.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.ParticipantCount)
	assert.Len(t, resp.Participants, 1)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_PublishEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	m.events.EXPECT().Publish(mock.Anything, eventID, organizerID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/publish", dto.OrganizerRequest{OrganizerID: organizerID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PublishEvent_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	m.events.EXPECT().Publish(mock.Anything, eventID, organizerID).Return(domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/publish", dto.OrganizerRequest{OrganizerID: organizerID})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_CompleteEvent_NotOrganizer(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	callerID := uuid.New().String()
	m.events.EXPECT().Complete(mock.Anything, eventID, callerID).Return(nil, domain.ErrNotOrganizer)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/complete", dto.OrganizerRequest{OrganizerID: callerID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	m.events.EXPECT().Cancel(mock.Anything, eventID, organizerID, "rained out").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel", dto.CancelEventRequest{
		OrganizerID: organizerID,
		Reason:      "rained out",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Participation ---

func TestHandler_JoinEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	participant := &domain.Participant{
		EventID:  eventID,
		UserID:   userID,
		Status:   domain.ParticipantStatusPendingApproval,
		JoinedAt: time.Now(),
	}

	m.participation.EXPECT().RequestToJoin(mock.Anything, eventID, userID).Return(participant, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join", dto.JoinRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ParticipantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_approval", resp.Status)
}

func TestHandler_JoinEvent_NotEligible(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().RequestToJoin(mock.Anything, eventID, userID).Return(nil, domain.ErrNotEligible)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join", dto.JoinRequest{UserID: userID})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_JoinEvent_AlreadyJoined(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().RequestToJoin(mock.Anything, eventID, userID).Return(nil, domain.ErrAlreadyJoined)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join", dto.JoinRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinEvent_DuesPending(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().RequestToJoin(mock.Anything, eventID, userID).Return(nil, domain.ErrDuesPending)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join", dto.JoinRequest{UserID: userID})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_ApproveJoin_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().ApproveJoinRequest(mock.Anything, eventID, organizerID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join/approve", dto.ModerateJoinRequest{
		OrganizerID: organizerID,
		UserID:      userID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectJoin_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().RejectJoinRequest(mock.Anything, eventID, organizerID, userID, "full house").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join/reject", dto.ModerateJoinRequest{
		OrganizerID: organizerID,
		UserID:      userID,
		Reason:      "full house",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_LeaveEvent_WindowExpired(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().RequestToLeave(mock.Anything, eventID, userID).Return(domain.ErrLeaveWindowExpired)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/leave", dto.JoinRequest{UserID: userID})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_ApproveLeave_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	organizerID := uuid.New().String()
	userID := uuid.New().String()
	m.participation.EXPECT().ApproveLeaveRequest(mock.Anything, eventID, organizerID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/leave/approve", dto.ModerateJoinRequest{
		OrganizerID: organizerID,
		UserID:      userID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Dues and payments ---

func TestHandler_CreateDue_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	due := &domain.Due{
		ID:      uuid.New().String(),
		UserID:  userID,
		EventID: eventID,
		Amount:  5000,
		Status:  domain.DueStatusPending,
	}

	m.dues.EXPECT().CreateDue(mock.Anything, userID, eventID, int64(5000)).Return(due, nil)

	w := doJSON(t, r, http.MethodPost, "/api/dues", dto.CreateDueRequest{
		UserID:  userID,
		EventID: eventID,
		Amount:  5000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5000), resp.Amount)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateDue_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	eventID := uuid.New().String()
	m.dues.EXPECT().CreateDue(mock.Anything, userID, eventID, int64(5000)).Return(nil, domain.ErrDueExists)

	w := doJSON(t, r, http.MethodPost, "/api/dues", dto.CreateDueRequest{
		UserID:  userID,
		EventID: eventID,
		Amount:  5000,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreatePaymentOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	order := &domain.PaymentOrder{
		ID:             uuid.New().String(),
		GatewayOrderID: "order_xyz",
		UserID:         userID,
		DueIDs:         []string{"d1"},
		Amount:         5000,
		Payable:        5100,
		Status:         domain.PaymentOrderStatusCreated,
	}

	m.dues.EXPECT().CreatePaymentOrder(mock.Anything, userID, []string{"d1"}, 0).Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/dues/orders", dto.CreatePaymentOrderRequest{
		UserID: userID,
		DueIDs: []string{"d1"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_xyz", resp.GatewayOrderID)
	assert.Equal(t, int64(5100), resp.Payable)
}

func TestHandler_PaymentCallback_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.dues.EXPECT().HandleGatewayCallback(mock.Anything, "order_xyz", "pay_1", true).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/callback", dto.GatewayCallbackRequest{
		GatewayOrderID:   "order_xyz",
		GatewayPaymentID: "pay_1",
		Status:           "success",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentCallback_Replay(t *testing.T) {
	m, r := setupRouter(t)

	m.dues.EXPECT().HandleGatewayCallback(mock.Anything, "order_xyz", "pay_1", true).Return(domain.ErrAlreadyProcessed)

	w := doJSON(t, r, http.MethodPost, "/api/payments/callback", dto.GatewayCallbackRequest{
		GatewayOrderID:   "order_xyz",
		GatewayPaymentID: "pay_1",
		Status:           "success",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PaymentCallback_InvalidStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/callback", map[string]any{
		"gateway_order_id": "order_xyz",
		"status":           "maybe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClearReferralReward_Success(t *testing.T) {
	m, r := setupRouter(t)

	due := &domain.Due{
		ID:      uuid.New().String(),
		UserID:  uuid.New().String(),
		EventID: uuid.New().String(),
		Amount:  2500,
		Status:  domain.DueStatusCleared,
	}

	m.dues.EXPECT().ClearMany(mock.Anything, []string{due.ID}, domain.ClearedViaReferralReward, "ref_42").
		Return([]*domain.Due{due}, 1, nil)

	w := doJSON(t, r, http.MethodPost, "/api/dues/clear-referral-reward", dto.ReferralRewardRequest{
		DueIDs:      []string{due.ID},
		ReferenceID: "ref_42",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ClearResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Cleared, 1)
	assert.Equal(t, 1, resp.Skipped)
}

func TestHandler_ClearWithCommission_Insufficient(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.dues.EXPECT().ClearDuesWithCommission(mock.Anything, userID, []string{"d1"}).
		Return(nil, 0, domain.ErrInsufficientCommission)

	w := doJSON(t, r, http.MethodPost, "/api/dues/clear-with-commission", dto.ClearWithCommissionRequest{
		UserID: userID,
		DueIDs: []string{"d1"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Finance ---

func TestHandler_GetFinance_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	finance := &domain.Finance{Dues: 5000, AvailableCommission: 7000}

	m.finance.EXPECT().GetFinanceSummary(mock.Anything, userID).Return(finance, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/finance", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.FinanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7000), resp.AvailableCommission)
}

func TestHandler_Withdraw_BelowMinimum(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.finance.EXPECT().Withdraw(mock.Anything, userID, int64(100)).Return(nil, domain.ErrBelowMinWithdrawal)

	w := doJSON(t, r, http.MethodPost, "/api/users/"+userID+"/withdraw", dto.WithdrawRequest{Amount: 100})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_InvalidDateOfBirth(t *testing.T) {
	_, r := setupRouter(t)

	dob := "31-12-1999"
	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice", DateOfBirth: &dob})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
