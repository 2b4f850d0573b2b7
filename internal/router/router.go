package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	PublishEvent(c *ginext.Context)
	StartEvent(c *ginext.Context)
	CompleteEvent(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	JoinEvent(c *ginext.Context)
	ApproveJoin(c *ginext.Context)
	RejectJoin(c *ginext.Context)
	LeaveEvent(c *ginext.Context)
	ApproveLeave(c *ginext.Context)
	GetParticipant(c *ginext.Context)
	GetEventCommission(c *ginext.Context)
	CreateDue(c *ginext.Context)
	GetUserDues(c *ginext.Context)
	CreatePaymentOrder(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	ClearReferralReward(c *ginext.Context)
	ClearWithCommission(c *ginext.Context)
	GetFinance(c *ginext.Context)
	Withdraw(c *ginext.Context)
	ListUserCommissions(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/publish", h.PublishEvent)
		api.POST("/events/:id/start", h.StartEvent)
		api.POST("/events/:id/complete", h.CompleteEvent)
		api.POST("/events/:id/cancel", h.CancelEvent)

		// Participation
		api.POST("/events/:id/join", h.JoinEvent)
		api.POST("/events/:id/join/approve", h.ApproveJoin)
		api.POST("/events/:id/join/reject", h.RejectJoin)
		api.POST("/events/:id/leave", h.LeaveEvent)
		api.POST("/events/:id/leave/approve", h.ApproveLeave)
		api.GET("/events/:id/participants/:user_id", h.GetParticipant)
		api.GET("/events/:id/commission", h.GetEventCommission)

		// Dues and payments
		api.POST("/dues", h.CreateDue)
		api.POST("/dues/orders", h.CreatePaymentOrder)
		api.POST("/dues/clear-with-commission", h.ClearWithCommission)
		api.POST("/dues/clear-referral-reward", h.ClearReferralReward)
		api.POST("/payments/callback", h.PaymentCallback)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/dues", h.GetUserDues)
		api.GET("/users/:id/finance", h.GetFinance)
		api.POST("/users/:id/withdraw", h.Withdraw)
		api.GET("/users/:id/commissions", h.ListUserCommissions)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
