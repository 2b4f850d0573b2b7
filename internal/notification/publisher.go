package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Message is the wire format on the notification queue.
type Message struct {
	Kind   string `json:"kind"`
	ChatID *int64 `json:"chat_id,omitempty"`
	Text   string `json:"text"`
}

const (
	KindJoinRequested       = "join_requested"
	KindJoinApproved        = "join_approved"
	KindJoinRejected        = "join_rejected"
	KindLeaveApproved       = "leave_approved"
	KindCommissionAvailable = "commission_available"
)

type queuePublisher interface {
	Publish(body []byte) error
}

// Publisher implements the notifier port by dropping messages on the
// notification queue. Delivery failures are logged and swallowed: a lost
// notification never rolls back the transaction that produced it.
type Publisher struct {
	queue  queuePublisher
	logger logger.Logger
}

func NewPublisher(queue queuePublisher, log logger.Logger) *Publisher {
	return &Publisher{queue: queue, logger: log}
}

func (p *Publisher) NotifyJoinRequested(ctx context.Context, organizer, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf("%s has requested to join %q. Approve or reject the request.", user.Username, event.Title)
	p.publish(ctx, Message{Kind: KindJoinRequested, ChatID: organizer.TelegramChatID, Text: text})
}

func (p *Publisher) NotifyJoinApproved(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf("You're in! Your spot for %q on %s is confirmed.", event.Title, event.StartsAt.Format("02.01.2006 15:04"))
	p.publish(ctx, Message{Kind: KindJoinApproved, ChatID: user.TelegramChatID, Text: text})
}

func (p *Publisher) NotifyJoinRejected(ctx context.Context, user *domain.User, event *domain.Event, reason string) {
	text := fmt.Sprintf("Your request to join %q was declined.", event.Title)
	if reason != "" {
		text += " Reason: " + reason
	}
	p.publish(ctx, Message{Kind: KindJoinRejected, ChatID: user.TelegramChatID, Text: text})
}

func (p *Publisher) NotifyLeaveApproved(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf("You have left %q.", event.Title)
	p.publish(ctx, Message{Kind: KindLeaveApproved, ChatID: user.TelegramChatID, Text: text})
}

func (p *Publisher) NotifyCommissionAvailable(ctx context.Context, organizer *domain.User, c *domain.Commission) {
	text := fmt.Sprintf("Your commission of %d is now available for withdrawal.", c.AdminShare)
	p.publish(ctx, Message{Kind: KindCommissionAvailable, ChatID: organizer.TelegramChatID, Text: text})
}

func (p *Publisher) publish(ctx context.Context, msg Message) {
	if err := ctx.Err(); err != nil {
		p.logger.Debug("notification skipped (context cancelled)",
			logger.String("kind", msg.Kind),
		)
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to marshal notification",
			logger.String("kind", msg.Kind),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = p.queue.Publish(body); err != nil {
		p.logger.Error("failed to publish notification",
			logger.String("kind", msg.Kind),
			logger.String("error", err.Error()),
		)
	}
}
