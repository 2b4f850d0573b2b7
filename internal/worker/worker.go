// Package worker drains the notification queue and delivers each message.
package worker

import (
	"encoding/json"
	"fmt"

	"github.com/boomghooom/BoomGhoomBackend-sub000/internal/notification"
	"github.com/wb-go/wbf/logger"
)

type consumer interface {
	Consume(handler func([]byte) error) error
}

type sender interface {
	Send(chatID *int64, text string) error
}

type Worker struct {
	queue  consumer
	sender sender
	logger logger.Logger
}

func New(queue consumer, sender sender, log logger.Logger) *Worker {
	return &Worker{queue: queue, sender: sender, logger: log}
}

func (w *Worker) Start() error {
	return w.queue.Consume(w.handle)
}

func (w *Worker) handle(body []byte) error {
	var msg notification.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		// Malformed messages are dropped, not retried.
		w.logger.Error("malformed notification message",
			logger.String("error", err.Error()),
		)
		return nil
	}

	if err := w.sender.Send(msg.ChatID, msg.Text); err != nil {
		return fmt.Errorf("deliver %s notification: %w", msg.Kind, err)
	}

	w.logger.Debug("notification delivered",
		logger.String("kind", msg.Kind),
	)

	return nil
}
