package notification

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramSender delivers queued notification messages to users' telegram
// chats. With an empty token it runs disabled and only logs.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramSender(token string, log logger.Logger) (*TelegramSender, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramSender{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot, logger: log}, nil
}

func (s *TelegramSender) Send(chatID *int64, text string) error {
	if s.bot == nil {
		s.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if chatID == nil {
		s.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
