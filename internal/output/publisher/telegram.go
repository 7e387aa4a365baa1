package publisher

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	apperrors "github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/errors"
)

// TelegramPublisher posts HTML-formatted messages to a target chat.
type TelegramPublisher struct {
	api          *tgbotapi.BotAPI
	targetChatID int64
	logger       *zerolog.Logger
}

func NewTelegram(botToken string, targetChatID int64, logger *zerolog.Logger) (*TelegramPublisher, error) {
	if botToken == "" || targetChatID == 0 {
		return nil, fmt.Errorf("%w: bot token and target chat id are required", apperrors.ErrInvalidInput)
	}

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	return &TelegramPublisher{
		api:          api,
		targetChatID: targetChatID,
		logger:       logger,
	}, nil
}

func (p *TelegramPublisher) Surface() string {
	return SurfaceTelegram
}

func (p *TelegramPublisher) Publish(_ context.Context, text string) error {
	msg := tgbotapi.NewMessage(p.targetChatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	sent, err := p.api.Send(msg)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	p.logger.Info().Int("message_id", sent.MessageID).Int64("chat_id", p.targetChatID).Msg("published to telegram")

	return nil
}

// Ensure TelegramPublisher implements Publisher interface.
var _ Publisher = (*TelegramPublisher)(nil)
