package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wanerdev/creaparty2020/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pings the admin chat when the back office needs attention.
// Customer-facing mail stays with the email relay; this covers the two
// moments an admin wants to hear about immediately.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, admin notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyNewQuotation(ctx context.Context, q *domain.Quotation) {
	text := fmt.Sprintf(
		"*New quotation*\n\n%s — %s\nDate: %s, %d guests\nTier: %s\nTotal: %.2f",
		q.Name, q.EventType, q.EventDate, q.Headcount, q.ServiceTier, q.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyQuotationApproved(ctx context.Context, q *domain.Quotation) {}

func (n *TelegramNotifier) NotifyQuotationRejected(ctx context.Context, q *domain.Quotation, reason string) {
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation confirmed*\n\n%s — %s\nDate: %s\nTotal: %.2f",
		r.Name, r.EventType, r.EventDate, r.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyEventReminder(ctx context.Context, r *domain.Reservation) {}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("admin notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("admin notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
