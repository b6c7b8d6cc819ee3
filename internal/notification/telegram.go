package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot        sender
	pendingTTL string
	logger     logger.Logger
}

func NewTelegramNotifier(token, pendingTTL string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{pendingTTL: pendingTTL, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, pendingTTL: pendingTTL, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking, a *domain.Apartment) {
	text := fmt.Sprintf(
		"*Booking received*\n\n"+"Apartment: %s\n"+"Stay: %s\n"+"Total: %s\n"+"Complete payment within %s or the dates will be released.",
		escape(a.Name), stay(b), b.TotalPrice.StringFixed(2), n.pendingTTL,
	)
	n.send(ctx, user.TelegramChatID, b.ID, "created", text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, b *domain.Booking, a *domain.Apartment) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Apartment: %s\n"+"Stay: %s\n"+"Guests: %d",
		escape(a.Name), stay(b), b.Guests,
	)
	n.send(ctx, user.TelegramChatID, b.ID, "confirmed", text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking, a *domain.Apartment) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Apartment: %s\n"+"Stay: %s\n"+"Reason: %s",
		escape(a.Name), stay(b), escape(b.CancellationReason),
	)
	n.send(ctx, user.TelegramChatID, b.ID, "cancelled", text)
}

func stay(b *domain.Booking) string {
	return b.CheckIn.Format(dateLayout) + " - " + b.CheckOut.Format(dateLayout)
}

// escape keeps guest and admin supplied text from breaking Markdown parsing.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, bookingID, kind, text string) {
	switch {
	case n.bot == nil:
		n.logger.Debug("notification skipped, bot disabled",
			logger.String("booking_id", bookingID),
			logger.String("kind", kind),
		)
		return
	case chatID == nil:
		n.logger.Debug("notification skipped, no chat_id",
			logger.String("booking_id", bookingID),
			logger.String("kind", kind),
		)
		return
	case ctx.Err() != nil:
		n.logger.Debug("notification skipped, context done",
			logger.String("booking_id", bookingID),
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("booking_id", bookingID),
			logger.String("kind", kind),
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Debug("notification sent",
		logger.String("booking_id", bookingID),
		logger.String("kind", kind),
	)
}
