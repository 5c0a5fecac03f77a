package status

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSink pushes alerts and terminal events to a chat so an unattended
// crawl can be watched from a phone. Routine Update traffic is not forwarded;
// that would flood the chat once per page load.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (t *TelegramSink) Update(string) {}

func (t *TelegramSink) Alert(text string) {
	msg := tgbotapi.NewMessage(t.chatID, "🚨 "+text)
	if _, err := t.bot.Send(msg); err != nil {
		//the sink must never take the crawl down
		log.Printf("⚠️ Failed to send telegram alert: %v", err)
	}
}

// Notify sends a non-alarm terminal event (crawl finished, queue drained).
func (t *TelegramSink) Notify(text string) {
	msg := tgbotapi.NewMessage(t.chatID, "ℹ️ "+text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send telegram message: %v", err)
	}
}
