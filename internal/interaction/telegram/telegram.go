package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"goldtracker/internal/model"
)

type DashboardBuilder interface {
	BuildDashboard() (*model.Dashboard, error)
}

type Interaction struct {
	logger    *slog.Logger
	TgBot     *telegramBot.Bot
	loc       *time.Location
	dashboard DashboardBuilder
}

func NewInteraction(logger *slog.Logger, token string, client telegramBot.HttpClient, loc *time.Location, dashboard DashboardBuilder) (*Interaction, error) {
	cnt := &Interaction{
		logger:    logger.With("component", "telegram"),
		loc:       loc,
		dashboard: dashboard,
	}

	opts := []telegramBot.Option{
		telegramBot.WithHTTPClient(time.Minute, client),
		telegramBot.WithSkipGetMe(),
		telegramBot.WithDefaultHandler(cnt.handler),
	}

	b, err := telegramBot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/start", telegramBot.MatchTypeExact, cnt.handlerHelp)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/help", telegramBot.MatchTypeExact, cnt.handlerHelp)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/price", telegramBot.MatchTypeExact, cnt.handlerPrice)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/banks", telegramBot.MatchTypeExact, cnt.handlerBanks)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/shops", telegramBot.MatchTypeExact, cnt.handlerShops)

	cnt.TgBot = b
	return cnt, nil
}

func (that *Interaction) Start(ctx context.Context) {
	that.TgBot.Start(ctx)
}

func (that *Interaction) handler(_ context.Context, _ *telegramBot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	log := that.logger.With("method", "handler", "user_id", update.Message.Chat.ID)
	log.Info("ignoring unknown message", "text", update.Message.Text)
}

// sendHTML sends an HTML formatted message to the chat of the update.
func (that *Interaction) sendHTML(ctx context.Context, bot *telegramBot.Bot, update *models.Update, text string) (*models.Message, error) {
	msg, err := bot.SendMessage(ctx, &telegramBot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text, ParseMode: models.ParseModeHTML})
	if err != nil {
		return nil, fmt.Errorf("send message to telegram user: %w", err)
	}

	return msg, nil
}
