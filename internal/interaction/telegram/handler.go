package telegram

import (
	"context"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	helpMessage        = "<b>黄金价格查询</b>\n/price - 当前国际金价与国内金价\n/banks - 中国五大银行投资金条价格\n/shops - 黄金首饰店金价"
	buildFailedMessage = "暂时无法获取金价，请稍后再试"
)

func (that *Interaction) handlerHelp(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerHelp", "user_id", update.Message.Chat.ID)

	if _, err := that.sendHTML(ctx, bot, update, helpMessage); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) handlerPrice(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerPrice", "user_id", update.Message.Chat.ID)

	dashboard, err := that.dashboard.BuildDashboard()
	if err != nil {
		log.Error("failed to build dashboard", "error", err)
		if _, err = that.sendHTML(ctx, bot, update, buildFailedMessage); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	if _, err = that.sendHTML(ctx, bot, update, that.HeadlineToString(dashboard)); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) handlerBanks(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerBanks", "user_id", update.Message.Chat.ID)

	dashboard, err := that.dashboard.BuildDashboard()
	if err != nil {
		log.Error("failed to build dashboard", "error", err)
		if _, err = that.sendHTML(ctx, bot, update, buildFailedMessage); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	if _, err = that.sendHTML(ctx, bot, update, that.EntitiesToString(BanksTitle, dashboard.Banks)); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) handlerShops(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerShops", "user_id", update.Message.Chat.ID)

	dashboard, err := that.dashboard.BuildDashboard()
	if err != nil {
		log.Error("failed to build dashboard", "error", err)
		if _, err = that.sendHTML(ctx, bot, update, buildFailedMessage); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	if _, err = that.sendHTML(ctx, bot, update, that.EntitiesToString(ShopsTitle, dashboard.Shops)); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}
