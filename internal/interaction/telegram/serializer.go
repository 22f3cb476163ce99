package telegram

import (
	"fmt"
	"strings"

	"goldtracker/internal/model"
)

const (
	InternationalTitle = "当前国际金价"
	DomesticTitle      = "当前国内金价"
	BanksTitle         = "中国五大银行投资金条价格"
	ShopsTitle         = "黄金首饰店金价"

	lastUpdatedLayout = "2006-01-02 15:04:05"
)

// HeadlineToString returns the international and domestic cards.
func (that *Interaction) HeadlineToString(dashboard *model.Dashboard) string {
	var sb strings.Builder

	for _, card := range []struct {
		title  string
		entity *model.TrackedEntity
	}{
		{title: InternationalTitle, entity: &dashboard.InternationalGold},
		{title: DomesticTitle, entity: &dashboard.DomesticGold},
	} {
		sb.WriteString(fmt.Sprintf("<b>%s</b>\n<pre>\n", card.title))
		sb.WriteString(fmt.Sprintf("%s%s %s %s\n", card.entity.VolatilityClass.CurrencySymbol(), card.entity.CurrentPrice.StringFixed(2), card.entity.VolatilityClass.Unit(), changeToString(card.entity)))
		sb.WriteString("</pre>\n")
	}

	sb.WriteString(fmt.Sprintf("最后更新: %s", dashboard.GeneratedAt.In(that.loc).Format(lastUpdatedLayout)))
	return sb.String()
}

// EntitiesToString returns one row per bank or shop card.
func (that *Interaction) EntitiesToString(title string, entities []model.TrackedEntity) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b>\n<pre>\n", title))

	for i := range entities {
		entity := &entities[i]
		price := entity.VolatilityClass.CurrencySymbol() + entity.CurrentPrice.StringFixed(2)
		sb.WriteString(fmt.Sprintf("%-8s %-10s %s\n", entity.Name, price, changeToString(entity)))
	}

	sb.WriteString("</pre>")
	return sb.String()
}

func changeToString(entity *model.TrackedEntity) string {
	arrow := "▲"
	if entity.Trend() == model.TrendDown {
		arrow = "▼"
	}

	return arrow + " " + entity.Change.Abs().StringFixed(2)
}
