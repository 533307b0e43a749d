package bot

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/telebot.v4"
)

const maxSearchResults = 5

// startHandler process command /start.
func (b *Bot) startHandler(ctx telebot.Context) error {
	b.log.Info("User started the bot", "username", ctx.Sender().Username)

	const greeting = "Hello! I track GPU prices.\n" +
		"/subscribe - receive a summary after every scrape run\n" +
		"/unsubscribe - stop receiving summaries\n" +
		"/best <query> - show the best tracked price for a card"

	if err := ctx.Send(greeting); err != nil {
		return fmt.Errorf("failed to send greeting message: %w", err)
	}

	return nil
}

// subscribeHandler process command /subscribe.
func (b *Bot) subscribeHandler(ctx telebot.Context) error {
	chatID := ctx.Chat().ID
	b.log.Info("User subscribed to run summaries", "chat_id", chatID)

	if err := b.repo.SubscribeChat(context.Background(), chatID); err != nil {
		return fmt.Errorf("failed to subscribe chat %d: %w", chatID, err)
	}

	if err := ctx.Send("Subscribed. You will receive a summary after every scrape run."); err != nil {
		return fmt.Errorf("failed to send subscribe confirmation: %w", err)
	}

	return nil
}

// unsubscribeHandler process command /unsubscribe.
func (b *Bot) unsubscribeHandler(ctx telebot.Context) error {
	chatID := ctx.Chat().ID
	b.log.Info("User unsubscribed from run summaries", "chat_id", chatID)

	if err := b.repo.UnsubscribeChat(context.Background(), chatID); err != nil {
		return fmt.Errorf("failed to unsubscribe chat %d: %w", chatID, err)
	}

	if err := ctx.Send("Unsubscribed."); err != nil {
		return fmt.Errorf("failed to send unsubscribe confirmation: %w", err)
	}

	return nil
}

// bestHandler process command /best <query>.
func (b *Bot) bestHandler(ctx telebot.Context) error {
	query := strings.TrimSpace(ctx.Message().Payload)
	if query == "" {
		if err := ctx.Send("Usage: /best <query>, e.g. /best rtx 4070"); err != nil {
			return fmt.Errorf("failed to send usage message: %w", err)
		}
		return nil
	}

	products, err := b.repo.SearchProducts(context.Background(), query, maxSearchResults)
	if err != nil {
		return fmt.Errorf("failed to search products for %q: %w", query, err)
	}

	if len(products) == 0 {
		if err = ctx.Send(fmt.Sprintf("No tracked products match %q.", query)); err != nil {
			return fmt.Errorf("failed to send empty result message: %w", err)
		}
		return nil
	}

	var sb strings.Builder
	for _, product := range products {
		sb.WriteString("• ")
		sb.WriteString(product.Name)
		sb.WriteString("\n")
		if product.BestPrice != nil {
			fmt.Fprintf(&sb, "  %.2f %s at %s\n",
				product.BestPrice.Price, product.BestPrice.Currency, product.BestPrice.WebsiteName)
		} else {
			sb.WriteString("  no price observed yet\n")
		}
	}

	if err = ctx.Send(sb.String()); err != nil {
		return fmt.Errorf("failed to send search results: %w", err)
	}

	return nil
}
