package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/Houeta/price-scout/internal/models"
	"gopkg.in/telebot.v4"
)

const maxReportedErrors = 5

// NotifyRunSummary sends the scrape run summary to all subscribed chats.
func (b *Bot) NotifyRunSummary(ctx context.Context, summary *models.RunSummary) error {
	const opn = "bot.NotifyRunSummary"

	chatIDs, err := b.repo.GetSubscribedChats(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to get subscribed chats: %w", opn, err)
	}

	message := formatSummary(summary)
	for _, chatID := range chatIDs {
		if _, err = b.bot.Send(telebot.ChatID(chatID), message); err != nil {
			// One unreachable chat must not block the others.
			b.log.Error("failed to send run summary", "op", opn, "chat_id", chatID, "error", err)
		}
	}

	return nil
}

// formatSummary renders the run summary counters and a bounded sample of the
// recorded errors.
func formatSummary(summary *models.RunSummary) string {
	var sb strings.Builder

	status := "succeeded"
	if !summary.Success {
		status = "FAILED"
	}

	fmt.Fprintf(&sb, "Scrape of %s %s in %.1fs\n", summary.Website, status, summary.Duration.Seconds())
	fmt.Fprintf(&sb, "Found: %d | Processed: %d | Created: %d | Updated: %d\n",
		summary.ProductsFound, summary.ProductsProcessed, summary.ProductsCreated, summary.ProductsUpdated)

	if len(summary.Errors) > 0 {
		fmt.Fprintf(&sb, "Errors (%d):\n", len(summary.Errors))
		for i, msg := range summary.Errors {
			if i == maxReportedErrors {
				sb.WriteString("...\n")
				break
			}
			fmt.Fprintf(&sb, "- %s\n", msg)
		}
	}

	return sb.String()
}
