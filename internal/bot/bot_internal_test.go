package bot

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func TestStart(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Start").Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.Start()

	mockBot.AssertExpectations(t)
}

func TestStop(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Stop").Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.Stop()

	mockBot.AssertExpectations(t)
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)

	mockBot.On("Handle", "/start", mock.AnythingOfType("telebot.HandlerFunc")).Once()
	mockBot.On("Handle", "/subscribe", mock.AnythingOfType("telebot.HandlerFunc")).Once()
	mockBot.On("Handle", "/unsubscribe", mock.AnythingOfType("telebot.HandlerFunc")).Once()
	mockBot.On("Handle", "/best", mock.AnythingOfType("telebot.HandlerFunc")).Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.registerRoutes()

	mockBot.AssertExpectations(t)
}

func TestNotifyRunSummary(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockRepo := mocks.NewInterface(t)

	summary := &models.RunSummary{
		Website:           "topachat",
		Success:           true,
		ProductsFound:     3,
		ProductsProcessed: 3,
		ProductsCreated:   1,
		ProductsUpdated:   2,
		Duration:          2 * time.Second,
	}

	mockRepo.On("GetSubscribedChats", mock.Anything).Return([]int64{101, 202}, nil).Once()
	mockBot.On("Send", telebot.ChatID(101), mock.AnythingOfType("string")).Return(&telebot.Message{}, nil).Once()
	mockBot.On("Send", telebot.ChatID(202), mock.AnythingOfType("string")).Return(&telebot.Message{}, nil).Once()

	testBot := Bot{bot: mockBot, log: slog.Default(), repo: mockRepo}

	err := testBot.NotifyRunSummary(context.Background(), summary)
	require.NoError(t, err)

	mockBot.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	summary := &models.RunSummary{
		Website:           "topachat",
		Success:           false,
		ProductsFound:     10,
		ProductsProcessed: 8,
		ProductsCreated:   2,
		ProductsUpdated:   6,
		Duration:          1500 * time.Millisecond,
		Errors: []string{
			"error 1", "error 2", "error 3", "error 4", "error 5", "error 6", "error 7",
		},
	}

	message := formatSummary(summary)

	assert.Contains(t, message, "FAILED")
	assert.Contains(t, message, "Found: 10 | Processed: 8 | Created: 2 | Updated: 6")
	assert.Contains(t, message, "Errors (7):")
	assert.Contains(t, message, "error 5")
	// The sample of reported errors is bounded.
	assert.NotContains(t, message, "error 6")
	assert.Contains(t, message, "...")
}
