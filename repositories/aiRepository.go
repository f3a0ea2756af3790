package repositories

import (
	"HRAS/database"
	"HRAS/models"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AIRepository struct{}

func NewAIRepository() *AIRepository {
	return &AIRepository{}
}

func (r *AIRepository) SaveChatMessage(ctx context.Context, message *models.AIChatMessage) error {
	if err := database.DB.Create(message).Error; err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// RecentHistory returns the last n exchanges of a conversation, oldest first,
// so they can be replayed as context for the next prompt.
func (r *AIRepository) RecentHistory(ctx context.Context, conversationID string, n int) ([]models.AIChatMessage, error) {
	var messages []models.AIChatMessage
	err := database.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(n).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// IncrementUsage bumps the per-feature counter, creating the row on first use.
func (r *AIRepository) IncrementUsage(ctx context.Context, feature string) error {
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "feature"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"usage_count": gorm.Expr("ai_usage.usage_count + 1"),
		}),
	}).Create(&models.AIUsage{Feature: feature, UsageCount: 1}).Error
	if err != nil {
		return fmt.Errorf("failed to increment AI usage: %w", err)
	}
	return nil
}

func (r *AIRepository) GetUsage(ctx context.Context) ([]models.AIUsage, error) {
	var usage []models.AIUsage
	if err := database.DB.Order("feature").Find(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to get AI usage: %w", err)
	}
	return usage, nil
}
