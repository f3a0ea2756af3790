package models

import (
	"time"
)

// AI features with tracked usage.
const (
	AIFeatureTriage = "triage"
	AIFeatureChat   = "chat"
)

// AIChatMessage stores one exchange of the staff knowledge-assistant chat.
type AIChatMessage struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ConversationID string    `gorm:"size:100;not null;index;column:conversation_id" json:"conversation_id"`
	Message        string    `gorm:"type:text;not null;column:message" json:"message"`
	Response       string    `gorm:"type:text;not null;column:response" json:"response"`
	UserID         int64     `gorm:"not null;index;column:user_id" json:"user_id"`
	User           *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AIChatMessage) TableName() string {
	return "ai_chat_message"
}

// AIUsage counts successful AI calls per feature.
type AIUsage struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Feature    string `gorm:"size:50;not null;unique;column:feature" json:"feature"`
	UsageCount int64  `gorm:"not null;default:0;column:usage_count" json:"usage_count"`
}

func (AIUsage) TableName() string {
	return "ai_usage"
}
