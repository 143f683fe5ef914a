package message

import (
	"time"

	"github.com/google/uuid"

	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/user"
)

// Message represents the messages table. Rows are append-only: messages are
// never edited or deleted by this service.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`

	// Relationships; the FK constraints reject messages against a
	// nonexistent chat or sender.
	Chat   chat.Chat `gorm:"foreignKey:ChatID"`
	Sender user.User `gorm:"foreignKey:SenderID"`
}

func (Message) TableName() string {
	return "messages"
}
