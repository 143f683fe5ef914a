package chat

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"relay-chat/internal/domain/user"
)

// Chat represents the chats table
type Chat struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      sql.NullString // nullable; display name is derived when absent
	CreatedAt time.Time

	// Relationships
	Participants []user.User `gorm:"many2many:user_chats"`
}

// Membership represents the user_chats join table
type Membership struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (Chat) TableName() string {
	return "chats"
}

func (Membership) TableName() string {
	return "user_chats"
}
