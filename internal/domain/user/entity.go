package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
