package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	Usernames []string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Usernames: []string{"alice", "bob", "carol"},
	}
}

// SeedResult holds the result of the seeding operation
type SeedResult struct {
	Users    []user.User
	Chats    []chat.Chat
	Messages []message.Message
}

// Seed populates a development dataset: three users, a named group chat for
// everyone, an unnamed direct chat between the first two users with a couple
// of messages. Safe to re-run; existing usernames are reused.
func Seed(db *gorm.DB, cfg *SeedConfig) (*SeedResult, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}
	if len(cfg.Usernames) < 2 {
		return nil, fmt.Errorf("seeding needs at least two usernames, got %d", len(cfg.Usernames))
	}

	result := &SeedResult{}

	log.Println("Starting database seeding...")

	for _, name := range cfg.Usernames {
		u := user.User{ID: uuid.New(), Username: name, CreatedAt: time.Now()}
		if err := db.Where(user.User{Username: name}).FirstOrCreate(&u).Error; err != nil {
			return nil, fmt.Errorf("seeding user %q: %w", name, err)
		}
		result.Users = append(result.Users, u)
	}

	group := chat.Chat{
		ID:           uuid.New(),
		Name:         sqlString("Team"),
		CreatedAt:    time.Now(),
		Participants: result.Users,
	}
	if err := db.Create(&group).Error; err != nil {
		return nil, fmt.Errorf("seeding group chat: %w", err)
	}
	result.Chats = append(result.Chats, group)

	direct := chat.Chat{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		Participants: result.Users[:2],
	}
	if err := db.Create(&direct).Error; err != nil {
		return nil, fmt.Errorf("seeding direct chat: %w", err)
	}
	result.Chats = append(result.Chats, direct)

	bodies := []string{"hi", "yo"}
	for i, body := range bodies {
		m := message.Message{
			ID:        uuid.New(),
			ChatID:    direct.ID,
			SenderID:  result.Users[i%2].ID,
			Body:      body,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := db.Omit("Chat", "Sender").Create(&m).Error; err != nil {
			return nil, fmt.Errorf("seeding message: %w", err)
		}
		result.Messages = append(result.Messages, m)
	}

	log.Printf("Seeding complete: %d users, %d chats, %d messages",
		len(result.Users), len(result.Chats), len(result.Messages))
	return result, nil
}

func sqlString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
