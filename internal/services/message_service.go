package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"relay-chat/internal/domain/message"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
)

type MessageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) ListChatMessages(ctx context.Context, chatID uuid.UUID) ([]message.Message, error) {
	return s.repo.GetChatMessages(ctx, chatID)
}

func (s *MessageService) GetByID(ctx context.Context, id uuid.UUID) (message.Message, error) {
	return s.repo.GetByID(ctx, id)
}

// Send appends a message to a chat. Referential integrity is the store's:
// a nonexistent chat or sender fails the insert with the store's FK error.
func (s *MessageService) Send(ctx context.Context, chatID, senderID uuid.UUID, body string) (message.Message, error) {
	if body == "" || senderID == uuid.Nil {
		return message.Message{}, relay_errors.ErrInvalidInput
	}

	m := message.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		SenderID:  senderID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &m); err != nil {
		return message.Message{}, err
	}
	// Re-read to expand the sender for the response.
	return s.repo.GetByID(ctx, m.ID)
}
