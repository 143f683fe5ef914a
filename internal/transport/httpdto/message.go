package httpdto

import (
	"time"

	"relay-chat/internal/domain/message"
)

// SendMessageRequest is used for POST /api/chats/:chatId/messages
type SendMessageRequest struct {
	SenderID string `json:"sender_id"`
	Body     string `json:"body"`
}

// MessageDTO represents a message in API responses with its sender expanded
type MessageDTO struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id"`
	Sender    UserDTO   `json:"sender"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// FromMessage converts a domain message to MessageDTO
func FromMessage(m message.Message) MessageDTO {
	return MessageDTO{
		ID:        m.ID.String(),
		ChatID:    m.ChatID.String(),
		SenderID:  m.SenderID.String(),
		Sender:    FromUser(m.Sender),
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// FromMessageSlice converts a slice of domain messages to MessageDTO slice
func FromMessageSlice(messages []message.Message) []MessageDTO {
	dtos := make([]MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = FromMessage(m)
	}
	return dtos
}
