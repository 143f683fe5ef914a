package httpdto

import (
	"time"

	"relay-chat/internal/domain/chat"
)

// ChatDTO represents a single chat in API responses; Name is the stored name
// and may be null.
type ChatDTO struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	Participants []UserDTO `json:"participants"`
}

// ChatSummaryDTO represents one entry of the chat listing. Name is always the
// resolved display name.
type ChatSummaryDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Participants []UserDTO       `json:"participants"`
	LastMessage  *LastMessageDTO `json:"lastMessage,omitempty"`
}

// LastMessageDTO summarizes a chat's newest message
type LastMessageDTO struct {
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// FromChat converts a domain chat to ChatDTO
func FromChat(c chat.Chat) ChatDTO {
	dto := ChatDTO{
		ID:           c.ID.String(),
		Participants: FromUserSlice(c.Participants),
	}
	if c.Name.Valid {
		dto.Name = &c.Name.String
	}
	return dto
}

// FromChatSummary converts a domain chat summary to ChatSummaryDTO
func FromChatSummary(s chat.Summary) ChatSummaryDTO {
	dto := ChatSummaryDTO{
		ID:           s.ID.String(),
		Name:         s.Name,
		Participants: FromUserSlice(s.Participants),
	}
	if s.LastMessage != nil {
		dto.LastMessage = &LastMessageDTO{
			Body:      s.LastMessage.Body,
			Timestamp: s.LastMessage.CreatedAt,
		}
	}
	return dto
}

// FromChatSummarySlice converts a slice of chat summaries to DTOs
func FromChatSummarySlice(summaries []chat.Summary) []ChatSummaryDTO {
	dtos := make([]ChatSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = FromChatSummary(s)
	}
	return dtos
}
