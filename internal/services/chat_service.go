package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
	"relay-chat/pkg/logger"
)

type ChatService struct {
	chats    repository.ChatRepository
	messages repository.MessageRepository
	logger   *logger.Logger
}

func NewChatService(chats repository.ChatRepository, messages repository.MessageRepository, l *logger.Logger) *ChatService {
	return &ChatService{chats: chats, messages: messages, logger: l}
}

// ListChatsForUser aggregates every chat the user belongs to into summaries:
// resolved display name, full participant list and the newest message.
//
// Three phases: membership lookup, batched chat fetch with participants, then
// a per-chat last-message fan-out. A membership or chat fetch failure aborts
// the whole listing; a last-message fetch failure is isolated to its chat,
// which is returned with LastMessage nil. Result order is whatever order the
// batched fetch returns and must not be relied upon.
func (s *ChatService) ListChatsForUser(ctx context.Context, userID uuid.UUID) ([]chat.Summary, error) {
	chatIDs, err := s.chats.GetChatIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving memberships: %w", err)
	}
	if len(chatIDs) == 0 {
		return []chat.Summary{}, nil
	}

	chats, err := s.chats.GetChatsByIDs(ctx, chatIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching chats: %w", err)
	}

	// Fan out one last-message fetch per chat. Each result is written to the
	// slot of its chat, so the association survives any completion order.
	lastMessages := make([]*message.Message, len(chats))
	var wg sync.WaitGroup
	for i := range chats {
		wg.Add(1)
		go func(i int, chatID uuid.UUID) {
			defer wg.Done()
			m, err := s.messages.GetLastMessage(ctx, chatID)
			if err != nil {
				if !errors.Is(err, relay_errors.ErrNotFound) && s.logger != nil {
					s.logger.Warnf("last message fetch failed for chat %s: %s", chatID, err)
				}
				return
			}
			lastMessages[i] = &m
		}(i, chats[i].ID)
	}
	wg.Wait()

	summaries := make([]chat.Summary, 0, len(chats))
	for i, c := range chats {
		summary := chat.Summary{
			ID:           c.ID,
			Name:         chat.ResolveDisplayName(c.Name, c.Participants, userID),
			Participants: c.Participants,
		}
		if m := lastMessages[i]; m != nil {
			summary.LastMessage = &chat.LastMessage{Body: m.Body, CreatedAt: m.CreatedAt}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *ChatService) GetByID(ctx context.Context, chatID uuid.UUID) (chat.Chat, error) {
	return s.chats.GetByID(ctx, chatID)
}
