package repository

import (
	"context"

	"github.com/google/uuid"

	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetAllUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
}

type ChatRepository interface {
	// GetChatIDsForUser returns the ids of every chat the user is a member of.
	GetChatIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// GetChatsByIDs batch-fetches chats with participants preloaded. Ids with
	// no matching row are simply absent from the result.
	GetChatsByIDs(ctx context.Context, ids []uuid.UUID) ([]chat.Chat, error)
	GetByID(ctx context.Context, id uuid.UUID) (chat.Chat, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (message.Message, error)
	// GetChatMessages returns a chat's messages ascending by created_at with
	// senders preloaded.
	GetChatMessages(ctx context.Context, chatID uuid.UUID) ([]message.Message, error)
	// GetLastMessage returns the newest message of a chat, or ErrNotFound if
	// the chat has none.
	GetLastMessage(ctx context.Context, chatID uuid.UUID) (message.Message, error)
}
