package chat

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"relay-chat/internal/domain/user"
)

// DefaultName is used for chats with no stored name and no other participants.
const DefaultName = "New Chat"

// Summary is a response-time projection of a chat: resolved display name,
// full participant list and the most recent message. Never persisted.
type Summary struct {
	ID           uuid.UUID
	Name         string
	Participants []user.User
	LastMessage  *LastMessage
}

// LastMessage carries the body and timestamp of a chat's newest message.
type LastMessage struct {
	Body      string
	CreatedAt time.Time
}

// ResolveDisplayName picks the name shown to the requesting user. A non-empty
// stored name wins; otherwise the usernames of the other participants are
// joined in list order; a chat with no other participants falls back to
// DefaultName. The requester is excluded from derivation only, never from the
// participant list itself.
func ResolveDisplayName(stored sql.NullString, participants []user.User, requesterID uuid.UUID) string {
	if stored.Valid && stored.String != "" {
		return stored.String
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.ID != requesterID {
			names = append(names, p.Username)
		}
	}
	if len(names) == 0 {
		return DefaultName
	}
	return strings.Join(names, ", ")
}
