package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relay-chat/internal/domain/chat"
	"relay-chat/internal/domain/message"
	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"
)

type userRec struct {
	id       uuid.UUID
	username string
}

func usersOf(recs ...userRec) []user.User {
	users := make([]user.User, len(recs))
	for i, r := range recs {
		users[i] = user.User{ID: r.id, Username: r.username}
	}
	return users
}

type fakeChatRepo struct {
	chatIDs      []uuid.UUID
	chatIDsErr   error
	chats        []chat.Chat
	chatsErr     error
	byID         map[uuid.UUID]chat.Chat
	batchFetches int
}

func (f *fakeChatRepo) GetChatIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return f.chatIDs, f.chatIDsErr
}

func (f *fakeChatRepo) GetChatsByIDs(ctx context.Context, ids []uuid.UUID) ([]chat.Chat, error) {
	f.batchFetches++
	return f.chats, f.chatsErr
}

func (f *fakeChatRepo) GetByID(ctx context.Context, id uuid.UUID) (chat.Chat, error) {
	c, ok := f.byID[id]
	if !ok {
		return chat.Chat{}, relay_errors.ErrNotFound
	}
	return c, nil
}

type fakeMessageRepo struct {
	mu        sync.Mutex
	last      map[uuid.UUID]message.Message
	lastErr   map[uuid.UUID]error
	lastCalls int
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *message.Message) error { return nil }

func (f *fakeMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (message.Message, error) {
	return message.Message{}, relay_errors.ErrNotFound
}

func (f *fakeMessageRepo) GetChatMessages(ctx context.Context, chatID uuid.UUID) ([]message.Message, error) {
	return nil, nil
}

func (f *fakeMessageRepo) GetLastMessage(ctx context.Context, chatID uuid.UUID) (message.Message, error) {
	f.mu.Lock()
	f.lastCalls++
	f.mu.Unlock()
	if err, ok := f.lastErr[chatID]; ok {
		return message.Message{}, err
	}
	m, ok := f.last[chatID]
	if !ok {
		return message.Message{}, relay_errors.ErrNotFound
	}
	return m, nil
}

func summaryByID(t *testing.T, summaries []chat.Summary, id uuid.UUID) chat.Summary {
	t.Helper()
	for _, s := range summaries {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no summary for chat %s", id)
	return chat.Summary{}
}

func TestListChatsForUser_EmptyMembershipShortCircuits(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	msgRepo := &fakeMessageRepo{}
	svc := NewChatService(chatRepo, msgRepo, nil)

	summaries, err := svc.ListChatsForUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Zero(t, chatRepo.batchFetches, "no chat fetch for a user without memberships")
	assert.Zero(t, msgRepo.lastCalls, "no message fetch for a user without memberships")
}

func TestListChatsForUser_Aggregates(t *testing.T) {
	u1 := uuid.New()
	u2 := uuid.New()
	u3 := uuid.New()

	chatOne := chat.Chat{ID: uuid.New()}
	chatOne.Participants = usersOf(userRec{u1, "alice"}, userRec{u2, "bob"})

	chatTwo := chat.Chat{ID: uuid.New(), Name: sql.NullString{String: "Team", Valid: true}}
	chatTwo.Participants = usersOf(userRec{u1, "alice"}, userRec{u2, "bob"}, userRec{u3, "carol"})

	t2 := time.Now()
	chatRepo := &fakeChatRepo{
		chatIDs: []uuid.UUID{chatOne.ID, chatTwo.ID},
		chats:   []chat.Chat{chatOne, chatTwo},
	}
	msgRepo := &fakeMessageRepo{
		last: map[uuid.UUID]message.Message{
			chatOne.ID: {ID: uuid.New(), ChatID: chatOne.ID, SenderID: u2, Body: "yo", CreatedAt: t2},
		},
	}
	svc := NewChatService(chatRepo, msgRepo, nil)

	summaries, err := svc.ListChatsForUser(context.Background(), u1)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	one := summaryByID(t, summaries, chatOne.ID)
	assert.Equal(t, "bob", one.Name)
	assert.Len(t, one.Participants, 2, "requester stays in the participant list")
	require.NotNil(t, one.LastMessage)
	assert.Equal(t, "yo", one.LastMessage.Body)
	assert.Equal(t, t2, one.LastMessage.CreatedAt)

	two := summaryByID(t, summaries, chatTwo.ID)
	assert.Equal(t, "Team", two.Name)
	assert.Nil(t, two.LastMessage)
}

func TestListChatsForUser_Idempotent(t *testing.T) {
	u1 := uuid.New()
	c := chat.Chat{ID: uuid.New()}
	c.Participants = usersOf(userRec{u1, "alice"}, userRec{uuid.New(), "bob"})

	chatRepo := &fakeChatRepo{chatIDs: []uuid.UUID{c.ID}, chats: []chat.Chat{c}}
	msgRepo := &fakeMessageRepo{
		last: map[uuid.UUID]message.Message{
			c.ID: {ID: uuid.New(), ChatID: c.ID, Body: "hi", CreatedAt: time.Now()},
		},
	}
	svc := NewChatService(chatRepo, msgRepo, nil)

	first, err := svc.ListChatsForUser(context.Background(), u1)
	require.NoError(t, err)
	second, err := svc.ListChatsForUser(context.Background(), u1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListChatsForUser_PerChatMessageFailureIsIsolated(t *testing.T) {
	u1 := uuid.New()
	healthy := chat.Chat{ID: uuid.New()}
	healthy.Participants = usersOf(userRec{u1, "alice"}, userRec{uuid.New(), "bob"})
	broken := chat.Chat{ID: uuid.New()}
	broken.Participants = usersOf(userRec{u1, "alice"}, userRec{uuid.New(), "carol"})

	lastAt := time.Now()
	chatRepo := &fakeChatRepo{
		chatIDs: []uuid.UUID{healthy.ID, broken.ID},
		chats:   []chat.Chat{healthy, broken},
	}
	msgRepo := &fakeMessageRepo{
		last: map[uuid.UUID]message.Message{
			healthy.ID: {ID: uuid.New(), ChatID: healthy.ID, Body: "still here", CreatedAt: lastAt},
		},
		lastErr: map[uuid.UUID]error{
			broken.ID: errors.New("connection reset"),
		},
	}
	svc := NewChatService(chatRepo, msgRepo, nil)

	summaries, err := svc.ListChatsForUser(context.Background(), u1)
	require.NoError(t, err, "a per-chat message failure must not fail the listing")
	require.Len(t, summaries, 2)

	require.NotNil(t, summaryByID(t, summaries, healthy.ID).LastMessage)
	assert.Nil(t, summaryByID(t, summaries, broken.ID).LastMessage)
}

func TestListChatsForUser_MembershipFailureAborts(t *testing.T) {
	chatRepo := &fakeChatRepo{chatIDsErr: errors.New("db down")}
	svc := NewChatService(chatRepo, &fakeMessageRepo{}, nil)

	_, err := svc.ListChatsForUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestListChatsForUser_ChatFetchFailureAborts(t *testing.T) {
	chatRepo := &fakeChatRepo{
		chatIDs:  []uuid.UUID{uuid.New()},
		chatsErr: errors.New("db down"),
	}
	msgRepo := &fakeMessageRepo{}
	svc := NewChatService(chatRepo, msgRepo, nil)

	_, err := svc.ListChatsForUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Zero(t, msgRepo.lastCalls, "no message fan-out after a failed chat fetch")
}

func TestListChatsForUser_MissingChatRowIsDropped(t *testing.T) {
	u1 := uuid.New()
	present := chat.Chat{ID: uuid.New()}
	present.Participants = usersOf(userRec{u1, "alice"}, userRec{uuid.New(), "bob"})

	// Two membership rows, only one chat row behind them.
	chatRepo := &fakeChatRepo{
		chatIDs: []uuid.UUID{present.ID, uuid.New()},
		chats:   []chat.Chat{present},
	}
	svc := NewChatService(chatRepo, &fakeMessageRepo{}, nil)

	summaries, err := svc.ListChatsForUser(context.Background(), u1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, present.ID, summaries[0].ID)
}
