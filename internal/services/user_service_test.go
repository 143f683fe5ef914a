package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relay-chat/internal/domain/user"
	relay_errors "relay-chat/pkg/errors"
)

type fakeUserRepo struct {
	byUsername map[string]user.User
	createErr  error
	created    []user.User
	// missFirstRead makes the first username lookup miss, simulating a
	// concurrent login that inserts between our read and our create.
	missFirstRead bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byUsername[u.Username]; exists {
		return relay_errors.ErrAlreadyExists
	}
	f.byUsername[u.Username] = *u
	f.created = append(f.created, *u)
	return nil
}

func (f *fakeUserRepo) GetAllUsers(ctx context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(f.byUsername))
	for _, u := range f.byUsername {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, relay_errors.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	if f.missFirstRead {
		f.missFirstRead = false
		return user.User{}, relay_errors.ErrNotFound
	}
	u, ok := f.byUsername[username]
	if !ok {
		return user.User{}, relay_errors.ErrNotFound
	}
	return u, nil
}

func TestLogin_CreatesWhenAbsent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Login(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Len(t, repo.created, 1)
}

func TestLogin_ReturnsExisting(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	first, err := svc.Login(context.Background(), "alice")
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "a second login must return the same user")
	assert.Len(t, repo.created, 1)
}

func TestLogin_EmptyUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, relay_errors.ErrInvalidInput)
}

func TestLogin_LostCreateRaceReturnsWinner(t *testing.T) {
	repo := newFakeUserRepo()
	winner := user.User{ID: uuid.New(), Username: "alice"}
	repo.byUsername["alice"] = winner
	repo.missFirstRead = true
	repo.createErr = relay_errors.ErrAlreadyExists
	svc := NewUserService(repo)

	u, err := svc.Login(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, u.ID)
}

func TestLogin_StoreErrorPropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("db down")
	svc := NewUserService(repo)

	_, err := svc.Login(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
