package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"relay-chat/internal/domain/user"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAllUsers(ctx)
}

// Login returns the user with the given username, creating it first if no
// such user exists. When a concurrent login creates the same username between
// our read and our insert, the unique index rejects the insert and the
// winner's row is returned instead.
func (s *UserService) Login(ctx context.Context, username string) (user.User, error) {
	if username == "" {
		return user.User{}, relay_errors.ErrInvalidInput
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, relay_errors.ErrNotFound) {
		return user.User{}, err
	}

	created := user.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		if errors.Is(err, relay_errors.ErrAlreadyExists) {
			return s.repo.GetUserByUsername(ctx, username)
		}
		return user.User{}, err
	}
	return created, nil
}
