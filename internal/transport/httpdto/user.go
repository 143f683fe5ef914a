package httpdto

import (
	"relay-chat/internal/domain/user"
)

// LoginRequest is used for POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// FromUser converts a domain user to UserDTO
func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}

// FromUserSlice converts a slice of domain users to UserDTO slice
func FromUserSlice(users []user.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = FromUser(u)
	}
	return dtos
}
