package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID       uuid.UUID
		Name       string
		LastNames  string
		Email      string
		SecretHash *string
		Phone      string
		Address    string
		Role       string
		Active     bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
