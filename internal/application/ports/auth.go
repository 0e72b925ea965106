package ports

import (
	"user-records-api/internal/domain/user"
)

type Auth interface {
	GenerateToken(u *user.User) (string, error)
}
