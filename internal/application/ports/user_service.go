package ports

import (
	"context"

	"user-records-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, input user.Registration) (*user.User, error)
	FindByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByPhone(ctx context.Context, phone string) (*user.User, error)
	FindByName(ctx context.Context, name string) (user.Users, error)
	FindByStatus(ctx context.Context, active bool) (user.Users, error)
	FindAll(ctx context.Context) (user.Users, error)
	Update(ctx context.Context, uuid user.UUID, upd user.Update) (*user.User, error)
	Replace(ctx context.Context, uuid user.UUID, input user.Registration) (*user.User, error)
	Delete(ctx context.Context, uuid user.UUID) error
	SetStatus(ctx context.Context, uuid user.UUID, active bool) (*user.User, error)
	Authenticate(ctx context.Context, email, secret string) (*user.User, error)
}
