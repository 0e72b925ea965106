package user

import (
	"context"
)

// Repository is the persistence contract the service drives. Single-row
// lookups return (nil, nil) when no record matches; collection lookups
// return an empty slice. Create and Update surface unique-constraint
// conflicts as a distinguishable error so the service can translate them.
type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchByEmail(ctx context.Context, email string) (*User, error)
	FetchByPhone(ctx context.Context, phone string) (*User, error)
	FetchByName(ctx context.Context, name string) (Users, error)
	FetchByStatus(ctx context.Context, active bool) (Users, error)
	FetchAll(ctx context.Context) (Users, error)
	Create(ctx context.Context, req User) (*User, error)
	Update(ctx context.Context, req User) (*User, error)
	Delete(ctx context.Context, uuid UUID) (*User, error)

	// InTx runs fn against a repository bound to a single transaction.
	// Mutations do their check-then-write sequence inside it so the store's
	// constraints remain the final authority under concurrent writers.
	InTx(ctx context.Context, fn func(r Repository) error) error
}
