package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/db/postgres"
)

// DB is the slice of pgx both *pgxpool.Pool and pgx.Tx satisfy, so the same
// repository code runs pooled or inside a transaction.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, uuid.String())
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) FetchByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByPhone, phone)
}

func (r *Repository) FetchByName(ctx context.Context, name string) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsersByName, name)
}

func (r *Repository) FetchByStatus(ctx context.Context, active bool) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsersByStatus, active)
}

func (r *Repository) FetchAll(ctx context.Context) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsers)
}

func (r *Repository) Create(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Name, req.LastNames, req.Email, req.SecretHash, req.Phone, req.Address, string(req.Role), req.Active,
	).Scan(
		&u.UUID,
		&u.Name,
		&u.LastNames,
		&u.Email,
		&u.SecretHash,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrUniqueViolation
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) Update(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		UpdateUserByUUID,
		req.Name, req.LastNames, req.Email, req.SecretHash, req.Phone, req.Address, string(req.Role), req.Active, req.UUID,
	).Scan(
		&u.UUID,
		&u.Name,
		&u.LastNames,
		&u.Email,
		&u.SecretHash,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrUniqueViolation
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) Delete(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, DeleteUserByUUID, uuid.String()).Scan(
		&u.UUID,
		&u.Name,
		&u.LastNames,
		&u.Email,
		&u.SecretHash,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// InTx runs fn against a repository bound to one transaction. The store's
// unique constraints stay authoritative for races the pre-checks miss.
func (r *Repository) InTx(ctx context.Context, fn func(r user.Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(&Repository{db: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.UUID,
		&u.Name,
		&u.LastNames,
		&u.Email,
		&u.SecretHash,
		&u.Phone,
		&u.Address,
		&u.Role,
		&u.Active,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := make(Users, 0)
	for rows.Next() {
		u := new(User)

		if err = rows.Scan(
			&u.UUID,
			&u.Name,
			&u.LastNames,
			&u.Email,
			&u.SecretHash,
			&u.Phone,
			&u.Address,
			&u.Role,
			&u.Active,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
