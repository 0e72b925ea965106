package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"user-records-api/internal/domain/user"
)

// Repository is an in-memory user store honoring the same contract as the
// postgres implementation, including the email/phone uniqueness signal.
// Backs the service tests and local runs without a database.
type Repository struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	byID map[user.UUID]*user.User
}

func NewRepository() *Repository {
	return &Repository{byID: make(map[user.UUID]*user.User)}
}

func (r *Repository) FetchByUUID(_ context.Context, uuid user.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byID[uuid]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *Repository) FetchByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *Repository) FetchByPhone(_ context.Context, phone string) (*user.User, error) {
	if phone == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Phone == phone {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *Repository) FetchByName(_ context.Context, name string) (user.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(user.Users, 0)
	for _, u := range r.byID {
		if u.Name == name {
			us = append(us, clone(u))
		}
	}
	return us, nil
}

func (r *Repository) FetchByStatus(_ context.Context, active bool) (user.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(user.Users, 0)
	for _, u := range r.byID {
		if u.Active == active {
			us = append(us, clone(u))
		}
	}
	return us, nil
}

func (r *Repository) FetchAll(_ context.Context) (user.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := make(user.Users, 0, len(r.byID))
	for _, u := range r.byID {
		us = append(us, clone(u))
	}
	return us, nil
}

func (r *Repository) Create(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == req.Email {
			return nil, user.ErrUniqueViolation
		}
		if req.Phone != "" && u.Phone == req.Phone {
			return nil, user.ErrUniqueViolation
		}
	}

	now := time.Now()
	req.UUID = uuid.New()
	req.CreatedAt = now
	req.UpdatedAt = now

	r.byID[req.UUID] = clone(&req)

	return clone(&req), nil
}

func (r *Repository) Update(_ context.Context, req user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[req.UUID]
	if !ok {
		return nil, nil
	}

	for id, u := range r.byID {
		if id == req.UUID {
			continue
		}
		if u.Email == req.Email {
			return nil, user.ErrUniqueViolation
		}
		if req.Phone != "" && u.Phone == req.Phone {
			return nil, user.ErrUniqueViolation
		}
	}

	req.CreatedAt = existing.CreatedAt
	req.UpdatedAt = time.Now()

	r.byID[req.UUID] = clone(&req)

	return clone(&req), nil
}

func (r *Repository) Delete(_ context.Context, uuid user.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[uuid]
	if !ok {
		return nil, nil
	}
	delete(r.byID, uuid)

	return u, nil
}

// InTx serializes the whole check-then-write sequence; with a single process
// a mutex is an adequate stand-in for the database transaction.
func (r *Repository) InTx(_ context.Context, fn func(r user.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	return fn(r)
}

func clone(u *user.User) *user.User {
	c := *u
	if u.SecretHash != nil {
		h := *u.SecretHash
		c.SecretHash = &h
	}
	return &c
}
