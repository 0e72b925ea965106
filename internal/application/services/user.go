package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/mq"
	"user-records-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// typed keeps the four failure kinds intact and folds everything else
// (store errors, commit errors) into a LogicError for the given op.
func typed(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists) ||
		errors.Is(err, domain.ErrInvalidCredentials) ||
		domain.IsLogicError(err) {
		return err
	}
	return domain.NewLogicError(op, err)
}

func (us *UserService) Register(ctx context.Context, input domain.Registration) (*domain.User, error) {
	input.ApplyDefaults()

	var created *domain.User
	err := us.userRepository.InTx(ctx, func(r domain.Repository) error {
		existing, err := r.FetchByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyExists
		}

		hash, err := us.hasher.Hash(input.Secret)
		if err != nil {
			return err
		}

		created, err = r.Create(ctx, domain.User{
			Name:       normalizeName(input.Name),
			LastNames:  normalizeName(input.LastNames),
			Email:      input.Email,
			SecretHash: &hash,
			Phone:      input.Phone,
			Address:    input.Address,
			Role:       input.Role,
			Active:     *input.Active,
		})
		return err
	})
	if err != nil {
		return nil, typed("register", err)
	}

	us.publish(created, http.MethodPost)
	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return created, nil
}

func (us *UserService) FindByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchByUUID(ctx, uuid)
	if err != nil {
		return nil, typed("find by uuid", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, typed("find by email", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	u, err := us.userRepository.FetchByPhone(ctx, phone)
	if err != nil {
		return nil, typed("find by phone", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) FindByName(ctx context.Context, name string) (domain.Users, error) {
	users, err := us.userRepository.FetchByName(ctx, normalizeName(name))
	if err != nil {
		return nil, typed("find by name", err)
	}

	return users, nil
}

func (us *UserService) FindByStatus(ctx context.Context, active bool) (domain.Users, error) {
	users, err := us.userRepository.FetchByStatus(ctx, active)
	if err != nil {
		return nil, typed("find by status", err)
	}

	return users, nil
}

func (us *UserService) FindAll(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchAll(ctx)
	if err != nil {
		return nil, typed("find all", err)
	}

	return users, nil
}

// Update merges the replacement into the existing record. Email and uuid are
// immutable through this path; the phone is adopted only when it is supplied,
// differs from the current one and no other record owns it; a blank secret
// preserves the stored hash.
func (us *UserService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update) (*domain.User, error) {
	var updated *domain.User
	err := us.userRepository.InTx(ctx, func(r domain.Repository) error {
		existing, err := r.FetchByUUID(ctx, uuid)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		existing.Name = normalizeName(upd.Name)
		existing.LastNames = normalizeName(upd.LastNames)
		existing.Address = upd.Address
		existing.Role = upd.Role

		if upd.Phone != "" && upd.Phone != existing.Phone {
			owner, err := r.FetchByPhone(ctx, upd.Phone)
			if err != nil {
				return err
			}
			if owner != nil {
				return domain.NewLogicError("update", domain.ErrPhoneInUse)
			}
			existing.Phone = upd.Phone
		}

		if strings.TrimSpace(upd.Secret) != "" {
			hash, err := us.hasher.Hash(upd.Secret)
			if err != nil {
				return err
			}
			existing.SecretHash = &hash
		}

		updated, err = r.Update(ctx, *existing)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, typed("update", err)
	}

	us.publish(updated, http.MethodPut)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return updated, nil
}

// Replace rebuilds the record from a registration-shaped input, preserving
// the uuid and, when the input carries no new secret, the stored hash.
func (us *UserService) Replace(ctx context.Context, uuid domain.UUID, input domain.Registration) (*domain.User, error) {
	input.ApplyDefaults()

	var updated *domain.User
	err := us.userRepository.InTx(ctx, func(r domain.Repository) error {
		existing, err := r.FetchByUUID(ctx, uuid)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		if input.Email != existing.Email {
			owner, err := r.FetchByEmail(ctx, input.Email)
			if err != nil {
				return err
			}
			if owner != nil {
				return domain.ErrAlreadyExists
			}
		}

		rebuilt := domain.User{
			UUID:       existing.UUID,
			Name:       normalizeName(input.Name),
			LastNames:  normalizeName(input.LastNames),
			Email:      input.Email,
			SecretHash: existing.SecretHash,
			Phone:      input.Phone,
			Address:    input.Address,
			Role:       input.Role,
			Active:     *input.Active,
			CreatedAt:  existing.CreatedAt,
		}
		if strings.TrimSpace(input.Secret) != "" {
			hash, err := us.hasher.Hash(input.Secret)
			if err != nil {
				return err
			}
			rebuilt.SecretHash = &hash
		}

		updated, err = r.Update(ctx, rebuilt)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, typed("replace", err)
	}

	us.publish(updated, http.MethodPut)
	us.mCounter.WithLabelValues("user_replaced_total").Inc()

	return updated, nil
}

func (us *UserService) Delete(ctx context.Context, uuid domain.UUID) error {
	deleted, err := us.userRepository.Delete(ctx, uuid)
	if err != nil {
		return typed("delete", err)
	}
	if deleted == nil {
		return domain.ErrNotFound
	}

	us.publish(deleted, http.MethodDelete)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) SetStatus(ctx context.Context, uuid domain.UUID, active bool) (*domain.User, error) {
	var updated *domain.User
	err := us.userRepository.InTx(ctx, func(r domain.Repository) error {
		existing, err := r.FetchByUUID(ctx, uuid)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}

		existing.Active = active
		updated, err = r.Update(ctx, *existing)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, typed("set status", err)
	}

	us.publish(updated, http.MethodPatch)
	us.mCounter.WithLabelValues("user_status_changed_total").Inc()

	return updated, nil
}

// Authenticate deliberately reports one failure kind for both an unknown
// email and a failed verify, so callers cannot enumerate accounts.
func (us *UserService) Authenticate(ctx context.Context, email, secret string) (*domain.User, error) {
	u, err := us.userRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, typed("authenticate", err)
	}
	if u == nil || u.SecretHash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !us.hasher.Verify(secret, *u.SecretHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return u, nil
}

func (us *UserService) publish(u *domain.User, method string) {
	if u == nil {
		return
	}
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  u.UUID.String(),
		Payload: user.ToResponseUser(*u),
	}
}

// normalizeName folds names to a canonical form (NFC, combining marks
// stripped) so lookups match regardless of how the client composed accents.
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	return s
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
