package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleUser     Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleUser:
		return true
	}
	return false
}

type (
	UUID = uuid.UUID
	User struct {
		UUID       UUID
		Name       string
		LastNames  string
		Email      string
		SecretHash *string
		Phone      string
		Address    string
		Role       Role
		Active     bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

// Registration is the inbound shape shared by Register and Replace.
// Secret is plaintext and must never reach the store as-is.
type Registration struct {
	Name      string
	LastNames string
	Email     string
	Secret    string
	Phone     string
	Address   string
	Role      Role
	Active    *bool
}

// Update is the merge-style replacement shape. It deliberately carries no
// uuid, email or hash so identity fields cannot come from untrusted input.
type Update struct {
	Name      string
	LastNames string
	Phone     string
	Address   string
	Role      Role
	Secret    string
}

// ApplyDefaults fills omitted optional fields, once, at the service boundary.
func (r *Registration) ApplyDefaults() {
	if r.Role == "" {
		r.Role = RoleUser
	}
	if r.Active == nil {
		active := true
		r.Active = &active
	}
}
