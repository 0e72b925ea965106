package user

import (
	"github.com/google/uuid"
)

// User is the outward representation. The stored secret hash has no field
// here on purpose; it never leaves the service.
type (
	User struct {
		UUID      uuid.UUID `json:"uuid"`
		Name      string    `json:"name"`
		LastNames string    `json:"last_names,omitempty"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone,omitempty"`
		Address   string    `json:"address,omitempty"`
		Role      string    `json:"role"`
		Active    bool      `json:"active"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
