package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/interface/api/rest/dto/auth"
	"user-records-api/internal/interface/api/rest/dto/user"
)

const (
	minSecretLen = 8
	maxSecretLen = 72 // bcrypt safe
)

var phoneRe = regexp.MustCompile(`^\d{11}$`)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ParseStatus(s string) (bool, error) {
	return strconv.ParseBool(s)
}

// ValidateRegistration covers the syntactic checks for the registration
// shape. The replace endpoint reuses it with secretRequired=false, where a
// blank secret keeps the stored hash.
func ValidateRegistration(r user.Request, secretRequired bool) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	phone := strings.TrimSpace(r.Phone)

	if name == "" {
		errs["name"] = "name is required"
	}

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if r.Secret == "" {
		if secretRequired {
			errs["secret"] = "secret is required"
		}
	} else if l := utf8.RuneCountInString(r.Secret); l < minSecretLen || l > maxSecretLen {
		errs["secret"] = "secret length must be 8-72 characters"
	}

	if phone != "" && !phoneRe.MatchString(phone) {
		errs["phone"] = "phone must be exactly 11 digits"
	}

	if r.Role != "" && !domain.Role(r.Role).Valid() {
		errs["role"] = "role must be one of ADMIN, EMPLOYEE, USER"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateUpdate(r user.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	phone := strings.TrimSpace(r.Phone)

	if name == "" {
		errs["name"] = "name is required"
	}

	if phone != "" && !phoneRe.MatchString(phone) {
		errs["phone"] = "phone must be exactly 11 digits"
	}

	if r.Role == "" {
		errs["role"] = "role is required"
	} else if !domain.Role(r.Role).Valid() {
		errs["role"] = "role must be one of ADMIN, EMPLOYEE, USER"
	}

	if r.Secret != "" {
		if l := utf8.RuneCountInString(r.Secret); l < minSecretLen || l > maxSecretLen {
			errs["secret"] = "secret length must be 8-72 characters"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.TrimSpace(r.Email)

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Secret) == "" {
		errs["secret"] = "secret is required"
	} else if l := utf8.RuneCountInString(r.Secret); l < minSecretLen || l > maxSecretLen {
		errs["secret"] = "secret length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
