package hash

import (
	"golang.org/x/crypto/bcrypt"

	"user-records-api/internal/application/ports"
)

// Bcrypt implements the one-way credential hasher on bcrypt. Plaintext over
// 72 bytes is rejected by the library itself; the rest validator caps secret
// length accordingly.
type Bcrypt struct {
	cost int
}

func NewBcrypt() ports.PasswordHasher {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

func (b *Bcrypt) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
