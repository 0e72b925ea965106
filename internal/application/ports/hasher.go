package ports

// PasswordHasher is the one-way credential collaborator. The service never
// stores or logs a plaintext secret beyond the single call into it.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
