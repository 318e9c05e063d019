package lib

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is the pluggable password-verification capability. Make
// produces a self-describing verifier that Verify can check without any
// external state; the engine stores only the verifier. Implementations must
// never expose a reversible operation.
type Credentials interface {
	Make(plaintext string) (string, error)
	Verify(stored, candidate string) bool
}

// BcryptCredentials is the production Credentials implementation. A bcrypt
// hash embeds its own salt and cost, so the stored string alone is enough to
// verify a candidate password.
type BcryptCredentials struct {
	Cost int
}

// NewBcryptCredentials returns a BcryptCredentials with the library default cost.
func NewBcryptCredentials() *BcryptCredentials {
	return &BcryptCredentials{Cost: bcrypt.DefaultCost}
}

func (c *BcryptCredentials) Make(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.Cost)
	if err != nil {
		return "", errors.Wrap(err, "hashing password")
	}
	return string(hash), nil
}

func (c *BcryptCredentials) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
