// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"messenger/config"
	"messenger/internal/domain/service"
	"messenger/internal/errors"

	"golang.org/x/crypto/argon2"
)

// ErrEmptyPassword is returned by Hash for an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// argon2Hasher implements service.PasswordHasher with Argon2id.
// The verifier is std base64 of salt‖hash, so its length is fixed by the parameters.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher builds the hasher from the passwordHash section of the config.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	p := cfg.PasswordHash

	return &argon2Hasher{
		memory:      p.Memory,
		iterations:  p.Iterations,
		parallelism: p.Parallelism,
		saltLength:  p.SaltLength,
		keyLength:   p.KeyLength,
	}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := h.derive(password, salt)

	blob := make([]byte, 0, len(salt)+len(key))
	blob = append(blob, salt...)
	blob = append(blob, key...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (h *argon2Hasher) Verify(password, verifier string) bool {
	blob, err := base64.StdEncoding.DecodeString(verifier)
	if err != nil {
		return false
	}
	if len(blob) != int(h.saltLength+h.keyLength) {
		return false
	}

	salt, stored := blob[:h.saltLength], blob[h.saltLength:]

	return subtle.ConstantTimeCompare(h.derive(password, salt), stored) == 1
}

func (h *argon2Hasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)
}
