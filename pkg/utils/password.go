package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher turns a password into a stored credential and checks it later.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashedPassword string) (bool, error)
}

// Argon2Params controls the cost of an Argon2id hash.
type Argon2Params struct {
	Time        uint32
	Memory      uint32
	Parallelism uint8
	SaltLength  int
	KeyLength   uint32
}

// DefaultArgon2Params are the production parameters (m=65536,t=3,p=2).
var DefaultArgon2Params = Argon2Params{
	Time:        3,
	Memory:      64 * 1024,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

var ErrInvalidHash = errors.New("invalid hash format")

// Argon2Hasher hashes passwords with Argon2id and encodes them in PHC format.
type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

// Hash hashes a password using Argon2id
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	// Format: $argon2id$v=19$m=65536,t=3,p=2$salt$hash
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify verifies a password against a hash. The cost parameters are read
// from the hash itself, so hashes made with other parameters still verify.
func (h *Argon2Hasher) Verify(password, hashedPassword string) (bool, error) {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var memory, time uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, err
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, err
	}

	computedHash := argon2.IDKey([]byte(password), salt, time, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(computedHash, hash) == 1, nil
}
