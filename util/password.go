package util

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params tunes the password hashing work factor. The salt is generated
// per hash and embedded in the digest, so verification needs no state beyond
// the digest itself.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follows the OWASP password storage recommendations.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

var ErrInvalidHashFormat = errors.New("invalid password hash format")

// HashPassword hashes a plaintext password with Argon2id and the default
// parameters, returning an encoded digest of the form
// argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
func HashPassword(plaintext string) (string, error) {
	return HashPasswordWithParams(plaintext, DefaultArgon2Params())
}

// HashPasswordWithParams is HashPassword with an explicit work factor.
func HashPasswordWithParams(plaintext string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(plaintext), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	encoded := fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory,
		p.Iterations,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
	return encoded, nil
}

// VerifyPassword recomputes the digest for plaintext using the parameters
// and salt embedded in encoded and compares in constant time.
func VerifyPassword(plaintext, encoded string) (bool, error) {
	params, salt, hash, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(plaintext), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return params, nil, nil, ErrInvalidHashFormat
	}
	if parts[0] != "argon2id" {
		return params, nil, nil, fmt.Errorf("unsupported hash algorithm %q", parts[0])
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("invalid version segment: %w", err)
	}

	var parallelism int
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("invalid parameter segment: %w", err)
	}
	params.Parallelism = uint8(parallelism)

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return params, nil, nil, fmt.Errorf("invalid salt encoding: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("invalid hash encoding: %w", err)
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(hash))
	return params, salt, hash, nil
}
