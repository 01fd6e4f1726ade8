package util

import (
	"strings"
	"testing"
)

// lightParams keeps hashing fast in tests without changing the digest shape.
func lightParams() Argon2Params {
	return Argon2Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPasswordWithParams("testPassword123", lightParams())
	if err != nil {
		t.Fatalf("HashPasswordWithParams failed: %v", err)
	}

	if !strings.HasPrefix(hash, "argon2id$") {
		t.Errorf("digest should start with argon2id$, got %q", hash)
	}
	if !strings.Contains(hash, "$v=19$") {
		t.Errorf("digest should embed argon2 version 19, got %q", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 5 {
		t.Errorf("digest should have 5 segments, got %d", len(parts))
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "admin123"},
		{name: "empty password", password: ""},
		{name: "unicode password", password: "pässwörd-日本語"},
		{name: "long password", password: strings.Repeat("x", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPasswordWithParams(tt.password, lightParams())
			if err != nil {
				t.Fatalf("hash failed: %v", err)
			}

			match, err := VerifyPassword(tt.password, hash)
			if err != nil {
				t.Fatalf("verify failed: %v", err)
			}
			if !match {
				t.Error("correct password should verify")
			}

			match, err = VerifyPassword(tt.password+"x", hash)
			if err != nil {
				t.Fatalf("verify failed: %v", err)
			}
			if match {
				t.Error("wrong password should not verify")
			}
		})
	}
}

func TestHashPasswordDefaultParams(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	// Default work factor embeds into the digest.
	if !strings.Contains(hash, "$m=65536,t=3,p=2$") {
		t.Errorf("digest should carry the default parameters, got %q", hash)
	}
	match, err := VerifyPassword("admin123", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !match {
		t.Error("correct password should verify against default-params digest")
	}
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPasswordWithParams("samePassword", lightParams())
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPasswordWithParams("samePassword", lightParams())
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a digest", encoded: "plaintext"},
		{name: "wrong algorithm", encoded: "bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", encoded: "argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA"},
		{name: "missing segments", encoded: "argon2id$v=19$m=1024,t=1,p=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyPassword("whatever", tt.encoded); err == nil {
				t.Errorf("expected error for malformed digest %q", tt.encoded)
			}
		})
	}
}
