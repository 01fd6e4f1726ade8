package util

import "sync"

// DevJWTSecret is the development fallback signing secret. Shipping it to
// production is an operational error; config.LoadConfig warns loudly when
// it ends up in use outside development.
const DevJWTSecret = "your-super-secret-jwt-key"

var (
	jwtSecretByte = []byte(DevJWTSecret)
	jwtMutex      sync.RWMutex
)

// SetJWTSecret updates the secret used for token signing and verification.
// Thread-safe; called once from main after config load and from tests.
func SetJWTSecret(secret string) {
	jwtMutex.Lock()
	defer jwtMutex.Unlock()
	jwtSecretByte = []byte(secret)
}

// GetJWTSecretByte returns a copy of the current signing secret bytes.
func GetJWTSecretByte() []byte {
	jwtMutex.RLock()
	defer jwtMutex.RUnlock()
	return append([]byte(nil), jwtSecretByte...)
}
