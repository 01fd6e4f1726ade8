package middleware

import (
	"github.com/andriwidianto/securewatch/store"
	"github.com/gin-gonic/gin"
)

const storeContextKey = "store"

// StoreMiddleware injects the storage backend into the request context so
// handlers never touch package-level state. Tests construct an isolated
// store per router.
func StoreMiddleware(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeContextKey, s)
		c.Next()
	}
}

// GetStore returns the store injected by StoreMiddleware, or nil when the
// middleware was not installed.
func GetStore(c *gin.Context) store.Store {
	v, ok := c.Get(storeContextKey)
	if !ok {
		return nil
	}
	s, _ := v.(store.Store)
	return s
}
