package endpoint

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andriwidianto/securewatch/middleware"
	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/store"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

// newTestStore creates an isolated store with a low hashing work factor and
// the two default accounts seeded.
func newTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	util.SetJWTSecret("test-secret-123")
	s := store.NewMemoryStoreWithParams(util.Argon2Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	if err := store.SeedDefaultUsers(s); err != nil {
		t.Fatalf("failed to seed default users: %v", err)
	}
	return s
}

// newAPIRouter mirrors the production route table. The login rate limiter
// is left out so repeated login tests cannot trip it.
func newAPIRouter(s *store.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StoreMiddleware(s))
	r.NoRoute(func(c *gin.Context) {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Not found",
			Err: fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
		})
	})

	api := r.Group("/api")
	api.POST("/auth/login", Login)

	authed := api.Group("", middleware.Authentication())
	authed.POST("/auth/logout", Logout)
	authed.GET("/auth/me", Me)
	authed.GET("/dashboard/metrics", DashboardMetrics)
	authed.GET("/activity-logs", ListActivityLogs)
	authed.GET("/security-events", ListSecurityEvents)

	admin := authed.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/security-events/unresolved", ListUnresolvedSecurityEvents)
	admin.GET("/admin/users", ListUsers)

	return r
}

type requestSpec struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

func performRequest(t *testing.T, r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	setJSONHeader := false
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(spec.body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(spec.method, spec.path, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
		}
	}
	return w, response
}

// loginAs logs a seeded account in and returns its bearer token.
func loginAs(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w, response := performRequest(t, r, requestSpec{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   LoginRequest{Username: username, Password: password},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login as %s failed with status %d: %s", username, w.Code, w.Body.String())
	}
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
