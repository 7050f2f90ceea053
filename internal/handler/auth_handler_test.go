package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bloghub/blog-service/internal/cqrs"
	"github.com/bloghub/blog-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ---- mock implementations ----

type mockAuthCommander struct {
	registerFn func(cqrs.RegisterCommand) (*models.User, string, error)
}

func (m *mockAuthCommander) Register(cmd cqrs.RegisterCommand) (*models.User, string, error) {
	if m.registerFn != nil {
		return m.registerFn(cmd)
	}
	return nil, "", fmt.Errorf("not configured")
}

type mockAuthQuerier struct {
	loginFn   func(cqrs.LoginCommand) (*models.User, string, error)
	refreshFn func(cqrs.RefreshTokenCommand) (*models.User, string, error)
}

func (m *mockAuthQuerier) Login(cmd cqrs.LoginCommand) (*models.User, string, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return nil, "", fmt.Errorf("not configured")
}
func (m *mockAuthQuerier) RefreshToken(cmd cqrs.RefreshTokenCommand) (*models.User, string, error) {
	if m.refreshFn != nil {
		return m.refreshFn(cmd)
	}
	return nil, "", fmt.Errorf("not configured")
}

// ---- helpers ----

func newAuthTestRouter(cmds AuthCommander, qrys AuthQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cmds, qrys)
	api := r.Group("/api/auth")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/refresh", h.RefreshToken)
	return r
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var aTestUser = &models.User{ID: "usr-001", Email: "alice@example.com", Name: "Alice"}

// ---- tests ----

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		registerFn     func(cqrs.RegisterCommand) (*models.User, string, error)
		expectedStatus int
	}{
		{
			name: "success - registers new user",
			body: map[string]string{"email": "alice@example.com", "password": "pw", "name": "Alice"},
			registerFn: func(cmd cqrs.RegisterCommand) (*models.User, string, error) {
				return aTestUser, "tok-abc", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad request - duplicate email",
			body: map[string]string{"email": "alice@example.com", "password": "pw", "name": "Alice"},
			registerFn: func(cmd cqrs.RegisterCommand) (*models.User, string, error) {
				return nil, "", fmt.Errorf("email already exists")
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid email format",
			body:           map[string]string{"email": "not-valid", "password": "pw"},
			registerFn:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]string{"email": "alice@example.com"},
			registerFn:     nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthCommander{registerFn: tt.registerFn}, &mockAuthQuerier{})
			w := doRequest(router, http.MethodPost, "/api/auth/register", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected status %d, got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp AuthResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Token != "tok-abc" || resp.Email != "alice@example.com" || resp.Name != "Alice" {
					t.Errorf("unexpected response: %+v", resp)
				}
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(cqrs.LoginCommand) (*models.User, string, error)
		expectedStatus int
	}{
		{
			name: "success - valid credentials",
			body: map[string]string{"email": "alice@example.com", "password": "pw"},
			loginFn: func(cmd cqrs.LoginCommand) (*models.User, string, error) {
				return aTestUser, "tok-abc", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad request - wrong password",
			body: map[string]string{"email": "alice@example.com", "password": "wrong"},
			loginFn: func(cmd cqrs.LoginCommand) (*models.User, string, error) {
				return nil, "", fmt.Errorf("invalid credentials")
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing fields",
			body:           map[string]string{},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthCommander{}, &mockAuthQuerier{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/api/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected status %d, got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
