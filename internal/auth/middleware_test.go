package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/auth"
	"github.com/emberdate/ember-backend/internal/common/utils"
)

const testSecret = "test-secret"

func authedRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got uuid.UUID
	handler := auth.NewMiddleware(testSecret).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.UserID(r.Context())
		if err != nil {
			t.Fatalf("UserID: %v", err)
		}
		got = id
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, token))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got != userID {
		t.Errorf("context user = %v, want %v", got, userID)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	userID := uuid.New()
	wrongSecret, err := utils.GenerateToken(userID, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, err := utils.GenerateToken(userID, testSecret, -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"malformed token", "not-a-token"},
		{"wrong secret", wrongSecret},
		{"expired token", expired},
	}
	for _, tc := range tests {
		handler := auth.NewMiddleware(testSecret).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("%s: handler should not run", tc.name)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(t, tc.token))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := auth.UserID(req.Context()); err == nil {
		t.Error("expected an error for a context without a user")
	}
}
