package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffee-directory/internal/data/entity"

	"coffee-directory/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

const testSecret = "test-secret"

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func bearerToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	token, _, err := utils.GenerateToken(userID, role, utils.JWTConfig{Secret: testSecret, ExpiryDays: 7})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthenticate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing header", func(t *testing.T) {
		var called bool
		handler := Authenticate(testSecret, logger)(okHandler(&called))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("malformed header", func(t *testing.T) {
		var called bool
		handler := Authenticate(testSecret, logger)(okHandler(&called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("invalid token", func(t *testing.T) {
		var called bool
		handler := Authenticate(testSecret, logger)(okHandler(&called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("valid token injects identity", func(t *testing.T) {
		userID := uuid.New()
		var gotID uuid.UUID
		var gotRole string
		handler := Authenticate(testSecret, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = utils.GetUserIDFromContext(r.Context())
			gotRole, _ = utils.GetRoleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", bearerToken(t, userID, "manager"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "manager", gotRole)
	})
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()

	newUser := func(role entity.UserRole) (*stubUserRepo, *entity.User) {
		user := &entity.User{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Username:   "someone",
			Role:       role,
		}
		return &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}, user
	}

	serve := func(repo *stubUserRepo, user *entity.User, allowed ...entity.UserRole) (*httptest.ResponseRecorder, *bool) {
		var called bool
		chain := Authenticate(testSecret, logger)(
			RequireRole(repo, logger, allowed...)(okHandler(&called)))

		req := httptest.NewRequest(http.MethodPost, "/shops", nil)
		req.Header.Set("Authorization", bearerToken(t, user.ID, string(user.Role)))
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		return rec, &called
	}

	t.Run("insufficient role is forbidden", func(t *testing.T) {
		repo, user := newUser(entity.RoleUser)
		rec, called := serve(repo, user, entity.RoleManager, entity.RoleAdmin)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, *called)
	})

	t.Run("manager passes manager gate", func(t *testing.T) {
		repo, user := newUser(entity.RoleManager)
		rec, called := serve(repo, user, entity.RoleManager, entity.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("admin passes manager gate", func(t *testing.T) {
		repo, user := newUser(entity.RoleAdmin)
		rec, called := serve(repo, user, entity.RoleManager, entity.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	})

	t.Run("deleted user is forbidden even with valid token", func(t *testing.T) {
		repo, user := newUser(entity.RoleAdmin)
		delete(repo.users, user.ID)
		rec, called := serve(repo, user, entity.RoleAdmin)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, *called)
	})

	t.Run("role comes from the store, not the token", func(t *testing.T) {
		// Token claims admin, store says plain user
		repo, user := newUser(entity.RoleUser)
		var called bool
		chain := Authenticate(testSecret, logger)(
			RequireRole(repo, logger, entity.RoleAdmin)(okHandler(&called)))

		req := httptest.NewRequest(http.MethodPost, "/shops", nil)
		req.Header.Set("Authorization", bearerToken(t, user.ID, "admin"))
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})
}
