package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tablebook/config"
	"tablebook/infras/jwt"
	jwtMocks "tablebook/infras/jwt/mocks"
	"tablebook/infras/otel/mocks"
	userMocks "tablebook/internal/domains/user/mocks"
	"tablebook/internal/domains/user/model/dto"
	"tablebook/permissions"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/transport/http/middleware"
)

const testPermissions = `{
  "endpoints": [
    { "path": "/v1/restaurants", "method": "GET", "skip": true },
    { "path": "/v1/restaurants", "method": "POST", "permissions": ["admin"] },
    { "path": "/v1/reservations/{id}", "method": "DELETE", "permissions": ["admin", "user"] }
  ]
}`

type authFixture struct {
	jwt    *jwtMocks.MockJWT
	users  *userMocks.MockUserService
	router chi.Router
	caller *gDto.Caller
}

func newAuthFixture(t *testing.T, apiKey string) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	perms, err := permissions.Parse([]byte(testPermissions))
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	f := &authFixture{
		jwt:    jwtMocks.NewMockJWT(ctrl),
		users:  userMocks.NewMockUserService(ctrl),
		router: chi.NewRouter(),
	}

	authRole := middleware.NewAuthRoleMiddleware(f.jwt, f.users, mocks.NewOtel(), perms, cfg)

	record := func(w http.ResponseWriter, r *http.Request) {
		caller := gDto.CallerFromContext(r.Context())
		f.caller = &caller

		w.WriteHeader(http.StatusOK)
	}

	f.router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Get("/restaurants", record)
		r.Post("/restaurants", record)
		r.Delete("/reservations/{id}", record)
	})

	return f
}

func (f *authFixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{constant.RequestHeaderAuthorization: "Bearer " + token}
}

func TestAuth_PublicRouteNeedsNoToken(t *testing.T) {
	f := newAuthFixture(t, "")

	rec := f.do(http.MethodGet, "/v1/restaurants", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, f.caller.Authenticated())
}

func TestAuth_MissingTokenIsUnauthorized(t *testing.T) {
	f := newAuthFixture(t, "")

	rec := f.do(http.MethodDelete, "/v1/reservations/r-1", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing authorization header")
	assert.Nil(t, f.caller)
}

func TestAuth_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "stale").Return(nil, jwt.ErrExpiredToken)

	rec := f.do(http.MethodDelete, "/v1/reservations/r-1", bearer("stale"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestAuth_DeletedUserIsUnauthorized(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "tok").Return(&jwt.Claims{UserID: "u-gone"}, nil)
	f.users.EXPECT().Identity(gomock.Any(), "u-gone").Return(dto.UserResponse{}, failure.Unauthorized("User no longer exists"))

	rec := f.do(http.MethodDelete, "/v1/reservations/r-1", bearer("tok"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_IdentityStoreFailureIsHidden(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "tok").Return(&jwt.Claims{UserID: "u-1"}, nil)
	f.users.EXPECT().Identity(gomock.Any(), "u-1").Return(dto.UserResponse{}, errors.New("connection refused"))

	rec := f.do(http.MethodDelete, "/v1/reservations/r-1", bearer("tok"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuth_UserReachesUserRoute(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "tok").Return(&jwt.Claims{UserID: "u-1", TokenID: "t-1"}, nil)
	f.users.EXPECT().Identity(gomock.Any(), "u-1").Return(dto.UserResponse{ID: "u-1", Role: constant.RoleUser}, nil)

	rec := f.do(http.MethodDelete, "/v1/reservations/r-1", bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gDto.Caller{UserID: "u-1"}, *f.caller)
}

func TestRBAC_UserOnAdminRouteIsForbidden(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "tok").Return(&jwt.Claims{UserID: "u-1"}, nil)
	f.users.EXPECT().Identity(gomock.Any(), "u-1").Return(dto.UserResponse{ID: "u-1", Role: constant.RoleUser}, nil)

	rec := f.do(http.MethodPost, "/v1/restaurants", bearer("tok"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, f.caller)
}

func TestRBAC_AdminOnAdminRoute(t *testing.T) {
	f := newAuthFixture(t, "")
	f.jwt.EXPECT().ValidateToken(gomock.Any(), "tok").Return(&jwt.Claims{UserID: "a-1"}, nil)
	f.users.EXPECT().Identity(gomock.Any(), "a-1").Return(dto.UserResponse{ID: "a-1", Role: constant.RoleAdmin}, nil)

	rec := f.do(http.MethodPost, "/v1/restaurants", bearer("tok"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.caller.IsAdmin)
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key acts as admin", func(t *testing.T) {
		f := newAuthFixture(t, "secret")

		rec := f.do(http.MethodPost, "/v1/restaurants", map[string]string{constant.RequestHeaderAPIKey: "secret"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, f.caller.IsAdmin)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		f := newAuthFixture(t, "secret")

		rec := f.do(http.MethodPost, "/v1/restaurants", map[string]string{constant.RequestHeaderAPIKey: "guess"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no configured key rejects any key", func(t *testing.T) {
		f := newAuthFixture(t, "")

		rec := f.do(http.MethodGet, "/v1/restaurants", map[string]string{constant.RequestHeaderAPIKey: "anything"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
