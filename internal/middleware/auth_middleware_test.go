package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vet_service/internal/config"
	"vet_service/internal/cookie"
	"vet_service/internal/jwt_service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

// черный список на карте для тестов охранника
type fakeBlackList struct {
	revoked map[string]bool
}

func (f *fakeBlackList) AddToBlacklist(ctx context.Context, tokenJTI string, ttl time.Duration) error {
	f.revoked[tokenJTI] = true
	return nil
}

func (f *fakeBlackList) IsBlacklisted(ctx context.Context, tokenJTI string) (bool, error) {
	return f.revoked[tokenJTI], nil
}

func newGuardedRouter(t *testing.T, jwtSvc *jwt_service.JWTService, blackList *fakeBlackList) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cookies := cookie.NewManager(config.CookieManagerConfig{
		SameSite:    "strict",
		DefaultPath: "/",
	})

	router := gin.New()
	var guard gin.HandlerFunc
	if blackList != nil {
		guard = AuthMiddleware(jwtSvc, cookies, blackList)
	} else {
		guard = AuthMiddleware(jwtSvc, cookies, nil)
	}

	router.GET("/protected", guard, func(c *gin.Context) {
		claims, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing after guard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"email":      claims.Email,
			"authHeader": c.GetHeader("Authorization"),
		})
	})
	return router
}

func signToken(t *testing.T, svc *jwt_service.JWTService, exp time.Duration) string {
	t.Helper()
	claims := jwt_service.NewClaims(exp, 7, "cliente@vet.com", "3110000000", "Av. Siempreviva 742", "vet_service")
	token, err := svc.GenerateToken(claims)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := jwt_service.NewJWTService(&jwt_service.JWTConfig{
		Secret:   testSecret,
		TokenExp: 12 * time.Hour,
		Issuer:   "vet_service",
	})

	t.Run("без куки и заголовка - 401", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "credentials not found")
	})

	t.Run("валидный токен в куке - 200", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		token := signToken(t, jwtSvc, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: token})

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cliente@vet.com")
		// охранник переписывает заголовок в форму Bearer для нижестоящих слоёв
		assert.Contains(t, w.Body.String(), "Bearer "+token)
	})

	t.Run("валидный сырой токен в заголовке - 200", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		token := signToken(t, jwtSvc, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("просроченный токен - 401", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		token := signToken(t, jwtSvc, -time.Minute)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: token})

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		// конкретная причина наружу не утекает
		assert.NotContains(t, w.Body.String(), "expired")
	})

	t.Run("токен с чужой подписью - 401", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		other := jwt_service.NewJWTService(&jwt_service.JWTConfig{
			Secret:   "some-other-secret-key-fedcba987654321000",
			TokenExp: 12 * time.Hour,
			Issuer:   "vet_service",
		})
		token := signToken(t, other, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: token})

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("мусор вместо токена - 401", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "definitely-not-a-jwt")

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("отозванный токен - 401", func(t *testing.T) {
		blackList := &fakeBlackList{revoked: map[string]bool{}}
		router := newGuardedRouter(t, jwtSvc, blackList)

		token := signToken(t, jwtSvc, time.Hour)
		claims, err := jwtSvc.VerifyToken(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		blackList.revoked[claims.ID] = true

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: token})

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("кука имеет приоритет над заголовком", func(t *testing.T) {
		router := newGuardedRouter(t, jwtSvc, nil)
		token := signToken(t, jwtSvc, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: token})
		req.Header.Set("Authorization", "garbage-header-value")

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
