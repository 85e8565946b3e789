package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-crm/internal/api/middleware"
	"github.com/feral-file/ff-crm/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testKeys struct {
	private   *rsa.PrivateKey
	publicPEM string
}

func newTestKeys(t *testing.T) testKeys {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return testKeys{
		private:   priv,
		publicPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func (k testKeys) sign(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.private)
	require.NoError(t, err)
	return token
}

// newAuthRouter echoes the resolved actor id, or "anonymous"
func newAuthRouter(a *middleware.Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Auth(a))
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := auth.FromContext(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, actor.ID)
	})
	return r
}

func TestAuth(t *testing.T) {
	keys := newTestKeys(t)
	otherKeys := newTestKeys(t)
	now := time.Now()

	valid := keys.sign(t, jwt.RegisteredClaims{
		Subject:   "user-a",
		Issuer:    "ff-crm",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header is anonymous", header: "", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-a"},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-a"},
		{name: "malformed header", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{
			name: "expired token",
			header: "Bearer " + keys.sign(t, jwt.RegisteredClaims{
				Subject:   "user-a",
				Issuer:    "ff-crm",
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key",
			header:     "Bearer " + otherKeys.sign(t, jwt.RegisteredClaims{Subject: "user-a", Issuer: "ff-crm"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			header:     "Bearer " + keys.sign(t, jwt.RegisteredClaims{Subject: "user-a", Issuer: "someone-else"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing subject",
			header:     "Bearer " + keys.sign(t, jwt.RegisteredClaims{Issuer: "ff-crm"}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	router := newAuthRouter(middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: keys.publicPEM,
		Issuer:       "ff-crm",
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}

func TestAuth_RejectsHMACToken(t *testing.T) {
	keys := newTestKeys(t)
	router := newAuthRouter(middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: keys.publicPEM}))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-a"}).
		SignedString([]byte(keys.publicPEM))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_NoKeyConfigured(t *testing.T) {
	keys := newTestKeys(t)
	a := middleware.NewAuthenticator(middleware.AuthConfig{})

	anon := a.Authenticate("")
	assert.True(t, anon.Anonymous)
	assert.NoError(t, anon.Error)

	result := a.Authenticate("Bearer " + keys.sign(t, jwt.RegisteredClaims{Subject: "user-a"}))
	assert.EqualError(t, result.Error, "JWT public key not configured")
}

func TestAuth_PKCS1Key(t *testing.T) {
	keys := newTestKeys(t)
	pkcs1 := string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(&keys.private.PublicKey),
	}))

	a := middleware.NewAuthenticator(middleware.AuthConfig{JWTPublicKey: pkcs1})
	result := a.Authenticate("Bearer " + keys.sign(t, jwt.RegisteredClaims{Subject: "user-b"}))

	require.NoError(t, result.Error)
	assert.Equal(t, "user-b", result.Actor.ID)
}
