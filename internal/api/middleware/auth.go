package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-crm/internal/api/shared/errors"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	JWT_CLAIMS_KEY contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	Issuer       string // expected iss claim, unchecked when empty
	Leeway       time.Duration
}

// AuthResult holds the result of authentication
type AuthResult struct {
	// Anonymous is set when no credentials were presented
	Anonymous bool
	Actor     auth.Actor
	Claims    *jwt.RegisteredClaims
	Error     error
}

// Authenticator validates bearer tokens against a fixed RSA key
type Authenticator struct {
	cfg       AuthConfig
	publicKey *rsa.PublicKey
	keyErr    error
}

// NewAuthenticator parses the configured public key once.
// A missing or broken key rejects every bearer token but still serves anonymous callers.
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{cfg: cfg}
	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
		return a
	}
	a.publicKey, a.keyErr = parseRSAPublicKey(cfg.JWTPublicKey)
	if a.keyErr != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", a.keyErr)
	}
	return a
}

// Authenticate resolves the Authorization header into an actor
func (a *Authenticator) Authenticate(authHeader string) AuthResult {
	if strings.TrimSpace(authHeader) == "" {
		return AuthResult{Anonymous: true}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return AuthResult{Error: errors.New("invalid Authorization header format")}
	}

	if authType := strings.ToLower(parts[0]); authType != "bearer" {
		return AuthResult{Error: fmt.Errorf("unsupported authorization type: %s", authType)}
	}

	claims, err := a.validateJWT(strings.TrimSpace(parts[1]))
	if err != nil {
		return AuthResult{Error: err}
	}

	return AuthResult{
		Actor:  auth.Actor{ID: claims.Subject},
		Claims: claims,
	}
}

// Auth returns a gin middleware resolving the calling actor.
// Requests without credentials continue anonymously; invalid credentials are rejected.
func Auth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := a.Authenticate(c.GetHeader("Authorization"))

		if result.Error != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		if result.Anonymous {
			c.Next()
			return
		}

		ctx := auth.WithActor(c.Request.Context(), result.Actor)
		ctx = logger.WithFields(ctx, zap.String("actor_id", result.Actor.ID))
		c.Request = c.Request.WithContext(ctx)
		c.Set(JWT_CLAIMS_KEY, result.Claims)

		c.Next()
	}
}

// validateJWT validates a JWT token with RSA signature and returns claims
func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.keyErr != nil {
		return nil, a.keyErr
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithLeeway(a.cfg.Leeway),
	}
	if a.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.cfg.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
