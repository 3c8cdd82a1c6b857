package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/manojsharma511/govindam-food-court-builder-sub001/internal/model"
)

// TokenTTL is the fixed lifetime of an issued credential.
const TokenTTL = 24 * time.Hour

var (
	ErrUnauthorized       = errors.New("missing, invalid or expired credential")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Secret returns the HMAC signing secret. It is read from the environment
// established at startup and never mutated afterwards.
func Secret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in release mode")
		}
		secret = "default_super_secret_key" // Development fallback only, DO NOT use in production
	}
	return []byte(secret)
}

// Claims is the credential payload: subject id, role, optional permissions.
type Claims struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Context is the per-request authorization context derived from a verified
// credential. It is never persisted.
type Context struct {
	SubjectID   string
	Role        string
	Permissions []string
}

// IssueToken signs a credential for the given subject with a 24h expiry.
func IssueToken(subjectID, role string, permissions []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:        role,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Secret())
}

// VerifyToken checks signature and expiry and derives the authorization
// context. It fails closed: malformed, expired, or wrongly signed tokens are
// rejected, never partially trusted.
func VerifyToken(tokenString string) (*Context, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return Secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, ErrUnauthorized
	}
	return &Context{
		SubjectID:   claims.Subject,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}, nil
}

// Authorize reports whether the context satisfies the role requirement.
// SUPER_ADMIN satisfies everything; an empty requirement means any
// authenticated subject may proceed.
func Authorize(ctx *Context, requiredRoles ...string) bool {
	if ctx == nil {
		return false
	}
	if ctx.Role == model.RoleSuperAdmin {
		return true
	}
	if len(requiredRoles) == 0 {
		return true
	}
	for _, r := range requiredRoles {
		if ctx.Role == r {
			return true
		}
	}
	return false
}

// HasPermission reports whether the context carries the given permission
// code. SUPER_ADMIN implicitly holds every permission.
func HasPermission(ctx *Context, code string) bool {
	if ctx == nil {
		return false
	}
	if ctx.Role == model.RoleSuperAdmin {
		return true
	}
	for _, p := range ctx.Permissions {
		if p == code {
			return true
		}
	}
	return false
}

// HashPassword hashes a plaintext password with bcrypt. Plaintext is never
// persisted or logged.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored bcrypt hash against a plaintext candidate.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
