package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"ai-quiz-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminDisabled = errors.New("admin access is not configured")
	ErrInvalidToken  = errors.New("invalid token")

	// ErrNoSessions means no signing secret is available, so only the raw
	// admin token can be used.
	ErrNoSessions = errors.New("session tokens are not configured")
)

const adminSubject = "admin"

// AdminService checks the shared admin token and issues short-lived session
// tokens for the admin dashboard.
type AdminService struct {
	token     string
	tokenHash []byte
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAdminService builds the admin checker. Session tokens are only issued
// when cfg.JWTSecret is set; the admin token is never used as a signing key.
func NewAdminService(cfg config.AdminConfig) *AdminService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AdminService{
		token:     cfg.Token,
		tokenHash: []byte(cfg.TokenHash),
		jwtSecret: []byte(cfg.JWTSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *AdminService) Enabled() bool {
	return s.token != "" || len(s.tokenHash) > 0
}

// CheckToken compares candidate with the configured admin token. A bcrypt
// hash takes precedence over the plaintext token when both are set.
func (s *AdminService) CheckToken(candidate string) bool {
	if candidate == "" || !s.Enabled() {
		return false
	}
	if len(s.tokenHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.tokenHash, []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.token)) == 1
}

// IssueToken exchanges a valid admin token for a signed session token.
func (s *AdminService) IssueToken(candidate string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrAdminDisabled
	}
	if !s.CheckToken(candidate) {
		return "", time.Time{}, ErrInvalidToken
	}
	if len(s.jwtSecret) == 0 {
		return "", time.Time{}, ErrNoSessions
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ValidateToken accepts a session token issued by IssueToken.
func (s *AdminService) ValidateToken(tokenString string) error {
	if len(s.jwtSecret) == 0 {
		return ErrNoSessions
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	if claims.Subject != adminSubject {
		return ErrInvalidToken
	}
	return nil
}
