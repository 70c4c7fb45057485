// Package auth gates the admin dashboard behind a session token. The current
// authenticator checks a single configured credential pair; the interface
// exists so a real user directory can replace it without touching the
// handlers.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/crumbco/foodexpress/internal/hash"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionTTL bounds how long an issued session token stays valid. Sessions
// are never persisted; a restart with a fresh secret invalidates them all.
const SessionTTL = 12 * time.Hour

type Session struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

type Authenticator interface {
	Login(username, password string) (*Session, error)
	Verify(token string) (*Session, error)
}

// Static authenticates exactly one username/password pair. The password is
// bcrypt-hashed at construction and compared on every login.
type Static struct {
	username     string
	passwordHash string
	secret       []byte
}

func NewStatic(username, password string, secret []byte) (*Static, error) {
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Static{username: username, passwordHash: pwHash, secret: secret}, nil
}

func (s *Static) Login(username, password string) (*Session, error) {
	if username != s.username || !hash.CheckPassword(s.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(SessionTTL)
	claims := jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Session{Username: username, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *Static) Verify(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub != s.username {
		return nil, ErrInvalidCredentials
	}

	session := &Session{Username: sub, Token: tokenString}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return session, nil
}
