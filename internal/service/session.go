package service

import (
	"errors"
	"fmt"
	"time"

	"biotrack/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the identity carried by a valid session token.
type Session struct {
	UserID   int64
	UserName string
}

// Claims defines the session token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// SessionManager signs and verifies session tokens. There is no server-side
// store; the secret must stay the same across restarts for sessions to survive.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueSession returns a signed token binding the user's id and name.
func (m *SessionManager) IssueSession(u models.User) (string, error) {
	if u.ID <= 0 {
		return "", errors.New("issue session: user id is required")
	}
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   u.ID,
		UserName: u.Name,
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// ParseSession validates token and returns the identity it carries.
func (m *SessionManager) ParseSession(token string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID <= 0 {
		return Session{}, ErrInvalidToken
	}
	return Session{UserID: claims.UserID, UserName: claims.UserName}, nil
}
