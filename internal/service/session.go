package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/plainlearn/plainlearn/internal/domain"
)

// SessionService mints and validates the signed tokens that back
// browser sessions. A token carries the user id plus the display name
// and academic level, so request handling never hits the store.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a new SessionService. The secret signs
// tokens with HMAC-SHA256; ttl bounds session lifetime.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a session token for the given user.
func (s *SessionService) Issue(user *domain.User) (string, error) {
	return s.mint(user.ID, user.Name, user.Level)
}

// Refresh mints a replacement token for an existing session with the
// level overwritten. Name and user id carry over unchanged; expiry is
// extended to a full TTL.
func (s *SessionService) Refresh(sess domain.Session, level domain.AcademicLevel) (string, error) {
	return s.mint(sess.UserID, sess.Name, level)
}

// Parse validates a session token and returns the session it carries.
// Any failure (bad signature, expiry, malformed claims) surfaces as
// domain.ErrSessionAbsent.
func (s *SessionService) Parse(tokenString string) (domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Session{}, domain.ErrSessionAbsent
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Session{}, domain.ErrSessionAbsent
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return domain.Session{}, domain.ErrSessionAbsent
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return domain.Session{}, domain.ErrSessionAbsent
	}

	name, _ := claims["name"].(string)
	level, _ := claims["level"].(string)

	sess := domain.Session{
		UserID: userID,
		Name:   name,
		Level:  domain.LevelOrDefault(level),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}
	return sess, nil
}

// TTL reports the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

func (s *SessionService) mint(userID int64, name string, level domain.AcademicLevel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"name":  name,
		"level": string(level),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
