package auth

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/todoplanner/todo-planner-api/internal/constants"
	"github.com/todoplanner/todo-planner-api/internal/errors"
)

var (
	ErrTokenMissing = errors.New(errors.KindAuthMissing, "Access denied. No token provided.")
	ErrTokenExpired = errors.New(errors.KindAuthExpired, "Token is expired!")
	ErrTokenInvalid = errors.New(errors.KindAuthInvalid, "Invalid token!")
)

// Claims are the payload carried by an issued bearer token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies bearer tokens. It holds the signing
// secret injected from configuration; nothing here touches the
// environment or any other ambient state.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		lifetime: constants.TokenLifetime,
	}
}

// Issue signs a token embedding the user's id and username.
func (m *TokenManager) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyHeader validates a raw Authorization header value and returns
// the decoded claims. Failures are classified: a missing or malformed
// header is ErrTokenMissing, a well-signed token past its expiry is
// ErrTokenExpired, everything else is ErrTokenInvalid.
func (m *TokenManager) VerifyHeader(header string) (*Claims, error) {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return nil, ErrTokenMissing
	}
	return m.Verify(strings.TrimPrefix(header, prefix))
}

// Verify validates a bare token string.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
