package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sikemausa/todo-server/internal/model"
)

// Claims represents JWT claims binding a user ID to a token purpose.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Access string    `json:"access"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Issue signs a token binding the user ID to the given purpose tag.
// Tokens carry no expiry: revocation happens through the user's stored
// token set, not through claim validation. The jti nonce keeps every
// issued token unique, iat alone only has second precision.
func (j *JWT) Issue(userID uuid.UUID, access string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Access: access,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates the signature and extracts the bound user ID and
// purpose tag. It rejects tokens with an altered payload or a mismatched
// signature; it does not consult storage.
func (j *JWT) Verify(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("token is invalid")
	}
	if claims.Access == "" {
		return uuid.Nil, "", fmt.Errorf("token purpose is missing")
	}
	return claims.UserID, claims.Access, nil
}
