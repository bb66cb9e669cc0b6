package model

import "github.com/google/uuid"

// TokenManager signs and verifies session tokens. Verify is purely
// cryptographic: a valid signature is necessary but not sufficient for
// authorization, the token must also be present in the user's stored
// token set.
type TokenManager interface {
	Issue(userID uuid.UUID, access string) (string, error)
	Verify(token string) (userID uuid.UUID, access string, err error)
}
