package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sikemausa/todo-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	tok, err := j.Issue(u, model.AccessAuth)
	require.NoError(t, err)

	gotUser, gotAccess, err := j.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, u, gotUser)
	require.Equal(t, model.AccessAuth, gotAccess)
}

func TestJWT_PurposePreserved(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	tok, err := j.Issue(u, "reset")
	require.NoError(t, err)

	_, gotAccess, err := j.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "reset", gotAccess)
}

func TestJWT_UniquePerIssue(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	// back-to-back issuance within the same second must still yield
	// distinct token strings, or the stored token set rejects the second
	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		tok, err := j.Issue(u, model.AccessAuth)
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "issue %d returned an already-issued token", i)
		seen[tok] = struct{}{}

		gotUser, gotAccess, err := j.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, u, gotUser)
		require.Equal(t, model.AccessAuth, gotAccess)
	}
}

func TestJWT_TamperedToken(t *testing.T) {
	j := NewJWT("secret")

	tok, err := j.Issue(uuid.New(), model.AccessAuth)
	require.NoError(t, err)

	// flip one byte anywhere in the token
	for i := 0; i < len(tok); i++ {
		mutated := []byte(tok)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		_, _, err := j.Verify(string(mutated))
		require.Error(t, err, "byte %d", i)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("other-secret")

	tok, err := j.Issue(uuid.New(), model.AccessAuth)
	require.NoError(t, err)

	_, _, err = other.Verify(tok)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	_, _, err := j.Verify("not-a-token")
	require.Error(t, err)
}
