package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testAuthenticator(t *testing.T) *Static {
	t.Helper()
	a, err := NewStatic("admin@crumbco", "admin@crumbco1234", []byte("test-secret"))
	require.NoError(t, err)
	return a
}

func TestLoginAndVerify(t *testing.T) {
	a := testAuthenticator(t)

	session, err := a.Login("admin@crumbco", "admin@crumbco1234")
	require.NoError(t, err)
	require.Equal(t, "admin@crumbco", session.Username)
	require.NotEmpty(t, session.Token)
	require.False(t, session.ExpiresAt.IsZero())

	verified, err := a.Verify(session.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@crumbco", verified.Username)
	require.WithinDuration(t, session.ExpiresAt, verified.ExpiresAt, time.Second)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := testAuthenticator(t)

	tests := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "admin@crumbco", "nope"},
		{"wrong username", "someone@else", "admin@crumbco1234"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := a.Login(tt.username, tt.password)
			require.Nil(t, session)
			require.True(t, errors.Is(err, ErrInvalidCredentials))
		})
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	a := testAuthenticator(t)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := a.Verify(token)
		require.Error(t, err)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	a := testAuthenticator(t)

	other, err := NewStatic("admin@crumbco", "admin@crumbco1234", []byte("other-secret"))
	require.NoError(t, err)

	session, err := other.Login("admin@crumbco", "admin@crumbco1234")
	require.NoError(t, err)

	_, err = a.Verify(session.Token)
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}
