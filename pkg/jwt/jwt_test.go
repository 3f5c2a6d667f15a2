package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := Generate(secret, 7, "ana@example.com", "inventory-manager", 60)
	require.NoError(t, err)

	id, email, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "ana@example.com", email)
}

func TestGenerate_SinExpiracion(t *testing.T) {
	token, err := Generate(secret, 1, "a@b.co", "", 0)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	_, _, err = Parse(secret, token)
	assert.NoError(t, err)
}

func TestParse_Rechazos(t *testing.T) {
	valid, err := Generate(secret, 1, "a@b.co", "", 0)
	require.NoError(t, err)
	expired, err := Generate(secret, 1, "a@b.co", "", -1)
	require.NoError(t, err)
	noUser, err := Generate(secret, 0, "a@b.co", "", 0)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name, secret, token string
	}{
		{"otro secreto", "otro", valid},
		{"expirado", secret, expired},
		{"sin id", secret, noUser},
		{"alg none", secret, none},
		{"basura", secret, "no-es-un-token"},
		{"secreto vacío", "", valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := Generate("", 1, "a@b.co", "", 0)
	assert.Error(t, err)
}
