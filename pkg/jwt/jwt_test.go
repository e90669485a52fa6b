package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret")

	token, issued, err := svc.GenerateToken("65f1a2b3c4d5e6f708192a3b", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, TokenTTL, issued.ExpiresAt.Sub(issued.IssuedAt.Time))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestJWTService_ValidateInvalidToken(t *testing.T) {
	svc := NewJWTService("secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret").GenerateToken("id", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("other").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsTokenOlderThanTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewJWTService("secret").WithClock(func() time.Time { return clock })

	token, _, err := svc.GenerateToken("id", "admin")
	require.NoError(t, err)

	clock = issuedAt.Add(23 * time.Hour)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clock = issuedAt.Add(TokenTTL + time.Second)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret")

	claims := gjwt.MapClaims{
		"adminId":  "id",
		"username": "admin",
		"exp":      time.Now().Add(time.Minute).Unix(),
		"iat":      time.Now().Unix(),
		"nbf":      time.Now().Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingExpiryOrAdmin(t *testing.T) {
	svc := NewJWTService("secret")

	noExp := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.MapClaims{"adminId": "id"})
	s, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(s)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noAdmin := gjwt.NewWithClaims(gjwt.SigningMethodHS256, gjwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	s, err = noAdmin.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_SignError(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gjwt.Token, []byte) (string, error) { return "", errors.New("sign failed") }

	_, _, err := NewJWTService("secret").GenerateToken("id", "admin")
	assert.Error(t, err)
}
