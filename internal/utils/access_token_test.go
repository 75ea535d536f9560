package utils

import (
	"testing"
	"time"

	"github.com/square/go-jose/v3"
	"github.com/square/go-jose/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	userId := primitive.NewObjectID()

	token, err := NewAccessTokenUtil().CreateToken(userId)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := NewAccessTokenUtil().DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, userId, decoded)
}

func TestDecodeTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	token, err := NewAccessTokenUtil().CreateToken(primitive.NewObjectID())
	require.NoError(t, err)

	t.Setenv("SECRET_JWT", "another-secret")

	_, err = NewAccessTokenUtil().DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeTokenRejectsExpired(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS256,
		Key:       []byte("test-secret"),
	}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)

	claims := jwt.Claims{
		Subject:  primitive.NewObjectID().Hex(),
		IssuedAt: jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
		Expiry:   jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
	}
	token, err := jwt.Signed(signer).Claims(claims).CompactSerialize()
	require.NoError(t, err)

	_, err = NewAccessTokenUtil().DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	_, err := NewAccessTokenUtil().DecodeToken("not-a-token")
	assert.Error(t, err)
}

func TestDecodeTokenRejectsNonObjectIdSubject(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret")

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS256,
		Key:       []byte("test-secret"),
	}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)

	claims := jwt.Claims{
		Subject: "alice",
		Expiry:  jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.Signed(signer).Claims(claims).CompactSerialize()
	require.NoError(t, err)

	_, err = NewAccessTokenUtil().DecodeToken(token)
	assert.Error(t, err)
}
