package utils

import (
	"errors"
	"os"
	"time"

	"github.com/square/go-jose/v3"
	"github.com/square/go-jose/v3/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenDuration is how long an issued bearer token stays valid. There is
// no server-side revocation; logout is a client-side discard.
const TokenDuration = 30 * 24 * time.Hour

type AccessTokenUtil struct{}

func NewAccessTokenUtil() *AccessTokenUtil {
	return &AccessTokenUtil{}
}

// CreateToken issues an HS256-signed token whose subject is the user id.
func (b *AccessTokenUtil) CreateToken(userId primitive.ObjectID) (string, error) {
	secret := []byte(os.Getenv("SECRET_JWT"))
	if len(secret) == 0 {
		return "", errors.New("SECRET_JWT is not set")
	}

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.HS256,
		Key:       secret,
	}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.Claims{
		Subject:  userId.Hex(),
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(TokenDuration)),
	}

	return jwt.Signed(signer).Claims(claims).CompactSerialize()
}

// DecodeToken verifies signature and expiry and returns the embedded
// user id.
func (b *AccessTokenUtil) DecodeToken(token string) (primitive.ObjectID, error) {
	secret := []byte(os.Getenv("SECRET_JWT"))
	if len(secret) == 0 {
		return primitive.NilObjectID, errors.New("SECRET_JWT is not set")
	}

	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return primitive.NilObjectID, err
	}

	var claims jwt.Claims
	if err := parsed.Claims(secret, &claims); err != nil {
		return primitive.NilObjectID, err
	}

	if err := claims.Validate(jwt.Expected{Time: time.Now()}); err != nil {
		return primitive.NilObjectID, err
	}

	userId, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, errors.New("token subject is not a valid user id")
	}

	return userId, nil
}
