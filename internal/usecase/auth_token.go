package usecase

import (
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenIssuer = "club-website"

// sessionClaims binds a bearer token to a stored session through the JWT ID.
type sessionClaims struct {
	jwt.RegisteredClaims
}

func signSessionToken(secret []byte, sessionID, username string, issuedAt, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   username,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign session token")
	}
	return signed, nil
}

func parseSessionToken(secret []byte, token string, now time.Time) (sessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return sessionClaims{}, crerr.Wrap(err, "parse session token")
	}
	if claims.ID == "" {
		return sessionClaims{}, crerr.New("session token has no id")
	}
	return claims, nil
}
