// Package auth issues and verifies the short-lived bearer credential the
// app party hands out after a successful token exchange. The credential is
// stateless: validity is determined entirely by signature and expiry.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints an HS256 credential with sub = profileID and
// exp = now + validityDuration. The signing secret is held by the app
// party only; it is a different trust boundary from the envelope key,
// which protects untrusted client input.
func GenerateToken(profileID string, secretKey []byte, validityDuration time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   profileID,
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ProfileIDFromToken verifies the credential against secretKey at the
// given instant and returns the bound profile id. Bad signature,
// malformed structure, wrong algorithm and expiry all surface as
// common.ErrUnauthorized.
func ProfileIDFromToken(tokenString string, secretKey []byte, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrUnauthorized
	}

	return claims.Subject, nil
}
