package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Claim types embedded in every issued token, reported back to the
	// caller in the login response.
	NameClaim = "name"
	RoleClaim = "role"

	AdminRole = "Admin"
)

type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed bearer tokens. The server keeps
// no session state; the token is the whole credential.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	lifetime time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		lifetime: lifetime,
	}
}

func (i *TokenIssuer) Lifetime() time.Duration {
	return i.lifetime
}

func (i *TokenIssuer) Issue(subjectID uuid.UUID, email string) (string, Claims, error) {
	now := time.Now()

	claims := Claims{
		Name: email,
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", Claims{}, err
	}

	return signed, claims, nil
}

// Parse validates signature, issuer, audience, and expiry. Any failure
// means the token is worthless; callers treat it as unauthorized.
func (i *TokenIssuer) Parse(tokenString string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, err
	}

	return claims, nil
}
