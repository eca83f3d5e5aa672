package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Login is a cached copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Login is the administrator login extracted from the "sub" claim.
	Login string `json:"-"`
}

// GetLogin returns the administrator login stored in the "sub" claim.
func (t *Token) GetLogin() (string, error) {
	login, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting login from token: %w", err)
	}
	if login == "" {
		return "", fmt.Errorf("error extracting login from token: empty subject")
	}

	return login, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
