package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token that authorizes catalog mutations.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims] for
// the standard claim set. Operator mirrors the "sub" claim: the name of the
// person or tool that edits the catalog.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Operator is the parsed "sub" claim.
	Operator string `json:"-"`
}

// GetOperator returns the "sub" claim of the token.
func (t *Token) GetOperator() (string, error) {
	operator, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting operator from token: %w", err)
	}
	if operator == "" {
		return "", fmt.Errorf("error extracting operator from token: empty subject")
	}

	return operator, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
