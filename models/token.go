package models

import "time"

// Token is an issued or verified bearer token.
//
// SignedString is the compact JWS form (header.payload.signature) sent to
// clients in the accessToken field and read back from the Authorization
// header. UserID is the owner taken from the "sub" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
