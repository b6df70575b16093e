// Package utils provides general-purpose helpers shared by the transport and
// service layers: typed context keys, JSON response writing and decoding,
// JWT issuing and verification, and unique name generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so that values stored by
// this package never collide with string keys of other packages.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the id of
// the authenticated user.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from ctx.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
