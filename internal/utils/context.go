package utils

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// SetUserIDToContext returns a child context carrying the authenticated
// user's ID. Called by the identity middleware; the sync engine itself never
// authenticates — it trusts the identity the outer layer established.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts the user ID placed by SetUserIDToContext.
// The second return value is false when no ID is present.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
