// Package httpapi exposes the app party's HTTP surface: the token
// exchange plus the bearer-gated profile and trip-chat endpoints.
package httpapi

import "context"

type ctxKey string

const profileIDKey ctxKey = "profileID"

// ProfileIDFromContext returns the authenticated profile id placed there
// by the bearer middleware.
func ProfileIDFromContext(ctx context.Context) (string, bool) {
	pid, ok := ctx.Value(profileIDKey).(string)
	return pid, ok
}
