package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/voyagegate/internal/common"
	"github.com/dmitrijs2005/voyagegate/internal/httpx"
	"github.com/dmitrijs2005/voyagegate/internal/server/auth"
)

// bearerAuth gates a route group on a valid credential. On success the
// bound profile id is placed into the request context; everything else
// is a 401 with a non-specific body.
func bearerAuth(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeaderName)
			if !strings.HasPrefix(header, common.BearerPrefix) {
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid Token")
				return
			}

			token := strings.TrimPrefix(header, common.BearerPrefix)

			profileID, err := auth.ProfileIDFromToken(token, jwtSecret, time.Now())
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid Token")
				return
			}

			ctx := context.WithValue(r.Context(), profileIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
