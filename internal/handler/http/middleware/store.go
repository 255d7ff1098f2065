package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/kpi-dashboard/internal/domain/auth"
	"github.com/cmlabs-hris/kpi-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// StoreAccess checks the token's store_id claim against the {storeID} path
// parameter, or against defaultStoreID on routes without one.
func StoreAccess(defaultStoreID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			storeID := chi.URLParam(r, "storeID")
			if storeID == "" {
				storeID = defaultStoreID
			}

			granted, _ := claims[jwt.ClaimStoreID].(string)
			if granted == "" || (granted != jwt.AnyStore && granted != storeID) {
				response.HandleError(w, auth.ErrStoreForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
