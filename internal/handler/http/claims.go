package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/auth"
)

// companyIDFromRequest extracts the tenant id from the verified JWT claims.
func companyIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", auth.ErrInvalidToken
	}
	return companyID, nil
}
