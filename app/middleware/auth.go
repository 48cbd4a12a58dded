package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskboard/app/apperr"
	jwtutil "taskboard/app/jwt"
	"taskboard/app/policy"
	"taskboard/app/services"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Tokens *services.TokenStore // optional revocation list
}

func (a *Auth) authenticate(r *http.Request) (*jwtutil.Claims, *apperr.Error) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, apperr.Unauthorized("Missing or invalid auth header")
	}
	token := strings.TrimPrefix(authz, "Bearer ")
	claims, err := a.Signer.Parse(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid token")
	}
	if a.Tokens != nil && claims.ID != "" {
		revoked, err := a.Tokens.IsRevoked(r.Context(), claims.ID)
		if err == nil && revoked {
			return nil, apperr.Unauthorized("Token revoked")
		}
	}
	return claims, nil
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, aerr := a.authenticate(r)
		if aerr != nil {
			apperr.Write(w, r, aerr)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin authenticates and then defers the role decision to the
// policy table.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, aerr := a.authenticate(r)
		if aerr != nil {
			apperr.Write(w, r, aerr)
			return
		}
		actor := policy.Actor{ID: claims.UserID, Role: policy.Role(claims.Role)}
		if !policy.CanManageUsers(actor) {
			apperr.Write(w, r, apperr.Forbidden())
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
