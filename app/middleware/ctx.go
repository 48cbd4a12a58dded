package middleware

import (
	"context"

	jwtutil "taskboard/app/jwt"
	"taskboard/app/policy"
)

func GetClaims(ctx context.Context) *jwtutil.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*jwtutil.Claims); ok {
			return c
		}
	}
	return nil
}

// ActorFrom extracts the policy actor for the authenticated request. The
// bool is false when the request never went through RequireAuth.
func ActorFrom(ctx context.Context) (policy.Actor, bool) {
	c := GetClaims(ctx)
	if c == nil {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: c.UserID, Role: policy.Role(c.Role)}, true
}
