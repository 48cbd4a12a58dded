package controllers

import (
	"net/http"
	"time"

	"taskboard/app/apperr"
	"taskboard/app/dto"
	jwtutil "taskboard/app/jwt"
	"taskboard/app/middleware"
	"taskboard/app/services"
	"taskboard/app/validation"
)

type AuthController struct {
	Auth   *services.AuthService
	Signer *jwtutil.Signer
	Tokens *services.TokenStore
}

func NewAuthController(auth *services.AuthService, signer *jwtutil.Signer, tokens *services.TokenStore) *AuthController {
	return &AuthController{Auth: auth, Signer: signer, Tokens: tokens}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	u, err := c.Auth.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Role)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.AuthResponse{Token: token, User: dto.UserInfoFrom(u)})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	u, err := c.Auth.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Role)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: dto.UserInfoFrom(u)})
}

// Logout revokes the presented token until its natural expiry. Without a
// configured token store this is a no-op acknowledgement.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	if c.Tokens != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := c.Tokens.Revoke(r.Context(), claims.ID, ttl); err != nil {
			apperr.Write(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
