package controllers

import (
	"net/http"

	"taskboard/app/apperr"
	"taskboard/app/dto"
	"taskboard/app/services"
	"taskboard/app/validation"
)

// UserController is mounted behind the admin gate; the router enforces the
// role, the controller handles the rest.
type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll()
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	u, err := c.Users.Create(req)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, aerr := pathID(r)
	if aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	var req dto.UpdateUserRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	u, err := c.Users.Update(id, req)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Remove(w http.ResponseWriter, r *http.Request) {
	id, aerr := pathID(r)
	if aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if err := c.Users.Remove(id); err != nil {
		apperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
