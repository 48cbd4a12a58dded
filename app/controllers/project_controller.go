package controllers

import (
	"net/http"

	"taskboard/app/apperr"
	"taskboard/app/dto"
	"taskboard/app/middleware"
	"taskboard/app/models"
	"taskboard/app/policy"
	"taskboard/app/services"
	"taskboard/app/validation"
)

type ProjectController struct{ Projects *services.ProjectService }

func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{Projects: projects}
}

func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	var req dto.CreateProjectRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if !policy.CanCreateProject(actor) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	ownerID := actor.ID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}
	p, err := c.Projects.Create(req.Name, req.Description, ownerID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	projects, err := c.Projects.ListFor(actor)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// load resolves the path id, fetching the project or answering 404.
func (c *ProjectController) load(w http.ResponseWriter, r *http.Request) (*models.Project, policy.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return nil, actor, false
	}
	id, aerr := pathID(r)
	if aerr != nil {
		apperr.Write(w, r, aerr)
		return nil, actor, false
	}
	p, err := c.Projects.GetByID(id)
	if err != nil {
		apperr.Write(w, r, err)
		return nil, actor, false
	}
	return p, actor, true
}

func (c *ProjectController) Get(w http.ResponseWriter, r *http.Request) {
	p, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	if !policy.CanViewProject(actor, p.OwnerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	p, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	if !policy.CanModifyProject(actor, p.OwnerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	var req dto.UpdateProjectRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	updated, err := c.Projects.Update(p, req)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (c *ProjectController) Remove(w http.ResponseWriter, r *http.Request) {
	p, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	if !policy.CanModifyProject(actor, p.OwnerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	if err := c.Projects.Remove(p); err != nil {
		apperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
