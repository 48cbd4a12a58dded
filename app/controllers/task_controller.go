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

type TaskController struct {
	Tasks    *services.TaskService
	Projects *services.ProjectService
}

func NewTaskController(tasks *services.TaskService, projects *services.ProjectService) *TaskController {
	return &TaskController{Tasks: tasks, Projects: projects}
}

func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	var req dto.CreateTaskRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	// An unknown project is bad input, not a permission problem.
	project, err := c.Projects.GetByID(req.ProjectID)
	if err != nil {
		if apperr.From(err).Type == apperr.TypeNotFound {
			err = apperr.BadRequest("Invalid project")
		}
		apperr.Write(w, r, err)
		return
	}
	if !policy.CanManageTasks(actor, project.OwnerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	t, err := c.Tasks.Create(req)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	tasks, err := c.Tasks.ListFor(actor)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// load fetches the task (404 when absent) and the owner of its project
// (owner 0 when the project_id dangles).
func (c *TaskController) load(w http.ResponseWriter, r *http.Request) (*models.Task, uint, policy.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return nil, 0, actor, false
	}
	id, aerr := pathID(r)
	if aerr != nil {
		apperr.Write(w, r, aerr)
		return nil, 0, actor, false
	}
	t, err := c.Tasks.GetByID(id)
	if err != nil {
		apperr.Write(w, r, err)
		return nil, 0, actor, false
	}
	ownerID, err := c.Tasks.ProjectOwner(t.ProjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return nil, 0, actor, false
	}
	return t, ownerID, actor, true
}

func (c *TaskController) Get(w http.ResponseWriter, r *http.Request) {
	t, ownerID, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	if !policy.CanViewTask(actor, ownerID, t.AssignedTo) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	t, ownerID, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	switch policy.TaskWriteScope(actor, ownerID, t.AssignedTo) {
	case policy.WriteFull:
		updated, err := c.Tasks.Update(t, req)
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case policy.WriteStatusOnly:
		if req.Status == nil {
			apperr.Write(w, r, apperr.BadRequest("Only status can be updated by assignee"))
			return
		}
		updated, err := c.Tasks.UpdateStatus(t, *req.Status)
		if err != nil {
			apperr.Write(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	default:
		apperr.Write(w, r, apperr.Forbidden())
	}
}

func (c *TaskController) Remove(w http.ResponseWriter, r *http.Request) {
	t, ownerID, actor, ok := c.load(w, r)
	if !ok {
		return
	}
	if !policy.CanManageTasks(actor, ownerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	if err := c.Tasks.Remove(t); err != nil {
		apperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *TaskController) Reorder(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		apperr.Write(w, r, apperr.Unauthorized("Unauthenticated"))
		return
	}
	var req dto.ReorderTasksRequest
	if aerr := decodeJSON(r, &req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	if aerr := validation.Struct(req); aerr != nil {
		apperr.Write(w, r, aerr)
		return
	}
	project, err := c.Projects.GetByID(req.ProjectID)
	if err != nil {
		if apperr.From(err).Type == apperr.TypeNotFound {
			err = apperr.BadRequest("Invalid project")
		}
		apperr.Write(w, r, err)
		return
	}
	if !policy.CanManageTasks(actor, project.OwnerID) {
		apperr.Write(w, r, apperr.Forbidden())
		return
	}
	if err := c.Tasks.Reorder(req.ProjectID, req.OrderedIDs); err != nil {
		apperr.Write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ReorderResponse{OK: true})
}
