package services

import (
	"errors"

	"gorm.io/gorm"

	"taskboard/app/apperr"
	"taskboard/app/dto"
	"taskboard/app/models"
	"taskboard/app/policy"
	"taskboard/app/repo"
)

type TaskService struct {
	tasks    *repo.TaskRepository
	projects *repo.ProjectRepository
}

func NewTaskService(tasks *repo.TaskRepository, projects *repo.ProjectRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

func (s *TaskService) Create(in dto.CreateTaskRequest) (*models.Task, error) {
	status := in.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	t := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListFor returns the task rows the actor may see, ordered by order_index
// then id ascending.
func (s *TaskService) ListFor(actor policy.Actor) ([]models.Task, error) {
	switch policy.TaskListScope(actor) {
	case policy.ListAll:
		return s.tasks.ListAll()
	case policy.ListOwned:
		ids, err := s.projects.IDsByOwner(actor.ID)
		if err != nil {
			return nil, err
		}
		return s.tasks.ListByProjectIDs(ids)
	default:
		return s.tasks.ListByAssignee(actor.ID)
	}
}

func (s *TaskService) GetByID(id uint) (*models.Task, error) {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Task not found")
		}
		return nil, err
	}
	return t, nil
}

// ProjectOwner resolves the owner of a task's project. A dangling project_id
// yields owner 0, which matches no user.
func (s *TaskService) ProjectOwner(projectID uint) (uint, error) {
	p, err := s.projects.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return p.OwnerID, nil
}

func (s *TaskService) Update(t *models.Task, in dto.UpdateTaskRequest) (*models.Task, error) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.AssignedTo != nil {
		t.AssignedTo = *in.AssignedTo
	}
	if err := s.tasks.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) UpdateStatus(t *models.Task, status string) (*models.Task, error) {
	t.Status = status
	if err := s.tasks.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Remove(t *models.Task) error { return s.tasks.Delete(t) }

// Reorder writes order_index 1..n over orderedIDs as independent updates.
// Ids outside the project are no-ops. Deliberately not wrapped in a
// transaction: a failure partway leaves the indexes written so far.
func (s *TaskService) Reorder(projectID uint, orderedIDs []uint) error {
	idx := 1
	for _, id := range orderedIDs {
		if err := s.tasks.SetOrderIndex(id, projectID, idx); err != nil {
			return err
		}
		idx++
	}
	return nil
}
