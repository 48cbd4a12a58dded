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

type ProjectService struct{ projects *repo.ProjectRepository }

func NewProjectService(projects *repo.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(name, description string, ownerID uint) (*models.Project, error) {
	p := &models.Project{Name: name, Description: description, OwnerID: ownerID}
	if err := s.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) ListFor(actor policy.Actor) ([]models.Project, error) {
	if policy.ProjectListScope(actor) == policy.ListAll {
		return s.projects.ListAll()
	}
	return s.projects.ListByOwner(actor.ID)
}

func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	p, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Update(p *models.Project, in dto.UpdateProjectRequest) (*models.Project, error) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if err := s.projects.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Remove deletes the project only; its tasks stay behind with a dangling
// project_id.
func (s *ProjectService) Remove(p *models.Project) error {
	return s.projects.Delete(p)
}
