package repo

import (
	"taskboard/app/models"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(p *models.Project) error { return r.db.Create(p).Error }

func (r *ProjectRepository) Save(p *models.Project) error { return r.db.Save(p).Error }

// Delete removes the project row only. Tasks keep their project_id.
func (r *ProjectRepository) Delete(p *models.Project) error { return r.db.Delete(p).Error }

func (r *ProjectRepository) FindByID(id uint) (*models.Project, error) {
	var p models.Project
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListAll() ([]models.Project, error) {
	var projects []models.Project
	return projects, r.db.Order("id asc").Find(&projects).Error
}

func (r *ProjectRepository) ListByOwner(ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	return projects, r.db.Where("owner_id = ?", ownerID).Order("id asc").Find(&projects).Error
}

func (r *ProjectRepository) IDsByOwner(ownerID uint) ([]uint, error) {
	var ids []uint
	return ids, r.db.Model(&models.Project{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error
}
