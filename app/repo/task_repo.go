package repo

import (
	"taskboard/app/models"

	"gorm.io/gorm"
)

const taskOrder = "order_index asc, id asc"

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) Create(t *models.Task) error { return r.db.Create(t).Error }

func (r *TaskRepository) Save(t *models.Task) error { return r.db.Save(t).Error }

func (r *TaskRepository) Delete(t *models.Task) error { return r.db.Delete(t).Error }

func (r *TaskRepository) FindByID(id uint) (*models.Task, error) {
	var t models.Task
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	return tasks, r.db.Order(taskOrder).Find(&tasks).Error
}

func (r *TaskRepository) ListByProjectIDs(projectIDs []uint) ([]models.Task, error) {
	if len(projectIDs) == 0 {
		return []models.Task{}, nil
	}
	var tasks []models.Task
	return tasks, r.db.Where("project_id IN ?", projectIDs).Order(taskOrder).Find(&tasks).Error
}

func (r *TaskRepository) ListByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	return tasks, r.db.Where("assigned_to = ?", userID).Order(taskOrder).Find(&tasks).Error
}

// SetOrderIndex touches only rows that belong to projectID; an id from
// another project matches nothing and is a no-op.
func (r *TaskRepository) SetOrderIndex(id, projectID uint, index int) error {
	return r.db.Model(&models.Task{}).
		Where("id = ? AND project_id = ?", id, projectID).
		Update("order_index", index).Error
}
