package dto

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	ProjectID   uint   `json:"project_id" validate:"required,gt=0"`
	AssignedTo  uint   `json:"assigned_to" validate:"required,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	AssignedTo  *uint   `json:"assigned_to" validate:"omitempty,gt=0"`
}

type ReorderTasksRequest struct {
	ProjectID  uint   `json:"project_id" validate:"required,gt=0"`
	OrderedIDs []uint `json:"ordered_ids" validate:"required,min=1,dive,gt=0"`
}

type ReorderResponse struct {
	OK bool `json:"ok"`
}
