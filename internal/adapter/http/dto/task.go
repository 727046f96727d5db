package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type TaskResponse struct {
	Success bool     `json:"success"`
	Data    TaskItem `json:"data"`
}

type TaskListResponse struct {
	Success    bool       `json:"success"`
	Data       []TaskItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type DeleteTaskResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    TaskItem `json:"data"`
}
