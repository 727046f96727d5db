package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three persisted status values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
}

// UpdateTaskInput carries a partial update. Nil pointers mean "field not
// provided"; DescriptionSet distinguishes an explicit null (clear the
// description) from an absent field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
}

// ListTasksQuery is a normalized list request. Limit and Offset are always
// populated by the validation layer.
type ListTasksQuery struct {
	Status *TaskStatus
	Search *string
	Limit  int
	Offset int
}

// TaskFilter restricts a list or count read. Nil pointers mean the filter
// is not applied. Search matches as a case-sensitive substring against
// title or description.
type TaskFilter struct {
	Status *TaskStatus
	Search *string
}

type PageInfo struct {
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

type TaskPage struct {
	Items      []Task
	Pagination PageInfo
}
