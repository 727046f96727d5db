package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	SelectPage(ctx context.Context, filter domain.TaskFilter, limit, offset int) ([]domain.Task, error)
	CountByFilter(ctx context.Context, filter domain.TaskFilter) (int, error)
	SelectByID(ctx context.Context, id uint64) (*domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) (domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, query domain.ListTasksQuery) (domain.TaskPage, error)
	GetTask(ctx context.Context, id uint64) (*domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (domain.Task, error)
}
