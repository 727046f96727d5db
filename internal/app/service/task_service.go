package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

var _ ports.TaskService = (*TaskService)(nil)

// CreateTask trusts its input: validation happens at the HTTP boundary.
// The store assigns id and both timestamps.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.Insert(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}

	tasksCreatedCount.Inc()
	return task, nil
}

// ListTasks runs the page read and the unbounded count against the same
// filter concurrently. HasMore uses the exact-count formula
// offset+limit < total rather than the page-was-full heuristic.
func (s *TaskService) ListTasks(ctx context.Context, query domain.ListTasksQuery) (domain.TaskPage, error) {
	startTime := time.Now()
	defer func() {
		listTasksDuration.Observe(time.Since(startTime).Seconds())
	}()

	filter := domain.TaskFilter{
		Status: query.Status,
		Search: query.Search,
	}

	var (
		items []domain.Task
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.taskRepository.SelectPage(gctx, filter, query.Limit, query.Offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.taskRepository.CountByFilter(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TaskPage{}, err
	}

	return domain.TaskPage{
		Items: items,
		Pagination: domain.PageInfo{
			Total:   total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			HasMore: query.Offset+query.Limit < total,
		},
	}, nil
}

// GetTask returns a nil task for a miss. Turning a miss into a not-found
// response is the handler's call, not ours.
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*domain.Task, error) {
	return s.taskRepository.SelectByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	tasksUpdatedCount.Inc()
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.Delete(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	tasksDeletedCount.Inc()
	return task, nil
}
