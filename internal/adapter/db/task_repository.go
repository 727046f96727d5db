package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, title, description, status, created_at, updated_at
FROM tasks`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (title, description, status) VALUES (?, ?, ?)",
		input.Title, input.Description, string(input.Status),
	)
	if err != nil {
		return domain.Task{}, translateMySQLError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.fetchTask(ctx, uint64(id))
}

func (r *TaskRepository) SelectPage(ctx context.Context, filter domain.TaskFilter, limit, offset int) ([]domain.Task, error) {
	where, args := buildTaskWhere(filter)
	query := selectTaskColumns + where + "\nORDER BY created_at DESC, id DESC\nLIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) CountByFilter(ctx context.Context, filter domain.TaskFilter) (int, error) {
	where, args := buildTaskWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tasks"+where, args...); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *TaskRepository) SelectByID(ctx context.Context, id uint64) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+"\nWHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// updated_at is always refreshed, even when the new values equal the
	// old ones, so the mutation is observable.
	sets := []string{"updated_at = CURRENT_TIMESTAMP(6)"}
	args := make([]any, 0, 4)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, input.Description)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return domain.Task{}, translateMySQLError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return r.fetchTask(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) (domain.Task, error) {
	// Read the record first so the caller gets the deleted row back. A
	// concurrent delete between the two statements surfaces as not-found.
	task, err := r.SelectByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return *task, nil
}

func (r *TaskRepository) fetchTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := r.SelectByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task == nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *task, nil
}

// buildTaskWhere translates a domain filter into a WHERE clause. Status is
// an exact match; search is a case-sensitive substring test against title
// or description (LIKE BINARY keeps the comparison case-sensitive under
// case-insensitive collations). Both filters combine with AND.
func buildTaskWhere(filter domain.TaskFilter) (string, []any) {
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Search != nil {
		pattern := "%" + escapeLikePattern(*filter.Search) + "%"
		clauses = append(clauses, "(title LIKE BINARY ? OR description LIKE BINARY ?)")
		args = append(args, pattern, pattern)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "\nWHERE " + strings.Join(clauses, " AND "), args
}

// escapeLikePattern makes %, _ and \ in a search term match literally.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(term)
}

func translateMySQLError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return domain.ErrDuplicateTask
	}
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
