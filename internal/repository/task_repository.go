package repository

import (
	"context"
	"fmt"

	"task-report/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

type TaskRepository struct {
	pool   *pgxpool.Pool
	tables Tables
}

func NewTaskRepository(pool *pgxpool.Pool, tables Tables) *TaskRepository {
	return &TaskRepository{pool: pool, tables: tables}
}

func (r *TaskRepository) CountActiveTasksByAssignee(ctx context.Context, userID int64) (int, error) {
	query := sqlx.Rebind(sqlx.DOLLAR, countActiveTasksByAssigneeQuery(r.tables))

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks for user %d: %w", userID, err)
	}
	return count, nil
}

func (r *TaskRepository) ListActiveTasks(ctx context.Context) ([]domain.Task, error) {
	query := sqlx.Rebind(sqlx.DOLLAR, listActiveTasksQuery(r.tables))

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.AssigneeID,
			&task.AssigneeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}
