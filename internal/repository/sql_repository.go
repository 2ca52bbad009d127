package repository

import (
	"context"
	"fmt"

	"task-report/internal/domain"

	"github.com/jmoiron/sqlx"
)

// SQLUserRepository reads users through database/sql (mysql, sqlite).
type SQLUserRepository struct {
	db     *sqlx.DB
	tables Tables
}

func NewSQLUserRepository(db *sqlx.DB, tables Tables) *SQLUserRepository {
	return &SQLUserRepository{db: db, tables: tables}
}

func (r *SQLUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(listUsersQuery(r.tables))); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SQLTaskRepository reads tasks through database/sql (mysql, sqlite).
type SQLTaskRepository struct {
	db     *sqlx.DB
	tables Tables
}

func NewSQLTaskRepository(db *sqlx.DB, tables Tables) *SQLTaskRepository {
	return &SQLTaskRepository{db: db, tables: tables}
}

func (r *SQLTaskRepository) CountActiveTasksByAssignee(ctx context.Context, userID int64) (int, error) {
	var count int
	query := r.db.Rebind(countActiveTasksByAssigneeQuery(r.tables))
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count tasks for user %d: %w", userID, err)
	}
	return count, nil
}

func (r *SQLTaskRepository) ListActiveTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if err := r.db.SelectContext(ctx, &tasks, r.db.Rebind(listActiveTasksQuery(r.tables))); err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	return tasks, nil
}
