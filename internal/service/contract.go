package service

import (
	"context"

	"task-report/internal/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type TaskRepository interface {
	CountActiveTasksByAssignee(ctx context.Context, userID int64) (int, error)
	ListActiveTasks(ctx context.Context) ([]domain.Task, error)
}
