package service

import (
	"context"
	"fmt"
	"log/slog"

	"task-report/internal/domain"
	"task-report/internal/my_errors"
)

type ReportService struct {
	userRepo UserRepository
	taskRepo TaskRepository
}

func NewReportService(userRepo UserRepository, taskRepo TaskRepository) *ReportService {
	return &ReportService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// BuildReport counts each user's non-deleted tasks and lists every
// non-deleted task. Queries run sequentially; the first failure aborts.
func (s *ReportService) BuildReport(ctx context.Context) (*domain.Report, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	report := &domain.Report{
		Users: make([]domain.UserTaskCount, 0, len(users)),
	}

	for _, user := range users {
		count, err := s.taskRepo.CountActiveTasksByAssignee(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		report.Users = append(report.Users, domain.UserTaskCount{
			User:      user,
			TaskCount: count,
		})
	}

	tasks, err := s.taskRepo.ListActiveTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	for _, task := range tasks {
		if task.HasAssignee() && task.AssigneeName == nil {
			return nil, fmt.Errorf("task %d references user %d: %w", task.ID, *task.AssigneeID, my_errors.ErrDanglingAssignee)
		}
	}

	report.Tasks = tasks
	report.TotalActiveTasks = len(tasks)

	slog.DebugContext(ctx, "report built",
		slog.Int("users", len(report.Users)),
		slog.Int("tasks", report.TotalActiveTasks),
	)

	return report, nil
}
