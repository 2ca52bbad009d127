package mapper

import (
	"task-report/internal/domain"
	"task-report/internal/dto"
	"task-report/internal/response"
)

// Report mappers
func MapDomainReportToResponse(report *domain.Report) response.ReportResponse {
	users := make([]dto.UserTaskCountDTO, len(report.Users))
	for i, u := range report.Users {
		users[i] = dto.UserTaskCountDTO{
			User:      MapDomainUserToDTO(u.User),
			TaskCount: u.TaskCount,
		}
	}

	tasks := make([]dto.TaskDTO, len(report.Tasks))
	for i, t := range report.Tasks {
		tasks[i] = MapDomainTaskToDTO(t)
	}

	return response.ReportResponse{
		Users:            users,
		Tasks:            tasks,
		TotalActiveTasks: report.TotalActiveTasks,
	}
}

// User mappers
func MapDomainUserToDTO(user domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// Task mappers
func MapDomainTaskToDTO(task domain.Task) dto.TaskDTO {
	out := dto.TaskDTO{
		ID:    task.ID,
		Title: task.Title,
	}
	if task.AssigneeID != nil && task.AssigneeName != nil {
		out.Assignee = &dto.UserRefDTO{
			ID:       *task.AssigneeID,
			Username: *task.AssigneeName,
		}
	}
	return out
}
