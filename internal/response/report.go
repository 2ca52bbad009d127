package response

import "task-report/internal/dto"

type ReportResponse struct {
	Users            []dto.UserTaskCountDTO `json:"users"`
	Tasks            []dto.TaskDTO          `json:"tasks"`
	TotalActiveTasks int                    `json:"total_active_tasks"`
}
