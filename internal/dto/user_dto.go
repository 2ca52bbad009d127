package dto

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     *string `json:"role"`
}

type UserTaskCountDTO struct {
	User      UserDTO `json:"user"`
	TaskCount int     `json:"task_count"`
}
