package dto

type TaskDTO struct {
	Assignee *UserRefDTO `json:"assignee"`
	Title    string      `json:"title"`
	ID       int64       `json:"id"`
}

type UserRefDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
