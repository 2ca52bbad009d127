package domain

type Report struct {
	Users            []UserTaskCount
	Tasks            []Task
	TotalActiveTasks int
}

type UserTaskCount struct {
	User      User
	TaskCount int
}
