package report

import (
	"bufio"
	"fmt"
	"io"

	"task-report/internal/domain"
)

const (
	assignmentsHeader = "--- DEBUG TASK ASSIGNMENTS ---"
	tasksHeader       = "--- ALL TASKS ---"
)

// WriteText prints the report in the fixed debug layout, one record per line.
func WriteText(w io.Writer, r *domain.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, assignmentsHeader)
	for _, u := range r.Users {
		fmt.Fprintf(bw, "User: %s (ID: %d, Role: %s) - Task Count: %d\n",
			u.User.Username, u.User.ID, u.User.RoleLabel(), u.TaskCount)
	}

	fmt.Fprintln(bw, tasksHeader)
	fmt.Fprintf(bw, "Total non-deleted tasks: %d\n", r.TotalActiveTasks)
	for _, t := range r.Tasks {
		fmt.Fprintf(bw, "Task: %s, ID: %d, Assignee: %s\n", t.Title, t.ID, t.AssigneeLabel())
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
