package repository

import "fmt"

// Tables names the external application's user and task tables.
// Both must already be validated SQL identifiers.
type Tables struct {
	Users string
	Tasks string
}

// Queries are written with '?' bind vars and rebound per driver.

func listUsersQuery(t Tables) string {
	return fmt.Sprintf(`
        SELECT id, username, role
        FROM %s
        ORDER BY id
    `, t.Users)
}

func countActiveTasksByAssigneeQuery(t Tables) string {
	return fmt.Sprintf(`
        SELECT COUNT(*)
        FROM %s
        WHERE assignee_id = ? AND is_deleted = false
    `, t.Tasks)
}

func listActiveTasksQuery(t Tables) string {
	return fmt.Sprintf(`
        SELECT t.id, t.title, t.assignee_id, u.username AS assignee_name
        FROM %s t
        LEFT JOIN %s u ON u.id = t.assignee_id
        WHERE t.is_deleted = false
        ORDER BY t.id
    `, t.Tasks, t.Users)
}
