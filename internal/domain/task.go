package domain

// NoValue is printed in place of a missing role or an absent assignee.
const NoValue = "None"

// Task is a non-deleted task row joined with its assignee's username.
// AssigneeID is nil for unassigned tasks. AssigneeName is nil when the
// assignee row could not be joined.
type Task struct {
	AssigneeID   *int64  `db:"assignee_id"`
	AssigneeName *string `db:"assignee_name"`
	Title        string  `db:"title"`
	ID           int64   `db:"id"`
}

func (t Task) HasAssignee() bool {
	return t.AssigneeID != nil
}

// AssigneeLabel returns the assignee's username or NoValue.
func (t Task) AssigneeLabel() string {
	if t.AssigneeName == nil {
		return NoValue
	}
	return *t.AssigneeName
}
