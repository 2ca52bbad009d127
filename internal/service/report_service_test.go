package service

import (
	"context"
	"errors"
	"testing"

	"task-report/internal/domain"
	"task-report/internal/my_errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type taskRow struct {
	assigneeID *int64
	title      string
	id         int64
	deleted    bool
}

// fakeStore mimics the external store: it filters deleted rows and joins assignee names.
type fakeStore struct {
	usersErr error
	countErr error
	tasksErr error
	users    []domain.User
	tasks    []taskRow
	counted  []int64
}

func (f *fakeStore) ListUsers(_ context.Context) ([]domain.User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeStore) CountActiveTasksByAssignee(_ context.Context, userID int64) (int, error) {
	f.counted = append(f.counted, userID)
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, t := range f.tasks {
		if !t.deleted && t.assigneeID != nil && *t.assigneeID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) ListActiveTasks(_ context.Context) ([]domain.Task, error) {
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	tasks := []domain.Task{}
	for _, t := range f.tasks {
		if t.deleted {
			continue
		}
		task := domain.Task{ID: t.id, Title: t.title, AssigneeID: t.assigneeID}
		if t.assigneeID != nil {
			for _, u := range f.users {
				if u.ID == *t.assigneeID {
					name := u.Username
					task.AssigneeName = &name
				}
			}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func ptr[T any](v T) *T {
	return &v
}

func scenarioStore() *fakeStore {
	return &fakeStore{
		users: []domain.User{
			{ID: 1, Username: "alice", Role: ptr("admin")},
			{ID: 2, Username: "bob", Role: ptr("employee")},
		},
		tasks: []taskRow{
			{id: 1, title: "T1", assigneeID: ptr(int64(1))},
			{id: 2, title: "T2", assigneeID: ptr(int64(2)), deleted: true},
			{id: 3, title: "T3"},
		},
	}
}

func TestReportService_BuildReport(t *testing.T) {
	store := scenarioStore()
	svc := NewReportService(store, store)

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)

	want := &domain.Report{
		Users: []domain.UserTaskCount{
			{User: domain.User{ID: 1, Username: "alice", Role: ptr("admin")}, TaskCount: 1},
			{User: domain.User{ID: 2, Username: "bob", Role: ptr("employee")}, TaskCount: 0},
		},
		Tasks: []domain.Task{
			{ID: 1, Title: "T1", AssigneeID: ptr(int64(1)), AssigneeName: ptr("alice")},
			{ID: 3, Title: "T3"},
		},
		TotalActiveTasks: 2,
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("BuildReport() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int64{1, 2}, store.counted)
}

func TestReportService_BuildReport_UnassignedNotCountedForUsers(t *testing.T) {
	store := scenarioStore()
	store.tasks = append(store.tasks, taskRow{id: 4, title: "T4"}, taskRow{id: 5, title: "T5"})
	svc := NewReportService(store, store)

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)

	sum := 0
	for _, u := range report.Users {
		sum += u.TaskCount
	}
	assert.Equal(t, 1, sum)
	assert.Equal(t, 4, report.TotalActiveTasks)
}

func TestReportService_BuildReport_DeletedTasksExcluded(t *testing.T) {
	store := scenarioStore()
	svc := NewReportService(store, store)

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)

	for _, task := range report.Tasks {
		assert.NotEqual(t, "T2", task.Title)
	}
	assert.Equal(t, 0, report.Users[1].TaskCount)
}

func TestReportService_BuildReport_EmptyStore(t *testing.T) {
	store := &fakeStore{}
	svc := NewReportService(store, store)

	report, err := svc.BuildReport(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Users)
	assert.Empty(t, report.Tasks)
	assert.Equal(t, 0, report.TotalActiveTasks)
	assert.Empty(t, store.counted)
}

func TestReportService_BuildReport_DanglingAssignee(t *testing.T) {
	store := scenarioStore()
	store.tasks = append(store.tasks, taskRow{id: 9, title: "orphan", assigneeID: ptr(int64(42))})
	svc := NewReportService(store, store)

	report, err := svc.BuildReport(context.Background())
	assert.Nil(t, report)
	require.ErrorIs(t, err, my_errors.ErrDanglingAssignee)
	assert.Contains(t, err.Error(), "task 9 references user 42")
}

func TestReportService_BuildReport_Errors(t *testing.T) {
	storeErr := errors.New("connection refused")

	testCases := []struct {
		name   string
		mutate func(*fakeStore)
		msg    string
	}{
		{"list users", func(f *fakeStore) { f.usersErr = storeErr }, "failed to get users"},
		{"count tasks", func(f *fakeStore) { f.countErr = storeErr }, "failed to count tasks"},
		{"list tasks", func(f *fakeStore) { f.tasksErr = storeErr }, "failed to get tasks"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := scenarioStore()
			tc.mutate(store)
			svc := NewReportService(store, store)

			report, err := svc.BuildReport(context.Background())
			assert.Nil(t, report)
			require.ErrorIs(t, err, storeErr)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
