package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/kz2wd/time-tracker/internal/domain"
	"github.com/kz2wd/time-tracker/internal/errors"
)

// mockAPI is an in-memory API used by the command tests. It records calls
// and serves tasks and entries from maps, with per-method error overrides.
type mockAPI struct {
	tasks   map[int64]*domain.Task
	entries map[int64]*domain.WorkEntry
	nextID  int64
	now     time.Time

	active   *domain.WorkEntry
	repaired []*domain.WorkEntry

	createTaskErr error
	saveTaskErr   error
	startWorkErr  error

	calls []string

	lastCreateParent *domain.Task
	lastStartTask    *domain.Task
	lastRating       *int
	lastSinceHours   *float64
	lastTaskFilter   *int64
	workedSeconds    int64
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:   make(map[int64]*domain.Task),
		entries: make(map[int64]*domain.WorkEntry),
		nextID:  1,
		now:     time.UnixMilli(1000),
	}
}

func (m *mockAPI) addTask(description string) *domain.Task {
	task := &domain.Task{ID: m.nextID, Description: description, SubtaskIDs: []int64{}}
	m.tasks[task.ID] = task
	m.nextID++
	return task
}

func (m *mockAPI) CreateTask(ctx context.Context, description string, parent *domain.Task) (*domain.Task, error) {
	m.calls = append(m.calls, "CreateTask")
	m.lastCreateParent = parent
	if m.createTaskErr != nil {
		return nil, m.createTaskErr
	}
	task := m.addTask(description)
	if parent != nil {
		task.ParentID = &parent.ID
		parent.SubtaskIDs = append(parent.SubtaskIDs, task.ID)
	}
	return task, nil
}

func (m *mockAPI) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	m.calls = append(m.calls, "GetTask")
	task, ok := m.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return task, nil
}

func (m *mockAPI) ListRootTasks(ctx context.Context) ([]*domain.Task, error) {
	m.calls = append(m.calls, "ListRootTasks")
	var roots []*domain.Task
	for id := int64(1); id < m.nextID; id++ {
		if task, ok := m.tasks[id]; ok && task.IsRoot() {
			roots = append(roots, task)
		}
	}
	return roots, nil
}

func (m *mockAPI) SaveTask(ctx context.Context, task *domain.Task) error {
	m.calls = append(m.calls, "SaveTask")
	if m.saveTaskErr != nil {
		return m.saveTaskErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id int64) error {
	m.calls = append(m.calls, "DeleteTask")
	delete(m.tasks, id)
	return nil
}

func (m *mockAPI) StartWork(ctx context.Context, task *domain.Task) (*domain.WorkEntry, error) {
	m.calls = append(m.calls, "StartWork")
	m.lastStartTask = task
	if m.startWorkErr != nil {
		return nil, m.startWorkErr
	}
	entry := &domain.WorkEntry{ID: m.nextID, Start: m.now}
	if task != nil {
		entry.RelatedTaskID = &task.ID
	}
	m.entries[entry.ID] = entry
	m.nextID++
	m.active = entry
	return entry, nil
}

func (m *mockAPI) FinishWork(ctx context.Context, entry *domain.WorkEntry) error {
	m.calls = append(m.calls, "FinishWork")
	if entry.End == nil {
		end := m.now
		entry.End = &end
	}
	if m.active != nil && m.active.ID == entry.ID {
		m.active = nil
	}
	return nil
}

func (m *mockAPI) RateWork(ctx context.Context, entry *domain.WorkEntry, satisfaction int) error {
	m.calls = append(m.calls, "RateWork")
	m.lastRating = &satisfaction
	rated := entry.Rate(satisfaction)
	entry.Satisfaction = rated.Satisfaction
	return nil
}

func (m *mockAPI) GetActiveWork(ctx context.Context) (*domain.WorkEntry, []*domain.WorkEntry, error) {
	m.calls = append(m.calls, "GetActiveWork")
	return m.active, m.repaired, nil
}

func (m *mockAPI) GetWorkedSeconds(ctx context.Context, sinceHours *float64, taskID *int64) (int64, error) {
	m.calls = append(m.calls, "GetWorkedSeconds")
	m.lastSinceHours = sinceHours
	m.lastTaskFilter = taskID
	return m.workedSeconds, nil
}

func (m *mockAPI) Close() error {
	m.calls = append(m.calls, "Close")
	return nil
}

func (m *mockAPI) callCount(name string) int {
	count := 0
	for _, call := range m.calls {
		if call == name {
			count++
		}
	}
	return count
}
