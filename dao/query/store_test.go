package query

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// testcontainers panics without a docker daemon, so check for one first.
func dockerAvailable() bool {
	return exec.Command("docker", "info").Run() == nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() || !dockerAvailable() {
		t.Skip("Docker not available, skipping postgres integration tests")
	}

	ctx := context.Background()
	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("agencyos"),
		postgres.WithUsername("agencyos"),
		postgres.WithPassword("agencyos"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pg); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := Open(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewStore(db)
}

type fixture struct {
	space    model.Space
	acme     model.Folder
	archived model.Folder
	site     model.Project
	old      model.Project

	design, shipped, hidden, forgotten model.Task
}

func seed(t *testing.T, s *Store) fixture {
	t.Helper()
	ctx := context.Background()
	db := s.DB()
	var f fixture

	f.space = model.Space{WorkspaceID: "w1", Name: "Clients"}
	require.NoError(t, Create(ctx, db, &f.space))
	f.acme = model.Folder{SpaceID: f.space.ID, Name: "Acme"}
	require.NoError(t, Create(ctx, db, &f.acme))
	f.archived = model.Folder{SpaceID: f.space.ID, Name: "Old client", Archived: true}
	require.NoError(t, Create(ctx, db, &f.archived))

	f.site = model.Project{FolderID: f.acme.ID, Name: "Website", Status: model.ProjectActive, ClientVisible: true}
	require.NoError(t, Create(ctx, db, &f.site))
	f.old = model.Project{FolderID: f.archived.ID, Name: "Legacy", Status: model.ProjectCompleted}
	require.NoError(t, Create(ctx, db, &f.old))

	f.design = model.Task{ProjectID: f.site.ID, Title: "Design", Status: model.TaskTodo, Priority: model.PriorityP1,
		ClientVisible: true, AssigneeIDs: []string{"u1"}, Tags: []string{"design"}}
	f.shipped = model.Task{ProjectID: f.site.ID, Title: "Ship", Status: model.TaskComplete, Priority: model.PriorityP2,
		ClientVisible: true, Progress: 250}
	f.hidden = model.Task{ProjectID: f.site.ID, Title: "Internal QA", Status: model.TaskTodo, Priority: model.PriorityP3}
	f.forgotten = model.Task{ProjectID: f.old.ID, Title: "Legacy bug", Status: model.TaskBlocked, Priority: model.PriorityP4}
	for _, task := range []*model.Task{&f.design, &f.shipped, &f.hidden, &f.forgotten} {
		require.NoError(t, Create(ctx, db, task))
	}
	return f
}

func taskIDs(c viewmodel.Collections) []string {
	return lo.Map(c.Tasks, func(t model.Task, _ int) string { return t.ID })
}

func TestStoreLoadCollections(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()

	all, err := s.LoadCollections(ctx, Scope{WorkspaceID: "w1"})
	require.NoError(t, err)
	assert.Len(t, all.Spaces, 1)
	assert.Len(t, all.Folders, 1)
	assert.Len(t, all.Projects, 1)
	assert.ElementsMatch(t, []string{f.design.ID, f.shipped.ID, f.hidden.ID}, taskIDs(all))

	withArchived, err := s.LoadCollections(ctx, Scope{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, withArchived.Tasks, 4)

	portal, err := s.LoadCollections(ctx, Scope{FolderIDs: []string{f.acme.ID}, ClientVisible: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f.design.ID, f.shipped.ID}, taskIDs(portal))

	none, err := s.LoadCollections(ctx, Scope{FolderIDs: []string{}})
	require.NoError(t, err)
	assert.Empty(t, none.Tasks)

	records := viewmodel.ResolveTaskRecords(all)
	require.NotNil(t, records[0].Space)
	assert.Equal(t, "Clients", records[0].Space.Name)
}

func TestStoreProgressIsClamped(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)

	got, err := Get[model.Task](context.Background(), s.DB(), f.shipped.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100, got.Progress, 1e-9)
}

func TestStoreUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()
	db := s.DB()

	updated, err := Update[model.Task](ctx, db, f.design.ID, map[string]any{"status": model.TaskInProgress})
	require.NoError(t, err)
	assert.Equal(t, model.TaskInProgress, updated.Status)

	_, err = Update[model.Task](ctx, db, "missing", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, Delete[model.Task](ctx, db, f.hidden.ID))
	assert.ErrorIs(t, Delete[model.Task](ctx, db, f.hidden.ID), gorm.ErrRecordNotFound)

	rows, count, err := List[model.Task](ctx, db, func(q *gorm.DB) *gorm.DB {
		return q.Where("project_id = ?", f.site.ID)
	}, Paginate(ptr.To(0), ptr.To(1)))
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.Len(t, rows, 1)

	counts, err := s.CountTasksByStatus(ctx)
	require.NoError(t, err)
	assert.Contains(t, counts, StatusCount{Status: model.TaskInProgress, Count: 1})
}

func TestStoreCloseTimeEntry(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()

	started := time.Now().Add(-90 * time.Minute).UTC()
	entry := model.TimeEntry{UserID: "u1", TaskID: &f.design.ID, Kind: model.TimeEntryTimer, StartedAt: started}
	require.NoError(t, Create(ctx, s.DB(), &entry))

	open, err := s.OpenTimeEntries(ctx, "u1", model.TimeEntryTimer)
	require.NoError(t, err)
	require.Len(t, open, 1)

	closed, err := s.CloseTimeEntry(ctx, entry.ID, started.Add(90*time.Minute))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, closed.Hours, 1e-6)

	task, err := Get[model.Task](ctx, s.DB(), f.design.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, task.TrackedHours, 1e-6)

	_, err = s.CloseTimeEntry(ctx, entry.ID, time.Now())
	assert.ErrorIs(t, err, ErrNoOpenEntry)

	entries, err := s.TimeEntries(ctx, "u1", nil, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreAddManualEntry(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()

	before, err := Get[model.Task](ctx, s.DB(), f.shipped.ID)
	require.NoError(t, err)

	started := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	entry := model.TimeEntry{UserID: "u2", TaskID: &f.shipped.ID, Kind: model.TimeEntryManual, StartedAt: started}
	entry.Close(started.Add(2 * time.Hour))
	require.NoError(t, s.AddManualEntry(ctx, &entry))
	assert.NotEmpty(t, entry.ID)

	after, err := Get[model.Task](ctx, s.DB(), f.shipped.ID)
	require.NoError(t, err)
	assert.InDelta(t, before.TrackedHours+2, after.TrackedHours, 1e-6)

	open, err := s.OpenTimeEntries(ctx, "u2", "")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestStoreOverdueAndProfiles(t *testing.T) {
	s := newTestStore(t)
	f := seed(t, s)
	ctx := context.Background()
	q := Use(s.DB())

	today := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	due := func(task model.Task, day string) {
		_, err := q.Task.WithContext(ctx).
			Where(q.Task.ID.Eq(task.ID)).
			UpdateSimple(q.Task.DueDate.Value(*viewmodel.ParseDate(day)))
		require.NoError(t, err)
	}
	due(f.design, "2024-05-09")
	due(f.hidden, "2024-05-10")
	due(f.shipped, "2024-05-01")

	// due today is not overdue, done tasks never are
	overdue, err := s.CountOverdueTasks(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, overdue)

	alice := model.Profile{Name: "Alice", Role: model.RoleAdmin}
	require.NoError(t, q.Profile.WithContext(ctx).Create(&alice))
	profiles, err := s.Profiles(ctx, []string{alice.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Alice", profiles[0].Name)

	empty, err := s.Profiles(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStoreTimeEntriesWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	at := func(day int) time.Time { return time.Date(2024, 5, day, 9, 0, 0, 0, time.UTC) }
	for _, day := range []int{1, 5, 9} {
		entry := model.TimeEntry{UserID: "u1", Kind: model.TimeEntryManual, StartedAt: at(day)}
		entry.Close(at(day).Add(time.Hour))
		require.NoError(t, s.AddManualEntry(ctx, &entry))
	}
	other := model.TimeEntry{UserID: "u2", Kind: model.TimeEntryTimer, StartedAt: at(5)}
	require.NoError(t, s.StartTimeEntry(ctx, &other))

	from, to := at(2), at(9)
	entries, err := s.TimeEntries(ctx, "u1", &from, &to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].StartedAt.Equal(at(5)))

	all, err := s.TimeEntries(ctx, "", nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.True(t, all[0].StartedAt.Equal(at(9)))

	open, err := s.OpenTimeEntries(ctx, "", model.TimeEntryTimer)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "u2", open[0].UserID)
}

func TestMigrateIsRepeatable(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, Migrate(s.DB()))
}
