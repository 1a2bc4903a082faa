package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

var member = util.JWTMessage{UserID: "u1", Role: model.RoleMember, WorkspaceID: "w1"}

// newTestRouter serves routes as the given caller without token checks.
func newTestRouter(token util.JWTMessage, register func(g *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("", func(c *gin.Context) {
		util.SetJWTContext(c, token)
		c.Next()
	})
	register(g)
	return r
}

func serve(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) resputil.Response[T] {
	t.Helper()
	var resp resputil.Response[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

type fakeLoader struct {
	collections viewmodel.Collections
	err         error
	scopes      []query.Scope
}

func (f *fakeLoader) LoadCollections(_ context.Context, scope query.Scope) (viewmodel.Collections, error) {
	f.scopes = append(f.scopes, scope)
	return f.collections, f.err
}

// sampleCollections is one space with one folder, two projects and four tasks.
func sampleCollections() viewmodel.Collections {
	task := func(id, project, title string, status model.TaskStatus, prio model.Priority, due *time.Time, assignees ...string) model.Task {
		return model.Task{
			Base:        model.Base{ID: id, CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
			ProjectID:   project,
			Title:       title,
			Status:      status,
			Priority:    prio,
			DueDate:     due,
			AssigneeIDs: datatypes.JSONSlice[string](assignees),
			Tags:        datatypes.JSONSlice[string]{},
			Progress:    50,
		}
	}
	return viewmodel.Collections{
		Spaces:  []model.Space{{Base: model.Base{ID: "s1"}, WorkspaceID: "w1", Name: "Clients"}},
		Folders: []model.Folder{{Base: model.Base{ID: "f1"}, SpaceID: "s1", Name: "Acme"}},
		Projects: []model.Project{
			{Base: model.Base{ID: "p1"}, FolderID: "f1", Name: "Website", Status: model.ProjectActive, DueDate: day("2024-06-01")},
			{Base: model.Base{ID: "p2"}, FolderID: "f1", Name: "Brand refresh", Status: model.ProjectPlanning},
		},
		Tasks: []model.Task{
			task("t1", "p1", "Homepage design", model.TaskInProgress, model.PriorityP1, day("2024-05-10"), "u1"),
			task("t2", "p1", "Copy review", model.TaskTodo, model.PriorityP2, day("2024-05-03"), "u2"),
			task("t3", "p2", "Logo options", model.TaskComplete, model.PriorityP4, nil, "u1", "u2"),
			task("t4", "p2", "Palette", model.TaskTodo, model.PriorityP3, day("2024-05-20")),
		},
	}
}

type fakeTimeStore struct {
	tasks    map[string]model.Task
	entries  map[string]*model.TimeEntry
	order    []string
	closeErr error
}

func newFakeTimeStore() *fakeTimeStore {
	return &fakeTimeStore{
		tasks:   map[string]model.Task{"t1": {Base: model.Base{ID: "t1"}, ProjectID: "p1"}},
		entries: map[string]*model.TimeEntry{},
	}
}

func (f *fakeTimeStore) Task(_ context.Context, id string) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeTimeStore) add(entry *model.TimeEntry) {
	entry.ID = fmt.Sprintf("e%d", len(f.order)+1)
	stored := *entry
	f.entries[entry.ID] = &stored
	f.order = append(f.order, entry.ID)
}

func (f *fakeTimeStore) StartTimeEntry(_ context.Context, entry *model.TimeEntry) error {
	f.add(entry)
	return nil
}

func (f *fakeTimeStore) CloseTimeEntry(_ context.Context, id string, at time.Time) (*model.TimeEntry, error) {
	if f.closeErr != nil {
		return nil, f.closeErr
	}
	e, ok := f.entries[id]
	if !ok || e.EndedAt != nil {
		return nil, query.ErrNoOpenEntry
	}
	e.Close(at)
	closed := *e
	return &closed, nil
}

func (f *fakeTimeStore) AddManualEntry(_ context.Context, entry *model.TimeEntry) error {
	f.add(entry)
	return nil
}

func (f *fakeTimeStore) OpenTimeEntries(_ context.Context, userID string, kind model.TimeEntryKind) ([]model.TimeEntry, error) {
	var out []model.TimeEntry
	for _, id := range f.order {
		e := f.entries[id]
		if e.EndedAt == nil && (userID == "" || e.UserID == userID) && (kind == "" || e.Kind == kind) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeTimeStore) TimeEntries(_ context.Context, userID string, _, _ *time.Time) ([]model.TimeEntry, error) {
	out := []model.TimeEntry{}
	for i := len(f.order) - 1; i >= 0; i-- {
		if e := f.entries[f.order[i]]; userID == "" || e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeProfiles struct {
	profiles map[string]model.Profile
}

func (f *fakeProfiles) Profiles(_ context.Context, ids []string) ([]model.Profile, error) {
	out := []model.Profile{}
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// steppingClock starts at start and advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	now := start.Add(-step)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
