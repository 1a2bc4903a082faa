package alert

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type sent struct {
	receiver, subject, body string
}

type recordingHandler struct {
	messages []sent
	err      error
}

func (r *recordingHandler) SendMessageTo(_ context.Context, receiver *model.Profile, subject, body string) error {
	r.messages = append(r.messages, sent{receiver.Name, subject, body})
	return r.err
}

func TestOverdueTasksAlert(t *testing.T) {
	ok := &recordingHandler{}
	failing := &recordingHandler{err: errors.New("smtp down")}
	mgr := &alertMgr{handlers: []alertHandlerInterface{ok, failing}}

	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task := model.Task{Title: "Logo", Status: model.TaskInRevision, Priority: model.PriorityP1, DueDate: &due}
	records := []viewmodel.TaskRecord{{Task: task, Project: &model.Project{Name: "Brand"}}}
	receiver := &model.Profile{Name: "Ada"}

	err := mgr.OverdueTasksAlert(context.Background(), receiver, records, due.AddDate(0, 0, 3))
	require.ErrorContains(t, err, "smtp down")
	require.Len(t, ok.messages, 1)
	assert.Equal(t, "1 overdue task(s)", ok.messages[0].subject)
	assert.Contains(t, ok.messages[0].body, "Hi Ada, these tasks were due before 2024-03-04")
	assert.Contains(t, ok.messages[0].body, "- [p1] Logo (Brand), due 2024-03-01, in_revision")
	assert.Len(t, failing.messages, 1)

	require.NoError(t, mgr.OverdueTasksAlert(context.Background(), receiver, nil, due))
	assert.Len(t, ok.messages, 1)
}

func TestWebhookAlerter(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := newWebhookAlerter(srv.URL)
	err := h.SendMessageTo(context.Background(), &model.Profile{Name: "Ada"}, "Your timer was stopped", "body")
	require.NoError(t, err)
	assert.Equal(t, "text", got.Msgtype)
	assert.Equal(t, "@Ada Your timer was stopped\nbody", got.Text.Content)
}

func TestWebhookAlerterErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newWebhookAlerter(srv.URL).SendMessageTo(context.Background(), &model.Profile{Name: "Ada"}, "s", "b")
	assert.Error(t, err)
}
