// Package appstate keeps the per-user dashboard state that outlives a request:
// the selected view, the active space, the running timer and the clock-in.
package appstate

import (
	"errors"
	"sync"
	"time"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

var (
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNotClockedIn     = errors.New("not clocked in")
)

// Timer is a running time entry bound to a task or project.
type Timer struct {
	EntryID   string    `json:"entryId"`
	TaskID    *string   `json:"taskId,omitempty"`
	ProjectID *string   `json:"projectId,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}

// Clock is a running attendance entry.
type Clock struct {
	EntryID string    `json:"entryId"`
	Since   time.Time `json:"since"`
}

type Session struct {
	CurrentView   viewmodel.ViewShape `json:"currentView"`
	ActiveSpaceID *string             `json:"activeSpaceId,omitempty"`
	ActiveTimer   *Timer              `json:"activeTimer,omitempty"`
	Clock         *Clock              `json:"clock,omitempty"`
}

func (s *Session) clone() Session {
	out := *s
	if s.ActiveSpaceID != nil {
		id := *s.ActiveSpaceID
		out.ActiveSpaceID = &id
	}
	if s.ActiveTimer != nil {
		t := *s.ActiveTimer
		out.ActiveTimer = &t
	}
	if s.Clock != nil {
		c := *s.Clock
		out.Clock = &c
	}
	return out
}

// Store is safe for concurrent use. Callers receive copies and never share a Session.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	defaultView viewmodel.ViewShape
}

func New(defaultView viewmodel.ViewShape) *Store {
	if defaultView == "" {
		defaultView = viewmodel.ViewList
	}
	return &Store{
		sessions:    make(map[string]*Session),
		defaultView: defaultView,
	}
}

// session returns the user's session, creating it. Callers hold the write lock.
func (s *Store) session(userID string) *Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{CurrentView: s.defaultView}
		s.sessions[userID] = sess
	}
	return sess
}

func (s *Store) Get(userID string) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess.clone()
	}
	return Session{CurrentView: s.defaultView}
}

// SetView selects the view shape shown to the user.
func (s *Store) SetView(userID, view string) (Session, error) {
	shape, err := viewmodel.ParseViewShape(view)
	if err != nil {
		return Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	sess.CurrentView = shape
	return sess.clone(), nil
}

// SetActiveSpace selects a space. Nil clears the selection.
func (s *Store) SetActiveSpace(userID string, spaceID *string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	sess.ActiveSpaceID = nil
	if spaceID != nil {
		id := *spaceID
		sess.ActiveSpaceID = &id
	}
	return sess.clone()
}

// StartTimer makes t the user's running timer and returns the one it replaced, which
// the caller must close.
func (s *Store) StartTimer(userID string, t Timer) *Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	prev := sess.ActiveTimer
	sess.ActiveTimer = &t
	return prev
}

// StopTimer clears the running timer and returns it, or nil when none runs.
func (s *Store) StopTimer(userID string) *Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok || sess.ActiveTimer == nil {
		return nil
	}
	prev := sess.ActiveTimer
	sess.ActiveTimer = nil
	return prev
}

// PutBackTimer reinstates t after its close failed. It reports false and leaves the
// session alone when another timer has started in the meantime.
func (s *Store) PutBackTimer(userID string, t Timer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	if sess.ActiveTimer != nil {
		return false
	}
	sess.ActiveTimer = &t
	return true
}

// ForgetEntry drops the timer or clock backed by entryID. It reports whether one was dropped.
func (s *Store) ForgetEntry(userID, entryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return false
	}
	switch {
	case sess.ActiveTimer != nil && sess.ActiveTimer.EntryID == entryID:
		sess.ActiveTimer = nil
	case sess.Clock != nil && sess.Clock.EntryID == entryID:
		sess.Clock = nil
	default:
		return false
	}
	return true
}

func (s *Store) ClockIn(userID, entryID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(userID)
	if sess.Clock != nil {
		return ErrAlreadyClockedIn
	}
	sess.Clock = &Clock{EntryID: entryID, Since: at}
	return nil
}

func (s *Store) ClockOut(userID string) (*Clock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok || sess.Clock == nil {
		return nil, ErrNotClockedIn
	}
	c := sess.Clock
	sess.Clock = nil
	return c, nil
}

// RunningTimers counts users with a running timer.
func (s *Store) RunningTimers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if sess.ActiveTimer != nil {
			n++
		}
	}
	return n
}

// Restore rebuilds timers and clocks from the entries still open in the database.
// The latest entry of each kind wins when a user has several.
func (s *Store) Restore(open []model.TimeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range open {
		e := &open[i]
		if e.EndedAt != nil {
			continue
		}
		sess := s.session(e.UserID)
		switch e.Kind {
		case model.TimeEntryClock:
			if sess.Clock == nil || e.StartedAt.After(sess.Clock.Since) {
				sess.Clock = &Clock{EntryID: e.ID, Since: e.StartedAt}
			}
		case model.TimeEntryTimer:
			if sess.ActiveTimer == nil || e.StartedAt.After(sess.ActiveTimer.StartedAt) {
				sess.ActiveTimer = &Timer{EntryID: e.ID, TaskID: e.TaskID, ProjectID: e.ProjectID, StartedAt: e.StartedAt}
			}
		}
	}
}
