// Constants matching the enumerated columns of the agency tables.
// Labels are stored verbatim, so they double as the JSON and query-string values.
package model

import (
	"database/sql/driver"

	"github.com/samber/lo"
)

// TaskStatus is the board column a task sits in.
type TaskStatus string

const (
	TaskTodo           TaskStatus = "todo"
	TaskInProgress     TaskStatus = "in_progress"
	TaskInternalReview TaskStatus = "internal_review"
	TaskInRevision     TaskStatus = "in_revision"
	TaskClientReview   TaskStatus = "client_review"
	TaskBlocked        TaskStatus = "blocked"
	TaskApproved       TaskStatus = "approved"
	TaskComplete       TaskStatus = "complete"
)

// AllTaskStatuses returns the statuses in workflow order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskTodo,
		TaskInProgress,
		TaskInternalReview,
		TaskInRevision,
		TaskClientReview,
		TaskBlocked,
		TaskApproved,
		TaskComplete,
	}
}

// OpenTaskStatuses are the statuses that still need work.
func OpenTaskStatuses() []TaskStatus {
	return lo.Filter(AllTaskStatuses(), func(s TaskStatus, _ int) bool {
		return !s.Done()
	})
}

func (s TaskStatus) Valid() bool { return lo.Contains(AllTaskStatuses(), s) }

// Done reports whether the task no longer counts as outstanding work.
func (s TaskStatus) Done() bool { return s == TaskApproved || s == TaskComplete }

// Value lets typed query conditions take statuses directly.
func (s TaskStatus) Value() (driver.Value, error) { return string(s), nil }

// Priority is p1 (most urgent) to p4.
type Priority string

const (
	PriorityP1 Priority = "p1"
	PriorityP2 Priority = "p2"
	PriorityP3 Priority = "p3"
	PriorityP4 Priority = "p4"
)

func AllPriorities() []Priority {
	return []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}
}

// Rank returns 1 for p1 through 4 for p4, and 0 when the label is not a known priority.
func (p Priority) Rank() int {
	return lo.IndexOf(AllPriorities(), p) + 1
}

func (p Priority) Valid() bool { return p.Rank() > 0 }

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func AllProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled}
}

func (s ProjectStatus) Valid() bool { return lo.Contains(AllProjectStatuses(), s) }

// ProjectType separates billable client work from retainers and internal work.
type ProjectType string

const (
	ProjectTypeClient   ProjectType = "client_project"
	ProjectTypeRetainer ProjectType = "retainer"
	ProjectTypeInternal ProjectType = "internal"
)

func AllProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeClient, ProjectTypeRetainer, ProjectTypeInternal}
}

func (t ProjectType) Valid() bool { return lo.Contains(AllProjectTypes(), t) }

// Role of a profile. Clients only reach the portal routes.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleClient:
		return true
	}
	return false
}

// TimeEntryKind distinguishes how an entry was recorded.
type TimeEntryKind string

const (
	TimeEntryTimer  TimeEntryKind = "timer"
	TimeEntryClock  TimeEntryKind = "clock"
	TimeEntryManual TimeEntryKind = "manual"
)

func (k TimeEntryKind) Value() (driver.Value, error) { return string(k), nil }
