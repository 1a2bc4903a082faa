// Package viewmodel joins, filters, sorts and shapes task and project collections
// into the list, board, calendar and gantt views of the dashboard.
//
// Every function here is pure. Inputs are never written, so one set of collections
// can feed several compositions at once.
package viewmodel

import (
	"time"

	"github.com/raids-lab/agencyos/dao/model"
)

// Record is the read-only view of a joined task or project that filters, sorts and
// composers work on.
type Record interface {
	RecordID() string
	RecordTitle() string
	RecordDescription() string
	RecordStatus() string
	// RecordPriority is empty for records without a priority.
	RecordPriority() model.Priority
	RecordAssignees() []string
	RecordTags() []string
	RecordStart() *time.Time
	RecordDue() *time.Time
	RecordProgress() float64
	RecordCreatedAt() time.Time
	RecordClientVisible() bool
}

// TaskRecord is a task with its resolved ancestors. An ancestor is nil when it
// could not be resolved, and so is everything above it.
type TaskRecord struct {
	model.Task
	Project *model.Project `json:"project,omitempty"`
	Folder  *model.Folder  `json:"folder,omitempty"`
	Space   *model.Space   `json:"space,omitempty"`
}

func (r TaskRecord) RecordID() string               { return r.ID }
func (r TaskRecord) RecordTitle() string            { return r.Title }
func (r TaskRecord) RecordDescription() string      { return r.Description }
func (r TaskRecord) RecordStatus() string           { return string(r.Status) }
func (r TaskRecord) RecordPriority() model.Priority { return r.Priority }
func (r TaskRecord) RecordAssignees() []string      { return r.AssigneeIDs }
func (r TaskRecord) RecordTags() []string           { return r.Tags }
func (r TaskRecord) RecordStart() *time.Time        { return validDate(r.StartDate) }
func (r TaskRecord) RecordDue() *time.Time          { return validDate(r.DueDate) }
func (r TaskRecord) RecordProgress() float64        { return model.ClampProgress(r.Progress) }
func (r TaskRecord) RecordCreatedAt() time.Time     { return r.CreatedAt }
func (r TaskRecord) RecordClientVisible() bool      { return r.ClientVisible }

// ProjectRecord is a project with its resolved folder and space and a rollup of its tasks.
type ProjectRecord struct {
	model.Project
	Folder *model.Folder `json:"folder,omitempty"`
	Space  *model.Space  `json:"space,omitempty"`

	TaskCount      int      `json:"taskCount"`
	CompletedCount int      `json:"completedCount"`
	Progress       float64  `json:"progress"`
	EstimateHours  float64  `json:"estimateHours"`
	TrackedHours   float64  `json:"trackedHours"`
	Assignees      []string `json:"assigneeIds"`
	Tags           []string `json:"tags"`
}

func (r ProjectRecord) RecordID() string               { return r.ID }
func (r ProjectRecord) RecordTitle() string            { return r.Name }
func (r ProjectRecord) RecordDescription() string      { return r.Description }
func (r ProjectRecord) RecordStatus() string           { return string(r.Status) }
func (r ProjectRecord) RecordPriority() model.Priority { return "" }
func (r ProjectRecord) RecordAssignees() []string      { return r.Assignees }
func (r ProjectRecord) RecordTags() []string           { return r.Tags }
func (r ProjectRecord) RecordStart() *time.Time        { return validDate(r.StartDate) }
func (r ProjectRecord) RecordDue() *time.Time          { return validDate(r.DueDate) }
func (r ProjectRecord) RecordProgress() float64        { return model.ClampProgress(r.Progress) }
func (r ProjectRecord) RecordCreatedAt() time.Time     { return r.CreatedAt }
func (r ProjectRecord) RecordClientVisible() bool      { return r.ClientVisible }

// IDs returns the record ids in order.
func IDs[R Record](records []R) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.RecordID()
	}
	return ids
}
