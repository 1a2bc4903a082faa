package viewmodel

import (
	"time"

	"github.com/raids-lab/agencyos/dao/model"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func task(id string, status model.TaskStatus) model.Task {
	t := model.Task{ProjectID: "p1", Title: "Task " + id, Status: status, Priority: model.PriorityP3}
	t.ID = id
	return t
}

func taskRecords(tasks ...model.Task) []TaskRecord {
	return ResolveTaskRecords(Collections{Tasks: tasks})
}

// sampleCollections is one space with two folders, one of which points at a space
// that does not exist.
func sampleCollections() Collections {
	space := model.Space{WorkspaceID: "w1", Name: "Clients"}
	space.ID = "s1"
	acme := model.Folder{SpaceID: "s1", Name: "Acme"}
	acme.ID = "f1"
	orphan := model.Folder{SpaceID: "gone", Name: "Orphan"}
	orphan.ID = "f2"
	site := model.Project{FolderID: "f1", Name: "Website", Status: model.ProjectActive}
	site.ID = "p1"
	seo := model.Project{FolderID: "f2", Name: "SEO", Status: model.ProjectPlanning}
	seo.ID = "p2"
	empty := model.Project{FolderID: "f1", Name: "Retainer", Status: model.ProjectOnHold}
	empty.ID = "p3"

	t1 := task("t1", model.TaskTodo)
	t1.Title = "Website Redesign"
	t1.AssigneeIDs = []string{"u1"}
	t1.Tags = []string{"design"}
	t1.Progress = 40
	t1.EstimateHours = 10
	t1.TrackedHours = 4
	t2 := task("t2", model.TaskComplete)
	t2.Title = "SEO Audit"
	t2.ProjectID = "p2"
	t2.AssigneeIDs = []string{"u2"}
	t2.Progress = 100
	t3 := task("t3", model.TaskInProgress)
	t3.ProjectID = "missing"
	t4 := task("t4", model.TaskComplete)
	t4.AssigneeIDs = []string{"u1", "u3"}
	t4.Tags = []string{"design", "dev"}
	t4.Progress = 150
	t4.EstimateHours = 2
	t4.TrackedHours = 3

	return Collections{
		Spaces:   []model.Space{space},
		Folders:  []model.Folder{acme, orphan},
		Projects: []model.Project{site, seo, empty},
		Tasks:    []model.Task{t1, t2, t3, t4},
	}
}
